package config

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// NewLogger builds a logger that never writes to the terminal, which is
// owned by the game screen. Entries go to a rotating file at path, or
// nowhere when path is empty.
func NewLogger(path string, development bool) (*logrus.Logger, error) {
	logLevel := logrus.InfoLevel
	if development {
		logLevel = logrus.DebugLevel
	}

	log := logrus.New()
	log.SetLevel(logLevel)
	log.SetOutput(io.Discard)

	if path == "" {
		return log, nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logLevel,
		Formatter: &logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create log file hook: %w", err)
	}
	log.AddHook(hook)

	return log, nil
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/eelmines/internal/config"
	"github.com/vancomm/eelmines/internal/mines"
	"github.com/vancomm/eelmines/internal/term"
)

var logPath string

func init() {
	const usage = "log file path, empty to disable"
	defaultLogPath := config.LogFile()
	flag.StringVar(&logPath, "log", defaultLogPath, usage)
	flag.StringVar(&logPath, "l", defaultLogPath, usage+" (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"usage: %s [flags] [width=N] [height=N] [mine_count=N]\n\n"+
				"Left click reveals or chords, right click flags, r restarts, q quits.\n\n",
			os.Args[0],
		)
		flag.PrintDefaults()
	}
}

func fatal(log *logrus.Logger, msg string, err error) {
	log.WithError(err).Error(msg)
	fmt.Fprintf(os.Stderr, "%s: %s\n", msg, err)
	os.Exit(1)
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	log, err := config.NewLogger(logPath, config.Development())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	mines.Log = log

	params, err := config.ParseGameParams(flag.Args())
	if err != nil {
		fatal(log, "invalid game params", err)
	}

	log.WithField("params", params.String()).Info("starting up")

	game, err := mines.New(params, nil)
	if err != nil {
		fatal(log, "unable to create game", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal(log, "unable to create screen", err)
	}

	if err := term.New(screen, game, log).Run(mainCtx); err != nil {
		fatal(log, "game stopped", err)
	}

	log.Info("bye")
}

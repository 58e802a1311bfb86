package config

import "os"

const defaultLogFile = "eelmines.log"

// LogFile is where the terminal game writes its log. An empty
// EELMINES_LOG_FILE turns file logging off.
func LogFile() string {
	path, ok := os.LookupEnv("EELMINES_LOG_FILE")
	if !ok {
		return defaultLogFile
	}
	return path
}

// Development turns on debug logging. Any value other than "0" counts.
func Development() bool {
	development, ok := os.LookupEnv("EELMINES_DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

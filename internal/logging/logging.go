package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ErrorData contains information about an error and the user who caused it
type ErrorData struct {
	Error    error
	Username string
	UserID   int64
	Command  string
	AddInfo  string // AdditionalInfo
}

// RequestData contains information about a user request
type RequestData struct {
	Username string
	ID       int64
	Command  string
}

// Usable before Initialize, so early failures are not lost
var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// Initialize sets up the console writer and the log level
func Initialize(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// LogEvent logs events (for example, the start of a sweep)
func LogEvent(event string) {
	logger.Info().Msg(event)
}

// LogRequest logs a user request
func LogRequest(data RequestData) {
	logger.Info().
		Str("command", data.Command).
		Str("username", data.Username).
		Int64("id", data.ID).
		Msg("request")
}

// LogError logs an error caused by a user action
func LogError(data ErrorData) {
	event := logger.Error().
		Err(data.Error).
		Str("command", data.Command).
		Str("username", data.Username).
		Int64("id", data.UserID)
	if data.AddInfo != "" {
		event = event.Str("info", data.AddInfo)
	}
	event.Msg("command failed")
}

// LogMinorError logs small errors which happened during the work of the program
func LogMinorError(funcName, message string, err error) {
	logger.Error().Err(err).Str("func", funcName).Msg(message)
}

// LogFatalError logs a fatal error and exits with code 1
func LogFatalError(funcName, message string, err error) {
	logger.Error().Err(err).Str("func", funcName).Msg("FATAL: " + message)
	os.Exit(1)
}

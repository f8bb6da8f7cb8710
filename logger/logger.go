// Package logger holds the process wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var log = zerolog.New(os.Stderr).With().Timestamp().Logger()

// ErrFormat is returned for an unknown log format
var ErrFormat = errors.New("logger: unknown format")

// Log returns the process logger.
func Log() *zerolog.Logger {
	return &log
}

// SetWriter sends JSON lines to w.
func SetWriter(w io.Writer) {
	log = zerolog.New(w).With().Timestamp().Logger().Level(log.GetLevel())
}

// SetLogger replaces the process logger.
func SetLogger(logger zerolog.Logger) {
	log = logger
}

// SetLevel parses a zerolog level name such as "debug" or "warn".
func SetLevel(level string) error {
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return errors.Wrapf(err, "log level %q", level)
	}
	log = log.Level(l)
	return nil
}

// Setup picks the output format: "console", "json", or "auto", which means
// console on a terminal and json otherwise.
func Setup(format, level string) error {
	switch strings.ToLower(format) {
	case "", "auto":
		if term.IsTerminal(int(os.Stderr.Fd())) {
			SetConsoleWriter()
		} else {
			SetJSONWriter()
		}
	case "console":
		SetConsoleWriter()
	case "json":
		SetJSONWriter()
	default:
		return errors.Wrapf(ErrFormat, "%q", format)
	}
	return SetLevel(level)
}

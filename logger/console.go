package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const (
	colorRed = iota + 31
	colorGreen
	colorYellow
	_
	colorMagenta

	colorBold = 1
)

func SetConsoleWriter() {
	log = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.FormatLevel = consoleFormatLevel(false)
		w.TimeFormat = "15:04:05.000"
	})).With().Timestamp().Logger().Level(log.GetLevel())
}

func SetJSONWriter() {
	SetWriter(os.Stderr)
}

// colorize returns the string s wrapped in ANSI code c, unless disabled is true.
func colorize(s interface{}, c int, disabled bool) string {
	if disabled {
		return fmt.Sprintf("%s", s)
	}
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

func consoleFormatLevel(noColor bool) zerolog.Formatter {
	return func(i interface{}) string {
		ll, ok := i.(string)
		if !ok {
			return colorize("???", colorBold, noColor)
		}
		switch strings.ToLower(ll) {
		case "trace":
			return colorize("TRC", colorMagenta, noColor)
		case "debug":
			return colorize("DBG", colorYellow, noColor)
		case "info":
			return colorize("INF", colorGreen, noColor)
		case "warn":
			return colorize("WRN", colorRed, noColor)
		case "error":
			return colorize(colorize("ERR", colorRed, noColor), colorBold, noColor)
		case "fatal":
			return colorize(colorize("FTL", colorRed, noColor), colorBold, noColor)
		case "panic":
			return colorize(colorize("PNC", colorRed, noColor), colorBold, noColor)
		}
		return colorize("???", colorBold, noColor)
	}
}

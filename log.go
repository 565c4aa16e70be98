package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// logger wraps zerolog for console logging on stderr. Progress lines are
// logged at debug level, so a quiet successful run prints nothing.
type logger struct {
	z zerolog.Logger
}

// newLogger creates a logger with console output.
func newLogger() *logger {
	noColor := os.Getenv("NO_COLOR") != ""
	if fi, err := os.Stderr.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		noColor = true
	}
	return newLoggerTo(os.Stderr, noColor)
}

func newLoggerTo(w io.Writer, noColor bool) *logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
	zl := zerolog.New(out).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	return &logger{z: zl}
}

// setVerbose enables debug output.
func (l *logger) setVerbose(v bool) {
	if v {
		l.z = l.z.Level(zerolog.DebugLevel)
		return
	}
	l.z = l.z.Level(zerolog.InfoLevel)
}

func (l *logger) debug(msg string) { l.z.Debug().Msg(msg) }
func (l *logger) warn(msg string)  { l.z.Warn().Msg(msg) }
func (l *logger) err(msg string)   { l.z.Error().Msg(msg) }

func (l *logger) debugf(format string, args ...any) { l.debug(fmt.Sprintf(format, args...)) }
func (l *logger) warnf(format string, args ...any)  { l.warn(fmt.Sprintf(format, args...)) }

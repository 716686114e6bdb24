// Package logging is the small leveled wrapper cmd/foliocli and
// cmd/foliod log through. The core engine (folio, numeric, eval, ...)
// never imports this package: it is a pure function library and emits
// no logs of its own, per SPEC_FULL.md's ambient stack.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Level is a log verbosity tier, least to most severe.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "LOG"
	}
}

// Logger is a leveled wrapper around the standard library's *log.Logger.
// It is not safe to reconfigure concurrently with logging calls, in
// keeping with log.Logger's own contract.
type Logger struct {
	out   *log.Logger
	level Level
}

// New builds a Logger writing to w, prefixed with a timestamp, at the
// given minimum level. Messages below level are dropped.
func New(w io.Writer, level Level) *Logger {
	return &Logger{out: log.New(w, "", log.LstdFlags), level: level}
}

// Default builds a Logger writing to stderr at Info level, the entry
// point cmd/foliocli and cmd/foliod reach for.
func Default() *Logger { return New(os.Stderr, Info) }

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.out.Printf("[%s] %s", level, fmt.Sprintf(format, args...))
}

// Debugf logs msg at Debug level.
func (l *Logger) Debugf(format string, args ...interface{}) { l.logf(Debug, format, args...) }

// Infof logs msg at Info level.
func (l *Logger) Infof(format string, args ...interface{}) { l.logf(Info, format, args...) }

// Warnf logs msg at Warn level.
func (l *Logger) Warnf(format string, args ...interface{}) { l.logf(Warn, format, args...) }

// Errorf logs msg at Error level.
func (l *Logger) Errorf(format string, args ...interface{}) { l.logf(Error, format, args...) }

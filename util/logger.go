// Package util holds the I/O plumbing around the codec: input
// resolution and the levelled stderr logger.
package util

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// LogLevel controls output verbosity.
type LogLevel int

const (
	LogQuiet   LogLevel = 0
	LogVerbose LogLevel = 1
	LogDebug   LogLevel = 2
)

// Logger writes levelled messages to stderr. It is quiet by default so
// that the only stderr output of a normal run is the unmapped-content
// diagnostic.
type Logger struct {
	level      LogLevel
	output     io.Writer
	mu         sync.Mutex
	timestamps bool
}

// NewLogger returns a Logger writing to w at the given verbosity
// (0 = quiet, 1 = verbose, 2+ = debug). A nil w means os.Stderr.
func NewLogger(w io.Writer, verbosity int) *Logger {
	if w == nil {
		w = os.Stderr
	}
	if verbosity > int(LogDebug) {
		verbosity = int(LogDebug)
	}
	return &Logger{
		level:      LogLevel(verbosity),
		output:     w,
		timestamps: verbosity >= int(LogDebug),
	}
}

// Level returns the current log level.
func (l *Logger) Level() LogLevel { return l.level }

// Verbose prints with -v.  Prefixed with [VRB].
func (l *Logger) Verbose(format string, args ...interface{}) {
	if l.level >= LogVerbose {
		l.write("VRB", format, args...)
	}
}

// Debug prints with -vv.  Prefixed with [DBG].
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.level >= LogDebug {
		l.write("DBG", format, args...)
	}
}

func (l *Logger) write(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	msg := fmt.Sprintf(format, args...)
	if l.timestamps {
		fmt.Fprintf(l.output, "%s [%s] %s\n", time.Now().Format("15:04:05.000"), level, msg)
		return
	}
	fmt.Fprintf(l.output, "[%s] %s\n", level, msg)
}

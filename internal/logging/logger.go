// SPDX-License-Identifier: MIT
// Package: lvnoise/internal/logging
//
// Package logging is the levelled logger used by the command-line tools.
// Library packages never log; they return errors.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level orders log severities.
type Level int

const (
	TRACE Level = iota
	DEBUG
	INFO
	WARN
	ERROR
)

// String returns the upper-case level name.
func (l Level) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	for l := TRACE; l <= ERROR; l++ {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}
	return INFO, fmt.Errorf("logging: unknown level %q", s)
}

// Logger writes "[LEVEL] message" lines to a console sink and, once
// OpenFile succeeds, to a file sink. Each sink has its own threshold.
type Logger struct {
	mu           sync.Mutex
	console      *log.Logger
	file         *log.Logger
	f            *os.File
	consoleLevel Level
	fileLevel    Level
}

// New returns a Logger writing messages at or above level to w.
func New(w io.Writer, level Level) *Logger {
	return &Logger{
		console:      log.New(w, "", log.LstdFlags),
		consoleLevel: level,
		fileLevel:    TRACE,
	}
}

// SetLevel changes the console threshold.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.consoleLevel = level
	l.mu.Unlock()
}

// Level returns the console threshold.
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.consoleLevel
}

// OpenFile appends every message at or above level to path, replacing any
// previously opened file.
func (l *Logger) OpenFile(path string, level Level) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("logging: open %s: %w", path, err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f != nil {
		_ = l.f.Close()
	}
	l.f = f
	l.file = log.New(f, "", log.LstdFlags)
	l.fileLevel = level
	return nil
}

// Close closes the file sink, if any.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f, l.file = nil, nil
	return err
}

func (l *Logger) logf(level Level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.consoleLevel && (l.file == nil || level < l.fileLevel) {
		return
	}
	msg := fmt.Sprintf("[%s] %s", level, fmt.Sprintf(format, args...))
	if level >= l.consoleLevel {
		l.console.Println(msg)
	}
	if l.file != nil && level >= l.fileLevel {
		l.file.Println(msg)
	}
}

// Tracef logs at TRACE.
func (l *Logger) Tracef(format string, args ...interface{}) { l.logf(TRACE, format, args...) }

// Debugf logs at DEBUG.
func (l *Logger) Debugf(format string, args ...interface{}) { l.logf(DEBUG, format, args...) }

// Infof logs at INFO.
func (l *Logger) Infof(format string, args ...interface{}) { l.logf(INFO, format, args...) }

// Warnf logs at WARN.
func (l *Logger) Warnf(format string, args ...interface{}) { l.logf(WARN, format, args...) }

// Errorf logs at ERROR.
func (l *Logger) Errorf(format string, args ...interface{}) { l.logf(ERROR, format, args...) }

// SPDX-License-Identifier: MIT
// Package: lvnoise/internal/logging
//
// default.go — package-level logger and shorthand helpers.

package logging

import (
	"os"
	"sync/atomic"
)

var std atomic.Pointer[Logger]

func init() {
	std.Store(New(os.Stderr, INFO))
}

// Default returns the package-level logger.
func Default() *Logger { return std.Load() }

// SetDefault replaces the package-level logger. A nil l is ignored.
func SetDefault(l *Logger) {
	if l != nil {
		std.Store(l)
	}
}

// Trace logs at TRACE on the default logger.
func Trace(format string, args ...interface{}) { Default().Tracef(format, args...) }

// Debug logs at DEBUG on the default logger.
func Debug(format string, args ...interface{}) { Default().Debugf(format, args...) }

// Info logs at INFO on the default logger.
func Info(format string, args ...interface{}) { Default().Infof(format, args...) }

// Warn logs at WARN on the default logger.
func Warn(format string, args ...interface{}) { Default().Warnf(format, args...) }

// Error logs at ERROR on the default logger.
func Error(format string, args ...interface{}) { Default().Errorf(format, args...) }

// SPDX-License-Identifier: MIT

package mandel

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// newSilentLogger creates a logger that discards all output. Its level is
// Panic, so IsLevelEnabled(Debug/Trace) is false and callers skip building
// fields entirely.
func newSilentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}

// loggerPtr stores the active package logger. Accessed atomically so that
// SetLogger can race with Compute calls on other goroutines.
var loggerPtr atomic.Pointer[logrus.Logger]

func init() {
	loggerPtr.Store(newSilentLogger())
}

// SetLogger configures the logger used by every calculator that was not
// given its own via WithLogger. By default mandel produces no log output.
// Pass nil to restore the silent default.
//
// Log levels used by mandel:
//   - logrus.DebugLevel: construction parameters, per-Compute summary
//   - logrus.TraceLevel: per-row progress (one entry per evaluated row)
//
// Example:
//
//	l := logrus.New()
//	l.SetLevel(logrus.DebugLevel)
//	mandel.SetLogger(l)
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newSilentLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger. Safe for concurrent use.
func Logger() *logrus.Logger {
	return loggerPtr.Load()
}

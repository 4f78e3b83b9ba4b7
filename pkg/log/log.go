// Package log provides the logging interface shared by the
// emulator components, backed by logrus.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the interface the emulator components log through.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing plain text to stderr at info level.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewWithLevel returns a Logger writing to w, logging
// messages at level and above. An unknown level falls back
// to info.
func NewWithLevel(w io.Writer, level string) Logger {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(lvl)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// WithComponent returns a Logger that tags every entry with
// the given component name. Loggers that are not backed by
// logrus are returned unchanged.
func WithComponent(l Logger, name string) Logger {
	switch v := l.(type) {
	case *logrus.Logger:
		return v.WithField("component", name)
	case *logrus.Entry:
		return v.WithField("component", name)
	}
	return l
}

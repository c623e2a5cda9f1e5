// Package logging builds the logrus logger shared by the binaries.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New creates a logger at the given level ("debug", "info", "warn", "error").
// Unknown levels fall back to info. A nil writer means stderr.
func New(level string, w io.Writer) *logrus.Logger {
	if w == nil {
		w = os.Stderr
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
	return logger
}

// Silent discards everything; for tests.
func Silent() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

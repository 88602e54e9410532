// ABOUTME: Logger implementation backed by sirupsen/logrus
// ABOUTME: Maps the core Logger interface onto logrus structured fields

package logrus

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"insightink-api/core/interfaces"
)

// Logger implements the interfaces.Logger contract using logrus.
type Logger struct {
	log *logrus.Logger
}

// New creates a logger writing JSON lines to stdout at Info level.
func New() *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return &Logger{log: l}
}

// NewWithOutput creates a logger writing to the given writer, useful in tests.
func NewWithOutput(w io.Writer, level logrus.Level) *Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(level)
	return &Logger{log: l}
}

// Debug logs a debug message with structured fields
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message with structured fields
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message with structured fields
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}

var _ interfaces.Logger = (*Logger)(nil)

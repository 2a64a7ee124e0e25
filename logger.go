package tbptt

import (
	"fmt"
	"log"
	"os"
)

// LogLevel represents the severity of a log message.
type LogLevel int

const (
	// LogLevelDebug is for per-step detail such as document assignment.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is for epoch-level progress messages.
	LogLevelInfo
	// LogLevelWarn is for situations that might require attention.
	LogLevelWarn
	// LogLevelError is for data or configuration defects.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the logging interface used by the iterator and the pipeline.
// Implementations can route messages anywhere; the iterator is silent by
// default.
type Logger interface {
	// Log writes a message at the given level. The message is formatted
	// with fmt.Sprintf when args are provided.
	Log(level LogLevel, format string, args ...interface{})

	// Debug logs a debug-level message.
	Debug(format string, args ...interface{})

	// Info logs an info-level message.
	Info(format string, args ...interface{})

	// Warn logs a warning-level message.
	Warn(format string, args ...interface{})

	// Error logs an error-level message.
	Error(format string, args ...interface{})
}

// NoOpLogger discards all log messages. It is the default when no logger
// is provided.
type NoOpLogger struct{}

// Log implements the Logger interface.
func (n *NoOpLogger) Log(level LogLevel, format string, args ...interface{}) {}

// Debug implements the Logger interface.
func (n *NoOpLogger) Debug(format string, args ...interface{}) {}

// Info implements the Logger interface.
func (n *NoOpLogger) Info(format string, args ...interface{}) {}

// Warn implements the Logger interface.
func (n *NoOpLogger) Warn(format string, args ...interface{}) {}

// Error implements the Logger interface.
func (n *NoOpLogger) Error(format string, args ...interface{}) {}

// SimpleLogger writes Debug and Info messages to stdout and Warn and
// Error messages to stderr, each line prefixed with a timestamp and the
// level.
type SimpleLogger struct {
	// MinLevel is the minimum level to output. Messages below it are
	// discarded.
	MinLevel LogLevel

	// StdoutLogger handles Debug and Info messages.
	StdoutLogger *log.Logger

	// StderrLogger handles Warn and Error messages.
	StderrLogger *log.Logger
}

// NewSimpleLogger creates a SimpleLogger with the given minimum level.
func NewSimpleLogger(minLevel LogLevel) *SimpleLogger {
	return &SimpleLogger{
		MinLevel:     minLevel,
		StdoutLogger: log.New(os.Stdout, "", log.LstdFlags),
		StderrLogger: log.New(os.Stderr, "", log.LstdFlags),
	}
}

// Log implements the Logger interface.
func (s *SimpleLogger) Log(level LogLevel, format string, args ...interface{}) {
	if level < s.MinLevel {
		return
	}

	msg := fmt.Sprintf(format, args...)
	switch level {
	case LogLevelDebug, LogLevelInfo:
		s.StdoutLogger.Printf("[%s] %s", level, msg)
	case LogLevelWarn, LogLevelError:
		s.StderrLogger.Printf("[%s] %s", level, msg)
	}
}

// Debug implements the Logger interface.
func (s *SimpleLogger) Debug(format string, args ...interface{}) {
	s.Log(LogLevelDebug, format, args...)
}

// Info implements the Logger interface.
func (s *SimpleLogger) Info(format string, args ...interface{}) {
	s.Log(LogLevelInfo, format, args...)
}

// Warn implements the Logger interface.
func (s *SimpleLogger) Warn(format string, args ...interface{}) {
	s.Log(LogLevelWarn, format, args...)
}

// Error implements the Logger interface.
func (s *SimpleLogger) Error(format string, args ...interface{}) {
	s.Log(LogLevelError, format, args...)
}

// Package logger provides the logging interface shared by tlview components.
// Messages are printf-style and carry a level prefix.
package logger

import (
	"fmt"
	"io"
	"log"
)

// Logger defines the interface for leveled logging across tlview.
type Logger interface {
	// Debug logs a diagnostic message. Backends drop it unless debug output
	// was requested.
	Debug(format string, args ...interface{})

	// Info logs an informational message (e.g., "loaded 3 sources").
	Info(format string, args ...interface{})

	// Warning logs a recoverable problem (e.g., "12 rows skipped").
	Warning(format string, args ...interface{})

	// Error logs a failed operation.
	Error(format string, args ...interface{})

	// Close releases resources held by the logger. Safe to call multiple
	// times.
	Close() error
}

// StandardLogger wraps the stdlib *log.Logger for console or file output.
type StandardLogger struct {
	logger *log.Logger
	debug  bool
	closer io.Closer
}

// NewStandardLogger creates a logger that wraps the given *log.Logger.
// Debug messages are dropped.
func NewStandardLogger(l *log.Logger) *StandardLogger {
	return &StandardLogger{logger: l}
}

// NewDebugLogger creates a StandardLogger that also prints Debug messages.
func NewDebugLogger(l *log.Logger) *StandardLogger {
	return &StandardLogger{logger: l, debug: true}
}

// NewFileLogger writes to w and closes it on Close.
func NewFileLogger(w io.WriteCloser, debug bool) *StandardLogger {
	return &StandardLogger{
		logger: log.New(w, "tlview: ", log.LstdFlags),
		debug:  debug,
		closer: w,
	}
}

// Debug logs a message with [DEBUG] prefix when debug output is on.
func (s *StandardLogger) Debug(format string, args ...interface{}) {
	if !s.debug {
		return
	}
	s.logger.Printf("[DEBUG] "+format, args...)
}

// Info logs an informational message with [INFO] prefix.
func (s *StandardLogger) Info(format string, args ...interface{}) {
	s.logger.Printf("[INFO] "+format, args...)
}

// Warning logs a warning message with [WARNING] prefix.
func (s *StandardLogger) Warning(format string, args ...interface{}) {
	s.logger.Printf("[WARNING] "+format, args...)
}

// Error logs an error message with [ERROR] prefix.
func (s *StandardLogger) Error(format string, args ...interface{}) {
	s.logger.Printf("[ERROR] "+format, args...)
}

// Close closes the underlying writer for file loggers.
func (s *StandardLogger) Close() error {
	if s.closer == nil {
		return nil
	}
	c := s.closer
	s.closer = nil
	return c.Close()
}

// NopLogger is a logger that discards all messages.
type NopLogger struct{}

// NewNopLogger creates a logger that discards all messages.
func NewNopLogger() *NopLogger {
	return &NopLogger{}
}

// Debug discards the message.
func (n *NopLogger) Debug(format string, args ...interface{}) {}

// Info discards the message.
func (n *NopLogger) Info(format string, args ...interface{}) {}

// Warning discards the message.
func (n *NopLogger) Warning(format string, args ...interface{}) {}

// Error discards the message.
func (n *NopLogger) Error(format string, args ...interface{}) {}

// Close is a no-op.
func (n *NopLogger) Close() error {
	return nil
}

var (
	_ Logger = (*StandardLogger)(nil)
	_ Logger = (*NopLogger)(nil)
)

// MockLogger records all log calls for verification in tests.
type MockLogger struct {
	DebugCalls   []string
	InfoCalls    []string
	WarningCalls []string
	ErrorCalls   []string
	CloseCalled  bool
}

// NewMockLogger creates a new MockLogger for testing.
func NewMockLogger() *MockLogger {
	return &MockLogger{
		DebugCalls:   make([]string, 0),
		InfoCalls:    make([]string, 0),
		WarningCalls: make([]string, 0),
		ErrorCalls:   make([]string, 0),
	}
}

// Debug records the formatted message.
func (m *MockLogger) Debug(format string, args ...interface{}) {
	m.DebugCalls = append(m.DebugCalls, fmt.Sprintf(format, args...))
}

// Info records the formatted message.
func (m *MockLogger) Info(format string, args ...interface{}) {
	m.InfoCalls = append(m.InfoCalls, fmt.Sprintf(format, args...))
}

// Warning records the formatted message.
func (m *MockLogger) Warning(format string, args ...interface{}) {
	m.WarningCalls = append(m.WarningCalls, fmt.Sprintf(format, args...))
}

// Error records the formatted message.
func (m *MockLogger) Error(format string, args ...interface{}) {
	m.ErrorCalls = append(m.ErrorCalls, fmt.Sprintf(format, args...))
}

// Close records that Close was called.
func (m *MockLogger) Close() error {
	m.CloseCalled = true
	return nil
}

var _ Logger = (*MockLogger)(nil)

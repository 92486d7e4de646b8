// Package utils provides common utilities shared across packages
package utils

// Logger is the leveled logging contract every component accepts; the
// concrete implementation lives in the logger package.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// NoopLogger discards all messages. It is the default wherever no logger
// is injected, so callers never have to nil-check.
type NoopLogger struct{}

var _ Logger = NoopLogger{}

func (l NoopLogger) Debug(format string, args ...interface{}) {}
func (l NoopLogger) Info(format string, args ...interface{})  {}
func (l NoopLogger) Warn(format string, args ...interface{})  {}
func (l NoopLogger) Error(format string, args ...interface{}) {}

// Package logging provides a small logging abstraction so that the rest of
// the application is decoupled from the concrete logging framework.
package logging

// Logger is the structured logging interface used throughout the
// application. Implementations attach fields to messages rather than
// interpolating them into the message text.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a new logger with an error field attached.
	WithError(err error) Logger

	// WithField returns a new logger with a single field attached.
	WithField(key string, value interface{}) Logger

	// WithFields returns a new logger with multiple fields attached.
	WithFields(fields ...Field) Logger

	// Fatal logs a fatal-level message and exits the program.
	Fatal(msg string, fields ...Field)

	// Fatalf logs a formatted fatal-level message and exits the program.
	Fatalf(msg string, args ...interface{})
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

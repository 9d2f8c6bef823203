package logging

import "fmt"

// MockLogger captures log entries for verification in tests instead of
// writing them anywhere.
type MockLogger struct {
	Entries       []LogEntry
	pendingError  error
	pendingFields []Field
}

// LogEntry is a single captured log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

// NewMockLogger creates an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	allFields := append(append([]Field{}, m.pendingFields...), fields...)
	m.Entries = append(m.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   m.pendingError,
	})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// WithError returns a logger that attaches err to subsequent entries.
// The mock shares the entry slice with its parent, so assertions on the
// original logger still see entries logged through the derived one.
func (m *MockLogger) WithError(err error) Logger {
	return &derivedMock{parent: m.root(), pendingError: err, pendingFields: m.pendingFields}
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

func (m *MockLogger) WithFields(fields ...Field) Logger {
	allFields := append(append([]Field{}, m.pendingFields...), fields...)
	return &derivedMock{parent: m.root(), pendingError: m.pendingError, pendingFields: allFields}
}

// Fatal records the message but does not exit, so tests can assert on it.
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("FATAL", msg, fields) }

func (m *MockLogger) Fatalf(msg string, args ...interface{}) {
	m.record("FATAL", fmt.Sprintf(msg, args...), nil)
}

func (m *MockLogger) root() *MockLogger { return m }

// HasMessage reports whether any captured entry carries the given message.
func (m *MockLogger) HasMessage(msg string) bool {
	for _, e := range m.Entries {
		if e.Message == msg {
			return true
		}
	}
	return false
}

// derivedMock forwards entries to its root MockLogger while carrying the
// pending error and fields added by WithError/WithField(s).
type derivedMock struct {
	parent        *MockLogger
	pendingError  error
	pendingFields []Field
}

func (d *derivedMock) record(level, msg string, fields []Field) {
	allFields := append(append([]Field{}, d.pendingFields...), fields...)
	d.parent.Entries = append(d.parent.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   d.pendingError,
	})
}

func (d *derivedMock) Debug(msg string, fields ...Field) { d.record("DEBUG", msg, fields) }
func (d *derivedMock) Info(msg string, fields ...Field)  { d.record("INFO", msg, fields) }
func (d *derivedMock) Warn(msg string, fields ...Field)  { d.record("WARN", msg, fields) }
func (d *derivedMock) Error(msg string, fields ...Field) { d.record("ERROR", msg, fields) }
func (d *derivedMock) Fatal(msg string, fields ...Field) { d.record("FATAL", msg, fields) }

func (d *derivedMock) Fatalf(msg string, args ...interface{}) {
	d.record("FATAL", fmt.Sprintf(msg, args...), nil)
}

func (d *derivedMock) WithError(err error) Logger {
	return &derivedMock{parent: d.parent, pendingError: err, pendingFields: d.pendingFields}
}

func (d *derivedMock) WithField(key string, value interface{}) Logger {
	return d.WithFields(Field{Key: key, Value: value})
}

func (d *derivedMock) WithFields(fields ...Field) Logger {
	allFields := append(append([]Field{}, d.pendingFields...), fields...)
	return &derivedMock{parent: d.parent, pendingError: d.pendingError, pendingFields: allFields}
}

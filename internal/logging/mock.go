package logging

// MockLogger is a Logger implementation for tests. It records every entry so
// tests can assert on what was logged, and never exits on Fatal. Loggers
// derived via WithError/WithField/WithFields record into the mock they were
// derived from, so a test holding the original mock sees all entries.
type MockLogger struct {
	Entries       []LogEntry
	root          *MockLogger
	pendingError  error
	pendingFields []Field
}

// LogEntry is a single captured log entry.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

// target resolves the mock that owns the entry storage.
func (m *MockLogger) target() *MockLogger {
	if m.root != nil {
		return m.root
	}
	return m
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	allFields := make([]Field, 0, len(m.pendingFields)+len(fields))
	allFields = append(allFields, m.pendingFields...)
	allFields = append(allFields, fields...)

	t := m.target()
	t.Entries = append(t.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  allFields,
		Error:   m.pendingError,
	})
}

// Debug records a debug-level entry.
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }

// Info records an info-level entry.
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("INFO", msg, fields) }

// Warn records a warning-level entry.
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("WARN", msg, fields) }

// Error records an error-level entry.
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// Fatal records a fatal-level entry without exiting.
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("FATAL", msg, fields) }

// WithError returns a derived logger with an error attached. Entries recorded
// through it land on the mock it was derived from.
func (m *MockLogger) WithError(err error) Logger {
	return &MockLogger{
		root:          m.target(),
		pendingError:  err,
		pendingFields: m.pendingFields,
	}
}

// WithField returns a derived logger with a single field attached.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

// WithFields returns a derived logger with multiple fields attached.
func (m *MockLogger) WithFields(fields ...Field) Logger {
	allFields := make([]Field, 0, len(m.pendingFields)+len(fields))
	allFields = append(allFields, m.pendingFields...)
	allFields = append(allFields, fields...)
	return &MockLogger{
		root:          m.target(),
		pendingError:  m.pendingError,
		pendingFields: allFields,
	}
}

package logger

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// TestLogEntry is one recorded call.
type TestLogEntry struct {
	Level   string
	Message string
	Fields  Fields
}

// journal is shared by a TestLogger and every logger derived from it.
type journal struct {
	mu      sync.RWMutex
	entries []TestLogEntry
}

func (j *journal) append(entry TestLogEntry) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, entry)
}

func (j *journal) snapshot() []TestLogEntry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return slices.Clone(j.entries)
}

func (j *journal) reset() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = nil
}

// TestLogger keeps entries in memory so tests can assert on what an
// operation logged, including the fields attached along the way.
type TestLogger struct {
	journal *journal
	fields  Fields
}

func NewTestLogger() *TestLogger {
	return &TestLogger{journal: &journal{}, fields: Fields{}}
}

func (l *TestLogger) record(level string, args []any) {
	l.journal.append(TestLogEntry{
		Level:   level,
		Message: fmt.Sprint(args...),
		Fields:  maps.Clone(l.fields),
	})
}

func (l *TestLogger) Trace(args ...any) { l.record("trace", args) }
func (l *TestLogger) Debug(args ...any) { l.record("debug", args) }
func (l *TestLogger) Info(args ...any)  { l.record("info", args) }
func (l *TestLogger) Warn(args ...any)  { l.record("warn", args) }
func (l *TestLogger) Error(args ...any) { l.record("error", args) }
func (l *TestLogger) Fatal(args ...any) { l.record("fatal", args) }

func (l *TestLogger) WithFields(fields Fields) Logger {
	merged := maps.Clone(l.fields)
	maps.Copy(merged, fields)
	return &TestLogger{journal: l.journal, fields: merged}
}

func (l *TestLogger) WithField(key string, value any) Logger {
	return l.WithFields(Fields{key: value})
}

func (l *TestLogger) WithError(err error) Logger {
	return l.WithFields(Fields{FieldError: err})
}

// Entries returns every recorded entry in order.
func (l *TestLogger) Entries() []TestLogEntry {
	return l.journal.snapshot()
}

// Filter returns the entries match accepts, in order.
func (l *TestLogger) Filter(match func(TestLogEntry) bool) []TestLogEntry {
	var out []TestLogEntry
	for _, entry := range l.journal.snapshot() {
		if match(entry) {
			out = append(out, entry)
		}
	}
	return out
}

// Messages returns the messages logged at level.
func (l *TestLogger) Messages(level string) []string {
	var messages []string
	for _, entry := range l.Filter(atLevel(level)) {
		messages = append(messages, entry.Message)
	}
	return messages
}

// Find returns the first entry with message.
func (l *TestLogger) Find(message string) (TestLogEntry, bool) {
	found := l.Filter(func(e TestLogEntry) bool { return e.Message == message })
	if len(found) == 0 {
		return TestLogEntry{}, false
	}
	return found[0], true
}

func (l *TestLogger) Has(level, message string) bool {
	return slices.Contains(l.Messages(level), message)
}

func (l *TestLogger) Len() int {
	return len(l.journal.snapshot())
}

func (l *TestLogger) Reset() {
	l.journal.reset()
}

func atLevel(level string) func(TestLogEntry) bool {
	return func(e TestLogEntry) bool { return e.Level == level }
}

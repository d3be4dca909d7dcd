package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// LogRecord is one captured slog record with its attributes flattened.
// Attributes bound with With appear alongside record attributes; grouped
// keys are joined with a dot.
type LogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

type recordSink struct {
	mu      sync.Mutex
	records []LogRecord
}

// LogCapture is a slog.Handler recording every record at every level.
// Handlers derived through WithAttrs and WithGroup share the same records.
type LogCapture struct {
	sink   *recordSink
	prefix string
	bound  map[string]any
	t      *testing.T
}

// NewTestLogger returns a logger backed by a fresh LogCapture. Records are
// echoed through t.Logf so they show up for failing tests.
func NewTestLogger(t *testing.T) (*slog.Logger, *LogCapture) {
	h := &LogCapture{sink: &recordSink{}, t: t}
	return slog.New(h), h
}

func (h *LogCapture) Enabled(context.Context, slog.Level) bool { return true }

func (h *LogCapture) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any, len(h.bound)+r.NumAttrs())
	for k, v := range h.bound {
		attrs[k] = v
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[h.prefix+a.Key] = a.Value.Any()
		return true
	})

	h.sink.mu.Lock()
	h.sink.records = append(h.sink.records, LogRecord{Level: r.Level, Message: r.Message, Attrs: attrs})
	h.sink.mu.Unlock()

	if h.t != nil {
		h.t.Logf("%s %s %v", r.Level, r.Message, attrs)
	}
	return nil
}

func (h *LogCapture) WithAttrs(attrs []slog.Attr) slog.Handler {
	bound := make(map[string]any, len(h.bound)+len(attrs))
	for k, v := range h.bound {
		bound[k] = v
	}
	for _, a := range attrs {
		bound[h.prefix+a.Key] = a.Value.Any()
	}
	return &LogCapture{sink: h.sink, prefix: h.prefix, bound: bound, t: h.t}
}

func (h *LogCapture) WithGroup(name string) slog.Handler {
	return &LogCapture{sink: h.sink, prefix: h.prefix + name + ".", bound: h.bound, t: h.t}
}

// GetRecords returns a copy of everything captured so far
func (h *LogCapture) GetRecords() []LogRecord {
	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()
	return append([]LogRecord(nil), h.sink.records...)
}

func (h *LogCapture) filter(keep func(LogRecord) bool) []LogRecord {
	var out []LogRecord
	for _, r := range h.GetRecords() {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// GetRecordsByLevel returns records logged at exactly level
func (h *LogCapture) GetRecordsByLevel(level slog.Level) []LogRecord {
	return h.filter(func(r LogRecord) bool { return r.Level == level })
}

// GetRecordsByMessage returns records whose message contains msg
func (h *LogCapture) GetRecordsByMessage(msg string) []LogRecord {
	return h.filter(func(r LogRecord) bool { return strings.Contains(r.Message, msg) })
}

func (h *LogCapture) ContainsMessage(msg string) bool {
	return len(h.GetRecordsByMessage(msg)) > 0
}

// ContainsAttr reports whether any record has key equal to value.
// Integers are captured as int64.
func (h *LogCapture) ContainsAttr(key string, value any) bool {
	return len(h.filter(func(r LogRecord) bool {
		v, ok := r.Attrs[key]
		return ok && v == value
	})) > 0
}

func (h *LogCapture) Clear() {
	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()
	h.sink.records = nil
}

func (h *LogCapture) Count() int {
	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()
	return len(h.sink.records)
}

// AssertLogContains fails t unless a record at level contains message
func AssertLogContains(t *testing.T, h *LogCapture, level slog.Level, message string) {
	t.Helper()
	for _, r := range h.GetRecordsByLevel(level) {
		if strings.Contains(r.Message, message) {
			return
		}
	}
	assert.Failf(t, "log message not found", "level %s, message %q, captured %v", level, message, messages(h))
}

// AssertLogAttr fails t unless some record carries key=value
func AssertLogAttr(t *testing.T, h *LogCapture, key string, value any) {
	t.Helper()
	assert.Truef(t, h.ContainsAttr(key, value), "log attribute %s=%v not found", key, value)
}

// AssertNoErrors fails t for every error-level record
func AssertNoErrors(t *testing.T, h *LogCapture) {
	t.Helper()
	for _, r := range h.GetRecordsByLevel(slog.LevelError) {
		assert.Failf(t, "unexpected error log", "%s %v", r.Message, r.Attrs)
	}
}

func messages(h *LogCapture) []string {
	records := h.GetRecords()
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Message
	}
	return out
}

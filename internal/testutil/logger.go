// Package testutil provides logging helpers for tests.
package testutil

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// Record is a captured log record.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
}

// Capture is a slog handler that keeps every record for later inspection.
type Capture struct {
	mu      sync.Mutex
	records []Record
	attrs   []slog.Attr
	parent  *Capture
}

// NewCaptureLogger returns a logger and the capture behind it.
func NewCaptureLogger() (*slog.Logger, *Capture) {
	c := &Capture{}
	return slog.New(c), c
}

// Enabled implements slog.Handler.
func (c *Capture) Enabled(context.Context, slog.Level) bool { return true }

// Handle implements slog.Handler.
func (c *Capture) Handle(_ context.Context, r slog.Record) error {
	rec := Record{Level: r.Level, Message: r.Message, Attrs: make(map[string]string)}
	for _, a := range c.attrs {
		rec.Attrs[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		rec.Attrs[a.Key] = a.Value.String()
		return true
	})
	root := c.root()
	root.mu.Lock()
	defer root.mu.Unlock()
	root.records = append(root.records, rec)
	return nil
}

// WithAttrs implements slog.Handler.
func (c *Capture) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Capture{
		attrs:  append(append([]slog.Attr(nil), c.attrs...), attrs...),
		parent: c.root(),
	}
}

// WithGroup implements slog.Handler. Groups are flattened.
func (c *Capture) WithGroup(string) slog.Handler { return c }

// Records returns the captured records.
func (c *Capture) Records() []Record {
	root := c.root()
	root.mu.Lock()
	defer root.mu.Unlock()
	return append([]Record(nil), root.records...)
}

// Count returns how many records were logged at level.
func (c *Capture) Count(level slog.Level) int {
	n := 0
	for _, r := range c.Records() {
		if r.Level == level {
			n++
		}
	}
	return n
}

func (c *Capture) root() *Capture {
	if c.parent != nil {
		return c.parent
	}
	return c
}

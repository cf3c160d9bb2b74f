// Package ledger implements the expectation ledger (the per-server
// matched/unmatched counters plus the request log; per-mock hit counters
// live on core.Mock) and verification-report assembly.
package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/stubwire/stubwire/internal/core"
)

// Entry is one recorded request, annotated with diagnostics the raw
// core.Request doesn't carry: a correlation ID, arrival time, and
// whether it matched a mock.
type Entry struct {
	ID        string
	Request   *core.Request
	Timestamp time.Time
	Matched   bool
	MockName  string
}

// RequestLog stores received requests in arrival order. When disabled
// at construction, List returns (nil, false) so callers can distinguish
// "recording disabled" from "no requests yet".
type RequestLog struct {
	mu      sync.Mutex
	enabled bool
	entries []*Entry
}

// NewRequestLog returns a RequestLog that records requests only when
// enabled is true.
func NewRequestLog(enabled bool) *RequestLog {
	return &RequestLog{enabled: enabled}
}

// Enabled reports whether recording is turned on.
func (l *RequestLog) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// Append records req as having arrived, optionally noting the mock that
// matched it. It is a no-op when recording is disabled. Writes are
// serialized; the log is append-only.
func (l *RequestLog) Append(req *core.Request, matched bool, mockName string) *Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return nil
	}
	e := &Entry{
		ID:        uuid.New().String(),
		Request:   req,
		Timestamp: time.Now(),
		Matched:   matched,
		MockName:  mockName,
	}
	l.entries = append(l.entries, e)
	return e
}

// List returns a copy of the recorded entries, and false if recording is
// disabled.
func (l *RequestLog) List() ([]*Entry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled {
		return nil, false
	}
	out := make([]*Entry, len(l.entries))
	copy(out, l.entries)
	return out, true
}

// Clear empties the log without changing whether it's enabled.
func (l *RequestLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}

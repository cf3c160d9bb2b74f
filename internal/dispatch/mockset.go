// Package dispatch implements the ordered mock registry and the
// request-dispatch algorithm.
package dispatch

import (
	"sync"
	"sync/atomic"

	"github.com/stubwire/stubwire/internal/core"
)

// MockSet is the ordered, scope-tagged collection of currently mounted
// mocks on a server instance. It is safe for concurrent use: mutation
// (Register/Unregister/Reset) takes an exclusive writer lock; Snapshot
// takes a shared reader lock just long enough to copy a slice, so
// dispatch never observes a torn view.
type MockSet struct {
	mu      sync.RWMutex
	entries []*core.Mock
	seq     atomic.Int64
}

// NewMockSet returns an empty MockSet.
func NewMockSet() *MockSet {
	return &MockSet{}
}

// Register appends m to the set, assigning it the next mount-order
// sequence number used for LIFO tie-breaking.
func (s *MockSet) Register(m *core.Mock) {
	m.Seq = s.seq.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, m)
}

// Unregister removes every entry whose ScopeTag equals scopeTag,
// returning the removed mocks. For the current design there is exactly
// one such entry per scoped guard, but the set supports removing a
// group.
func (s *MockSet) Unregister(scopeTag string) []*core.Mock {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0:0]
	var removed []*core.Mock
	for _, m := range s.entries {
		if m.ScopeTag == scopeTag {
			removed = append(removed, m)
		} else {
			kept = append(kept, m)
		}
	}
	s.entries = kept
	return removed
}

// Snapshot returns a copy of the current entries slice, safe to read
// without holding any lock — the dispatch engine holds this read-only
// view for the duration of one dispatch.
func (s *MockSet) Snapshot() []*core.Mock {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*core.Mock, len(s.entries))
	copy(out, s.entries)
	return out
}

// Global returns only the entries mounted with core.ScopeGlobal, used by
// server-level verification.
func (s *MockSet) Global() []*core.Mock {
	all := s.Snapshot()
	out := all[:0:0]
	for _, m := range all {
		if m.ScopeTag == core.ScopeGlobal {
			out = append(out, m)
		}
	}
	return out
}

// Reset clears every entry, global and scoped alike.
func (s *MockSet) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// Len reports the number of currently mounted entries.
func (s *MockSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

package ledger

import "sync/atomic"

// Ledger tracks the one count per-mock hit counters don't cover: the
// number of requests that matched no mock at all. Per-mock counts live
// on core.Mock itself (see internal/core.Mock.HitCount), so that a mock
// keeps its count even after it's been unmounted and removed from the
// MockSet.
type Ledger struct {
	unmatched atomic.Uint64
	served    atomic.Uint64
}

// NewLedger returns an empty Ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// RecordUnmatched records one request that dispatched to no mock.
func (l *Ledger) RecordUnmatched() {
	l.unmatched.Add(1)
	l.served.Add(1)
}

// RecordMatched records one request that dispatched to some mock (the
// mock's own counter is incremented separately by the dispatch engine).
func (l *Ledger) RecordMatched() {
	l.served.Add(1)
}

// Unmatched returns the unmatched-request count.
func (l *Ledger) Unmatched() uint64 { return l.unmatched.Load() }

// Served returns the total number of requests dispatched, matched or
// not, counted once the server has finished dispatching each one. A
// request abandoned during its response delay, or whose responder
// panicked, has already been counted on its mock but is not counted
// here.
func (l *Ledger) Served() uint64 { return l.served.Load() }

// Reset zeroes both counters.
func (l *Ledger) Reset() {
	l.unmatched.Store(0)
	l.served.Store(0)
}

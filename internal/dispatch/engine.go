package dispatch

import (
	"github.com/stubwire/stubwire/internal/core"
)

// Result is the outcome of one call to Dispatch.
type Result struct {
	// Mock is the winning mock, or nil if nothing matched.
	Mock *core.Mock
	// Response is the ResponseSpec to write back: either the winning
	// mock's responder output, or a synthesized 404.
	Response core.ResponseSpec
	// Matched reports whether a mock won (equivalently, Mock != nil).
	Matched bool
}

// Dispatch selects a winning mock for req out of snapshot and produces
// the ResponseSpec to return:
//
//  1. Partition eligible mocks: budget > 0 (or unlimited) AND the full
//     matcher list evaluates to true, matchers evaluated in declaration
//     order with short-circuit.
//  2. Choose the eligible mock with the numerically lowest priority;
//     ties broken LIFO (highest Seq, i.e. most-recently-mounted, wins).
//  3. On a winner: claim its budget, increment its hit counter, invoke
//     its responder. If a concurrent dispatch already claimed the last
//     hit, the mock is dropped from the candidate pool and selection
//     retries, so two requests can never both win the same final hit.
//  4. On no winner: synthesize 404 with an empty body.
//
// Dispatch performs no locking; callers pass an already-taken Snapshot.
func Dispatch(snapshot []*core.Mock, req *core.Request) Result {
	candidates := snapshot
	for {
		winner := SelectWinner(candidates, req)
		if winner == nil {
			return Result{Matched: false, Response: core.NotFoundResponse()}
		}
		if !winner.RecordHit() {
			candidates = without(candidates, winner)
			continue
		}
		resp := winner.Responder.Respond(req)
		return Result{Mock: winner, Response: resp, Matched: true}
	}
}

// without returns a copy of list with target removed, used to retry
// selection after losing a race to claim target's last hit.
func without(list []*core.Mock, target *core.Mock) []*core.Mock {
	out := make([]*core.Mock, 0, len(list)-1)
	for _, m := range list {
		if m != target {
			out = append(out, m)
		}
	}
	return out
}

// SelectWinner picks the winning mock without mutating any state, so it
// can also be used by diagnostics ("closest-matcher") code that must
// not count as a real dispatch.
func SelectWinner(snapshot []*core.Mock, req *core.Request) *core.Mock {
	var winner *core.Mock
	for _, m := range snapshot {
		if !m.Eligible() {
			continue
		}
		if !core.AllMatch(m.Matchers, req) {
			continue
		}
		if winner == nil {
			winner = m
			continue
		}
		if betterMatch(m, winner) {
			winner = m
		}
	}
	return winner
}

// betterMatch reports whether candidate should replace current as the
// winner: lower priority number wins; on a tie, the more-recently
// mounted (higher Seq) wins (LIFO).
func betterMatch(candidate, current *core.Mock) bool {
	if candidate.Priority != current.Priority {
		return candidate.Priority < current.Priority
	}
	return candidate.Seq > current.Seq
}

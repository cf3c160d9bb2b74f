package stubwire

import (
	"github.com/stubwire/stubwire/internal/core"
	"github.com/stubwire/stubwire/pkg/validation"
)

const defaultPriority = 5

// MockBuilder accumulates a mock's configuration through a fluent chain.
// It is not safe for concurrent use — build one mock per goroutine, the
// same way http.NewRequest is built before being handed off.
type MockBuilder struct {
	matchers    []Matcher
	responder   Responder
	priority    int
	name        string
	expectation *Times
	budget      *int64
}

// Given starts a builder with its first matcher.
func Given(m Matcher) *MockBuilder {
	return (&MockBuilder{priority: defaultPriority}).And(m)
}

// And appends another matcher; the mock only matches a request that
// satisfies every matcher in the chain (conjunction).
func (b *MockBuilder) And(m Matcher) *MockBuilder {
	b.matchers = append(b.matchers, m)
	return b
}

// RespondWith sets the mock's responder. Exactly one is required.
func (b *MockBuilder) RespondWith(r Responder) *MockBuilder {
	b.responder = r
	return b
}

// Expect sets the expected invocation count range, checked at
// verification time.
func (b *MockBuilder) Expect(t Times) *MockBuilder {
	cp := t
	b.expectation = &cp
	return b
}

// UpToNTimes caps the mock's remaining-hits budget at n; once exhausted
// the mock becomes ineligible regardless of whether its matchers would
// otherwise match. n == 0 is legal and makes the mock immediately
// ineligible rather than panicking.
func (b *MockBuilder) UpToNTimes(n int) *MockBuilder {
	if n < 0 {
		n = 0
	}
	budget := core.NewBudget(uint64(n))
	b.budget = budget
	return b
}

// WithPriority sets the mock's priority; among matching mocks a lower
// number wins over a higher one, and equal priorities go to the most
// recently mounted mock. Valid range is [1, 255], checked at Mount.
func (b *MockBuilder) WithPriority(p int) *MockBuilder {
	b.priority = p
	return b
}

// Named attaches a diagnostic label used in verification reports and
// the request log's compact rendering.
func (b *MockBuilder) Named(s string) *MockBuilder {
	b.name = s
	return b
}

// validate checks the builder-time invariants: a nonempty matcher list,
// a configured responder, and an in-range priority.
func (b *MockBuilder) validate() *validation.ConfigError {
	if len(b.matchers) == 0 {
		return validation.NewEmptyMatchersError()
	}
	if b.responder == nil {
		return validation.NewNoResponderError()
	}
	if b.priority < 1 || b.priority > 255 {
		return validation.NewPriorityError(b.priority)
	}
	return nil
}

// build assembles the finished *Mock. ID and ScopeTag are left zero;
// Register/RegisterScoped assign them at mount time.
func (b *MockBuilder) build() *Mock {
	return &core.Mock{
		Name:        b.name,
		Matchers:    append([]Matcher(nil), b.matchers...),
		Responder:   b.responder,
		Priority:    b.priority,
		Expectation: b.expectation,
		Budget:      b.budget,
	}
}

// Mount finalizes the mock and registers it globally on s: it remains
// eligible for dispatch until s is reset or closed. A builder-time
// configuration mistake panics with a *validation.ConfigError rather
// than being discovered later at match time.
func (b *MockBuilder) Mount(s *Server) *Mock {
	if err := b.validate(); err != nil {
		panic(err)
	}
	m := b.build()
	s.Register(m)
	return m
}

// MountAsScoped finalizes the mock and registers it under a fresh
// scoped-id; releasing the returned guard unmounts it and verifies its
// expectation in isolation.
func (b *MockBuilder) MountAsScoped(s *Server) (*Mock, *ScopedGuard) {
	if err := b.validate(); err != nil {
		panic(err)
	}
	m := b.build()
	guard := s.RegisterScoped(m)
	return m, guard
}

package stubwire

import (
	"runtime"

	"github.com/stubwire/stubwire/internal/id"
)

func scopedTag() string {
	return id.Short()
}

// ScopedGuard owns one scope-mounted mock. Releasing it unmounts the
// mock and verifies its expectation in isolation.
//
// Go has no destructor, so nothing unmounts a ScopedGuard automatically.
// Callers MUST call Release, conventionally via defer immediately after
// MountAsScoped returns — a ScopedGuard discarded without Release is a
// usage bug. As a best-effort backstop, a ScopedGuard that is garbage
// collected without Release having run logs a warning through the
// owning server's logger; this is diagnostic only and must not be
// relied on for correctness.
type ScopedGuard struct {
	server  *Server
	tag     string
	mock    *Mock
	release func()
}

func newScopedGuard(s *Server, tag string, m *Mock) *ScopedGuard {
	g := &ScopedGuard{server: s, tag: tag, mock: m}
	runtime.SetFinalizer(g, func(g *ScopedGuard) {
		if g.release == nil {
			s.logger().Warn("scoped guard garbage collected without Release",
				"mock", g.mock.Name, "mock_id", g.mock.ID)
		}
	})
	return g
}

// Release unmounts the guard's mock and verifies its expectation. It is
// safe to call more than once; only the first call has any effect.
func (g *ScopedGuard) Release() {
	if g.release != nil {
		return
	}
	g.release = func() {}
	runtime.SetFinalizer(g, nil)
	g.server.releaseScoped(g.tag, g.mock)
}

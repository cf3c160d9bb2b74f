package stubwire

import "sync"

// poolSoftCap and poolIdleCap bound the pool's behavior: beyond the
// soft cap, checkouts still succeed by spinning up fresh instances
// rather than blocking; above the idle cap, a checked-in instance is
// shut down instead of kept warm.
const (
	poolSoftCap = 8
	poolIdleCap = 4
)

// pool hands out warm bareServer instances to avoid a fresh
// listener-bind and goroutine spin-up on every Start. Pooling is an
// optimization invisible to the caller except in faster test start-up.
// Instances started with a user-supplied listener (WithListener) bypass
// the pool entirely — see Server.Close.
type pool struct {
	mu   sync.Mutex
	idle []*bareServer
	live int
}

var defaultPool = &pool{}

// checkout hands out an idle instance, re-configured and reset for the
// new caller, or spins up a fresh one.
func (p *pool) checkout(cfg serverConfig) *bareServer {
	if cfg.listener != nil {
		return newBareServer(cfg)
	}

	p.mu.Lock()
	if n := len(p.idle); n > 0 {
		bs := p.idle[n-1]
		p.idle = p.idle[:n-1]
		p.live++
		live := p.live
		over := live > poolSoftCap
		p.mu.Unlock()
		bs.applyConfig(cfg)
		bs.resetState()
		if over {
			bs.logger.Debug("pool live count exceeds soft cap", "live", live, "instance", bs.label)
		}
		return bs
	}
	p.live++
	live := p.live
	over := live > poolSoftCap
	p.mu.Unlock()

	bs := newBareServer(cfg)
	if over {
		bs.logger.Debug("pool live count exceeds soft cap", "live", live, "instance", bs.label)
	}
	return bs
}

// checkin returns bs to the idle pool after the caller has verified
// and is done with it, or shuts it down outright past the idle cap.
func (p *pool) checkin(bs *bareServer) {
	bs.resetState()

	p.mu.Lock()
	p.live--
	full := len(p.idle) >= poolIdleCap
	if !full {
		p.idle = append(p.idle, bs)
	}
	p.mu.Unlock()

	if full {
		bs.shutdown()
	}
}

package stubwire

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stubwire/stubwire/internal/core"
	"github.com/stubwire/stubwire/internal/dispatch"
	"github.com/stubwire/stubwire/internal/id"
	"github.com/stubwire/stubwire/internal/ledger"
	"github.com/stubwire/stubwire/pkg/logging"
)

// serverConfig collects ServerOption settings before a Server starts.
type serverConfig struct {
	listener       net.Listener
	recording      bool
	logger         *slog.Logger
	bodyPrintLimit int
}

func newServerConfig(opts []ServerOption) serverConfig {
	cfg := serverConfig{
		recording:      true,
		logger:         logging.Nop(),
		bodyPrintLimit: ledger.MaxLogBodySize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ServerOption configures a Server before it starts.
type ServerOption func(*serverConfig)

// WithListener supplies a pre-bound listener instead of an ephemeral
// one. A server started with a custom listener is never returned to
// the pool.
func WithListener(l net.Listener) ServerOption {
	return func(c *serverConfig) { c.listener = l }
}

// WithRequestRecording toggles the request log. Default true.
func WithRequestRecording(enabled bool) ServerOption {
	return func(c *serverConfig) { c.recording = enabled }
}

// WithLogger sets the server's logger; unset defaults to logging.Nop().
func WithLogger(l *slog.Logger) ServerOption {
	return func(c *serverConfig) { c.logger = l }
}

// WithBodyPrintLimit caps how many bytes of a request body appear in a
// verification report's request-log rendering.
func WithBodyPrintLimit(n int) ServerOption {
	return func(c *serverConfig) { c.bodyPrintLimit = n }
}

// bareServer owns the actual listening socket, HTTP server, and
// per-instance state a pool checkout reuses. Server adds the
// testing.TB binding on top.
type bareServer struct {
	listener     net.Listener
	userListener bool
	http         *http.Server

	mocks  *dispatch.MockSet
	ledger *ledger.Ledger
	reqLog *ledger.RequestLog
	ids    *id.Counter

	logger         *slog.Logger
	bodyPrintLimit int
	label          string

	mu          sync.Mutex
	delayCtx    context.Context
	delayCancel context.CancelFunc
}

func newBareServer(cfg serverConfig) *bareServer {
	l := cfg.listener
	userListener := l != nil
	if l == nil {
		var err error
		l, err = net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			panic("stubwire: failed to bind listener: " + err.Error())
		}
	}

	bs := &bareServer{
		listener:     l,
		userListener: userListener,
		mocks:        dispatch.NewMockSet(),
		ledger:       ledger.NewLedger(),
		ids:          &id.Counter{},
		label:        uuid.NewString(),
	}
	bs.applyConfig(cfg)
	bs.http = &http.Server{Handler: http.HandlerFunc(bs.handle)}
	go func() {
		_ = bs.http.Serve(l)
	}()
	return bs
}

// applyConfig installs a fresh configuration on a bareServer, used both
// at construction and when the pool hands out a reused instance whose
// caller asked for different options.
func (bs *bareServer) applyConfig(cfg serverConfig) {
	bs.logger = cfg.logger
	bs.bodyPrintLimit = cfg.bodyPrintLimit
	bs.reqLog = ledger.NewRequestLog(cfg.recording)

	bs.mu.Lock()
	bs.delayCtx, bs.delayCancel = context.WithCancel(context.Background())
	bs.mu.Unlock()
}

// resetState clears mounted mocks, counters, and the request log
// without touching configuration.
func (bs *bareServer) resetState() {
	bs.mocks.Reset()
	bs.ledger.Reset()
	bs.reqLog.Clear()
}

func (bs *bareServer) shutdown() {
	bs.mu.Lock()
	bs.delayCancel()
	bs.mu.Unlock()
	_ = bs.http.Close()
}

func (bs *bareServer) handle(w http.ResponseWriter, r *http.Request) {
	defer bs.recoverPanic(w, r)

	req, err := core.CaptureRequest(r)
	if err != nil {
		http.Error(w, "failed to read request body", http.StatusInternalServerError)
		return
	}

	result := dispatch.Dispatch(bs.mocks.Snapshot(), req)

	bs.mu.Lock()
	ctx := bs.delayCtx
	bs.mu.Unlock()

	if result.Response.Delay > 0 {
		timer := time.NewTimer(result.Response.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return
		}
	}

	mockName := ""
	if result.Matched {
		bs.ledger.RecordMatched()
		mockName = result.Mock.Name
		bs.logger.Debug("dispatch matched", "mock", mockName, "path", req.URL.Path)
	} else {
		bs.ledger.RecordUnmatched()
		bs.logger.Warn("dispatch unmatched", "method", req.Method, "path", req.URL.Path)
	}
	bs.reqLog.Append(req, result.Matched, mockName)

	writeResponse(w, result.Response)
}

func writeResponse(w http.ResponseWriter, spec core.ResponseSpec) {
	for k, vs := range spec.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	w.WriteHeader(spec.StatusCode)
	if len(spec.Body) > 0 {
		_, _ = w.Write(spec.Body)
	}
}

// recoverPanic handles a responder panicking mid-write: the connection
// is closed and the panic logged, rather than crashing the server.
func (bs *bareServer) recoverPanic(w http.ResponseWriter, r *http.Request) {
	rec := recover()
	if rec == nil {
		return
	}
	bs.logger.Error("responder panicked", "error", rec, "path", r.URL.Path)
	if hj, ok := w.(http.Hijacker); ok {
		if conn, _, err := hj.Hijack(); err == nil {
			conn.Close()
		}
	}
}

// Server is a handle on a running mock server: a bound listener, the
// dispatch engine's MockSet, the ledger, and the request log. Obtain
// one with Start or StartBare.
type Server struct {
	bare *bareServer
	t    testing.TB

	closeOnce sync.Once
}

// Start requests a fresh instance from the pool and binds its
// lifecycle to t: verification failures on Close or scoped-guard
// release call t.Fatalf, unless t has already failed, in which case
// they're logged via t.Logf so they don't mask the original failure.
func Start(t testing.TB, opts ...ServerOption) *Server {
	cfg := newServerConfig(opts)
	return &Server{bare: defaultPool.checkout(cfg), t: t}
}

// StartBare is like Start but with no testing.TB: verification
// failures panic instead. Intended for use outside `go test`.
func StartBare(opts ...ServerOption) *Server {
	cfg := newServerConfig(opts)
	return &Server{bare: defaultPool.checkout(cfg)}
}

// URI returns the server's base URL, e.g. "http://127.0.0.1:54321".
func (s *Server) URI() string {
	return "http://" + s.bare.listener.Addr().String()
}

// Address returns the server's bound socket address.
func (s *Server) Address() net.Addr {
	return s.bare.listener.Addr()
}

func (s *Server) nextMockID() int64 {
	return s.bare.ids.Next()
}

func (s *Server) logger() *slog.Logger {
	return s.bare.logger
}

func (s *Server) register(m *Mock) {
	s.bare.mocks.Register(m)
	s.bare.logger.Debug("mock mounted", "name", m.Name, "id", m.ID, "priority", m.Priority)
}

// Register mounts m globally: it remains eligible for dispatch until s
// is reset or closed. Most callers build mocks through Given(...) and
// MockBuilder.Mount, which validates builder-time mistakes before
// reaching here; Register is the lower-level primitive for callers
// that construct a *Mock directly. A zero ID is assigned one from s.
func (s *Server) Register(m *Mock) {
	if m.ID == 0 {
		m.ID = s.nextMockID()
	}
	m.ScopeTag = core.ScopeGlobal
	s.register(m)
}

// RegisterScoped mounts m under a fresh scoped-id and returns a guard;
// releasing the guard unmounts m and verifies its expectation in
// isolation. See Register for when to use this over MockBuilder.MountAsScoped.
func (s *Server) RegisterScoped(m *Mock) *ScopedGuard {
	if m.ID == 0 {
		m.ID = s.nextMockID()
	}
	tag := scopedTag()
	m.ScopeTag = tag
	s.register(m)
	return newScopedGuard(s, tag, m)
}

// releaseScoped unmounts the scope-tagged mock and verifies it in
// isolation.
func (s *Server) releaseScoped(tag string, m *Mock) {
	s.bare.mocks.Unregister(tag)
	report := ledger.VerifyOne(m)
	if report == nil || report.Satisfied {
		s.bare.logger.Debug("scoped guard released", "mock", m.Name)
		return
	}
	s.reportFailure([]*ledger.Report{report})
}

// Verify checks every global mock's expectation and raises a fatal
// test failure carrying the aggregated report if any is unsatisfied.
func (s *Server) Verify() {
	failing := ledger.Failing(ledger.VerifyAll(s.bare.mocks.Global()))
	if len(failing) == 0 {
		return
	}
	s.reportFailure(failing)
}

func (s *Server) reportFailure(failing []*ledger.Report) {
	logText := ""
	if entries, ok := s.bare.reqLog.List(); ok {
		logText = ledger.RenderLog(entries, s.bare.bodyPrintLimit)
	}
	err := &ledger.VerificationError{Failing: failing, RequestLog: logText}

	if s.t == nil {
		panic(err)
	}
	if s.t.Failed() {
		s.t.Logf("%s", err.Error())
		return
	}
	s.t.Fatalf("%s", err.Error())
}

// ReceivedRequests returns the requests seen so far in arrival order,
// or (nil, false) if request recording was disabled via
// WithRequestRecording(false) — a sentinel distinguishing "disabled"
// from "none received yet".
func (s *Server) ReceivedRequests() ([]*Request, bool) {
	entries, ok := s.bare.reqLog.List()
	if !ok {
		return nil, false
	}
	out := make([]*Request, len(entries))
	for i, e := range entries {
		out[i] = e.Request
	}
	return out, true
}

// Reset clears every mounted mock (global and scoped), the ledger, and
// the request log, without rebinding the socket.
func (s *Server) Reset() {
	s.bare.resetState()
}

// Close verifies global expectations, then returns the instance to the
// pool (or shuts it down, if it was started with a user-supplied
// listener via WithListener). Safe to call more than once.
func (s *Server) Close() {
	s.closeOnce.Do(func() {
		s.Verify()
		if s.bare.userListener {
			s.bare.shutdown()
			return
		}
		defaultPool.checkin(s.bare)
	})
}

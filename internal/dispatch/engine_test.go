package dispatch

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stubwire/stubwire/internal/core"
)

func mustURL(t *testing.T, raw string) *url.URL {
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func alwaysMatch() core.Matcher {
	return core.MatcherFunc(func(r *core.Request) bool { return true })
}

func pathMatch(path string) core.Matcher {
	return core.MatcherFunc(func(r *core.Request) bool { return r.URL.Path == path })
}

func newMock(name string, priority int, seq int64, matchers ...core.Matcher) *core.Mock {
	return &core.Mock{
		Name:      name,
		Matchers:  matchers,
		Responder: core.Fixed(core.Response(200).WithBodyString(name)),
		Priority:  priority,
		Seq:       seq,
	}
}

func TestDispatch_NoMatch_Synthesizes404(t *testing.T) {
	req := &core.Request{Method: "GET", URL: mustURL(t, "http://127.0.0.1/missing")}
	result := Dispatch(nil, req)
	assert.False(t, result.Matched)
	assert.Equal(t, 404, result.Response.StatusCode)
	assert.Empty(t, result.Response.Body)
}

func TestDispatch_LowerPriorityNumberWins(t *testing.T) {
	req := &core.Request{Method: "GET", URL: mustURL(t, "http://127.0.0.1/x")}
	strong := newMock("strong", 1, 1, alwaysMatch())
	weak := newMock("weak", 5, 2, alwaysMatch())

	result := Dispatch([]*core.Mock{weak, strong}, req)
	require.True(t, result.Matched)
	assert.Equal(t, "strong", result.Mock.Name)
}

func TestDispatch_TiesBreakLIFO(t *testing.T) {
	req := &core.Request{Method: "GET", URL: mustURL(t, "http://127.0.0.1/x")}
	first := newMock("first", 5, 1, alwaysMatch())
	second := newMock("second", 5, 2, alwaysMatch())

	result := Dispatch([]*core.Mock{first, second}, req)
	require.True(t, result.Matched)
	assert.Equal(t, "second", result.Mock.Name, "most recently mounted wins a priority tie")
}

func TestDispatch_IneligibleBudgetIsSkipped(t *testing.T) {
	req := &core.Request{Method: "GET", URL: mustURL(t, "http://127.0.0.1/x")}
	exhausted := newMock("exhausted", 1, 1, alwaysMatch())
	exhausted.Budget = core.NewBudget(0)
	fallback := newMock("fallback", 5, 2, alwaysMatch())

	result := Dispatch([]*core.Mock{exhausted, fallback}, req)
	require.True(t, result.Matched)
	assert.Equal(t, "fallback", result.Mock.Name)
}

func TestDispatch_MatchersMustAllMatch(t *testing.T) {
	req := &core.Request{Method: "GET", URL: mustURL(t, "http://127.0.0.1/a")}
	m := newMock("m", 5, 1, pathMatch("/a"), pathMatch("/b"))

	result := Dispatch([]*core.Mock{m}, req)
	assert.False(t, result.Matched)
}

func TestDispatch_RecordsHitOnWinner(t *testing.T) {
	req := &core.Request{Method: "GET", URL: mustURL(t, "http://127.0.0.1/x")}
	m := newMock("m", 5, 1, alwaysMatch())

	Dispatch([]*core.Mock{m}, req)
	assert.Equal(t, uint64(1), m.HitCount())
}

func TestDispatch_Deterministic(t *testing.T) {
	req := &core.Request{Method: "GET", URL: mustURL(t, "http://127.0.0.1/x")}
	a := newMock("a", 3, 1, alwaysMatch())
	b := newMock("b", 3, 2, alwaysMatch())
	c := newMock("c", 1, 3, alwaysMatch())
	snapshot := []*core.Mock{a, b, c}

	for i := 0; i < 10; i++ {
		result := Dispatch(snapshot, req)
		require.True(t, result.Matched)
		assert.Equal(t, "c", result.Mock.Name)
	}
}

package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stubwire/stubwire/internal/core"
)

func TestMockSet_Register_AssignsIncreasingSeq(t *testing.T) {
	s := NewMockSet()
	a := &core.Mock{Name: "a"}
	b := &core.Mock{Name: "b"}
	s.Register(a)
	s.Register(b)
	assert.Less(t, a.Seq, b.Seq)
}

func TestMockSet_Snapshot_IsACopy(t *testing.T) {
	s := NewMockSet()
	s.Register(&core.Mock{Name: "a"})

	snap := s.Snapshot()
	require.Len(t, snap, 1)

	s.Register(&core.Mock{Name: "b"})
	assert.Len(t, snap, 1, "earlier snapshot must not observe a later mutation")
	assert.Equal(t, 2, s.Len())
}

func TestMockSet_Unregister_RemovesOnlyMatchingScope(t *testing.T) {
	s := NewMockSet()
	s.Register(&core.Mock{Name: "global", ScopeTag: core.ScopeGlobal})
	scoped := &core.Mock{Name: "scoped", ScopeTag: "tag-1"}
	s.Register(scoped)

	removed := s.Unregister("tag-1")
	require.Len(t, removed, 1)
	assert.Equal(t, "scoped", removed[0].Name)
	assert.Equal(t, 1, s.Len())
}

func TestMockSet_Global_FiltersOutScoped(t *testing.T) {
	s := NewMockSet()
	s.Register(&core.Mock{Name: "global", ScopeTag: core.ScopeGlobal})
	s.Register(&core.Mock{Name: "scoped", ScopeTag: "tag-1"})

	global := s.Global()
	require.Len(t, global, 1)
	assert.Equal(t, "global", global[0].Name)
}

func TestMockSet_Reset_ClearsEverything(t *testing.T) {
	s := NewMockSet()
	s.Register(&core.Mock{Name: "a"})
	s.Reset()
	assert.Equal(t, 0, s.Len())
}

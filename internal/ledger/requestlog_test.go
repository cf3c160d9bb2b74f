package ledger

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stubwire/stubwire/internal/core"
)

func TestRequestLog_Disabled_ListReturnsSentinel(t *testing.T) {
	l := NewRequestLog(false)
	entries, ok := l.List()
	assert.False(t, ok)
	assert.Nil(t, entries)
}

func TestRequestLog_Enabled_EmptyIsNotTheSentinel(t *testing.T) {
	l := NewRequestLog(true)
	entries, ok := l.List()
	assert.True(t, ok)
	assert.Empty(t, entries)
}

func TestRequestLog_Append_RecordsInArrivalOrder(t *testing.T) {
	l := NewRequestLog(true)
	u, err := url.Parse("http://127.0.0.1/a")
	require.NoError(t, err)

	l.Append(&core.Request{Method: "GET", URL: u}, true, "m1")
	l.Append(&core.Request{Method: "POST", URL: u}, false, "")

	entries, ok := l.List()
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, "GET", entries[0].Request.Method)
	assert.True(t, entries[0].Matched)
	assert.Equal(t, "POST", entries[1].Request.Method)
	assert.False(t, entries[1].Matched)
	assert.NotEmpty(t, entries[0].ID)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestRequestLog_Append_NoOpWhenDisabled(t *testing.T) {
	l := NewRequestLog(false)
	u, _ := url.Parse("http://127.0.0.1/a")
	got := l.Append(&core.Request{Method: "GET", URL: u}, true, "m1")
	assert.Nil(t, got)
}

func TestRequestLog_Clear(t *testing.T) {
	l := NewRequestLog(true)
	u, _ := url.Parse("http://127.0.0.1/a")
	l.Append(&core.Request{Method: "GET", URL: u}, true, "m1")
	l.Clear()
	entries, ok := l.List()
	assert.True(t, ok)
	assert.Empty(t, entries)
}

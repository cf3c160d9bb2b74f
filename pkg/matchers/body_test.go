package matchers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodyBytesAndString(t *testing.T) {
	m := BodyString("hello")
	assert.True(t, m.Matches(req(t, "POST", "http://x/y", nil, []byte("hello"))))
	assert.False(t, m.Matches(req(t, "POST", "http://x/y", nil, []byte("world"))))
}

func TestBodyContains(t *testing.T) {
	m := BodyContains("err")
	assert.True(t, m.Matches(req(t, "POST", "http://x/y", nil, []byte("boom: err happened"))))
	assert.False(t, m.Matches(req(t, "POST", "http://x/y", nil, []byte("all good"))))
}

func TestBodyJSONEquals_IgnoresKeyOrderAndWhitespace(t *testing.T) {
	m := BodyJSONEquals(`{"a":1,"b":2}`)
	assert.True(t, m.Matches(req(t, "POST", "http://x/y", nil, []byte(`{ "b": 2, "a": 1 }`))))
	assert.False(t, m.Matches(req(t, "POST", "http://x/y", nil, []byte(`{"a":1,"b":3}`))))
}

func TestBodyJSONSubset_OnlyRequiresNamedFields(t *testing.T) {
	m := BodyJSONSubset(`{"name":"ana"}`)
	body := []byte(`{"name":"ana","age":30,"nested":{"x":1}}`)
	assert.True(t, m.Matches(req(t, "POST", "http://x/y", nil, body)))

	assert.False(t, m.Matches(req(t, "POST", "http://x/y", nil, []byte(`{"name":"ben"}`))))
}

func TestBodyJSONSubset_NestedObject(t *testing.T) {
	m := BodyJSONSubset(`{"nested":{"x":1}}`)
	body := []byte(`{"nested":{"x":1,"y":2}}`)
	assert.True(t, m.Matches(req(t, "POST", "http://x/y", nil, body)))
}

func TestBodyJSONSchema_ValidAndInvalidSchema(t *testing.T) {
	schema := `{
		"type": "object",
		"required": ["name"],
		"properties": {"name": {"type": "string"}}
	}`
	m, err := BodyJSONSchema(schema)
	require.NoError(t, err)

	assert.True(t, m.Matches(req(t, "POST", "http://x/y", nil, []byte(`{"name":"ana"}`))))
	assert.False(t, m.Matches(req(t, "POST", "http://x/y", nil, []byte(`{}`))))

	_, err = BodyJSONSchema(`{"type": "not-a-real-type"`)
	assert.Error(t, err)
}

func TestJSONPath_MatchesValue(t *testing.T) {
	m, err := JSONPath("$.user.name", "ana")
	require.NoError(t, err)
	assert.True(t, m.Matches(req(t, "POST", "http://x/y", nil, []byte(`{"user":{"name":"ana"}}`))))
	assert.False(t, m.Matches(req(t, "POST", "http://x/y", nil, []byte(`{"user":{"name":"ben"}}`))))
}

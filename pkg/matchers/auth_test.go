package matchers

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicAuth(t *testing.T) {
	m := BasicAuth("alice", "secret")

	hreq, err := http.NewRequest("GET", "http://x/y", nil)
	require.NoError(t, err)
	hreq.SetBasicAuth("alice", "secret")
	h := hreq.Header

	assert.True(t, m.Matches(req(t, "GET", "http://x/y", h, nil)))
	assert.False(t, m.Matches(req(t, "GET", "http://x/y", make(http.Header), nil)))
}

func TestBearerAuth(t *testing.T) {
	m := BearerAuth("tok123")
	h := make(http.Header)
	h.Set("Authorization", "Bearer tok123")
	assert.True(t, m.Matches(req(t, "GET", "http://x/y", h, nil)))

	wrong := make(http.Header)
	wrong.Set("Authorization", "Bearer other")
	assert.False(t, m.Matches(req(t, "GET", "http://x/y", wrong, nil)))
}

func TestBearerAuthClaims(t *testing.T) {
	secret := []byte("test-secret")
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)

	keyFunc := func(*jwt.Token) (interface{}, error) { return secret, nil }
	m := BearerAuthClaims(keyFunc, func(c jwt.MapClaims) bool {
		return c["sub"] == "user-1"
	})

	h := make(http.Header)
	h.Set("Authorization", "Bearer "+signed)
	assert.True(t, m.Matches(req(t, "GET", "http://x/y", h, nil)))

	h2 := make(http.Header)
	h2.Set("Authorization", "Bearer not-a-jwt")
	assert.False(t, m.Matches(req(t, "GET", "http://x/y", h2, nil)))
}

// Package id provides unique identifier generation utilities used
// across stubwire: short random tokens for scoped-mount tags and a
// monotonic counter for mock identities, assigned at mount time.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"sync/atomic"
)

// Short generates a short random hex ID (16 characters). Suitable for
// user-facing IDs where brevity matters — here, the scoped-id tag a
// MockSet entry carries while it's mounted via a scoped guard.
func Short() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// Alphanumeric generates a random alphanumeric string of the specified
// length. Uses uppercase, lowercase letters and digits.
func Alphanumeric(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	randBytes := make([]byte, length)
	_, _ = rand.Read(randBytes)
	for i := range b {
		b[i] = charset[int(randBytes[i])%len(charset)]
	}
	return string(b)
}

// Counter hands out a monotonically increasing sequence of int64
// identities, starting at 1. A Mock gets its ID from the server's
// Counter at mount time, never reused even after the mock is unmounted.
type Counter struct {
	next atomic.Int64
}

// Next returns the next identity in the sequence.
func (c *Counter) Next() int64 {
	return c.next.Add(1)
}

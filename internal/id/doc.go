// Package id is the canonical source of identifier generation for
// stubwire: short random tokens (Short, used for scoped-mount tags, and
// Alphanumeric) and a monotonic Counter for mock identities.
//
// All random generation uses crypto/rand for secure randomness.
package id

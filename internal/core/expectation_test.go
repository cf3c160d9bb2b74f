package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimes_Contains(t *testing.T) {
	cases := []struct {
		name  string
		times Times
		n     uint64
		want  bool
	}{
		{"exactly hit", Exactly(2), 2, true},
		{"exactly miss below", Exactly(2), 1, false},
		{"exactly miss above", Exactly(2), 3, false},
		{"at least satisfied", AtLeast(2), 5, true},
		{"at least unsatisfied", AtLeast(2), 1, false},
		{"at most satisfied", AtMost(2), 0, true},
		{"at most unsatisfied", AtMost(2), 3, false},
		{"between in range", Between(2, 4), 3, true},
		{"between out of range", Between(2, 4), 5, false},
		{"unbounded always satisfied", Unbounded(), 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.times.Contains(tc.n))
		})
	}
}

func TestTimes_String(t *testing.T) {
	assert.Equal(t, "[1, 1]", Exactly(1).String())
	assert.Equal(t, "[2, unbounded)", AtLeast(2).String())
}

func TestAtLeast_MaxIsUnbounded(t *testing.T) {
	assert.Equal(t, uint64(math.MaxUint64), AtLeast(1).Max)
}

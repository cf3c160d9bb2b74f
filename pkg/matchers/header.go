package matchers

import (
	"sort"

	"github.com/stubwire/stubwire"
)

// HeaderExists matches any request that carries the given header name,
// regardless of its value.
func HeaderExists(name string) stubwire.Matcher {
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		return len(r.Header.Values(name)) > 0
	})
}

// HeaderEquals matches a request whose values for name are exactly the
// given set, order-insensitive: a request with "X: a" and "X: b" matches
// a matcher configured with both values but not one configured with
// only "a".
func HeaderEquals(name string, values ...string) stubwire.Matcher {
	want := sortedCopy(values)
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		got := r.Header.Values(name)
		if len(got) == 0 {
			return false
		}
		return equalSets(sortedCopy(got), want)
	})
}

func sortedCopy(ss []string) []string {
	cp := make([]string, len(ss))
	copy(cp, ss)
	sort.Strings(cp)
	return cp
}

func equalSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

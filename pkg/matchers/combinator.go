package matchers

import "github.com/stubwire/stubwire"

// AnyOf matches if at least one of the given matchers matches. A single
// mock's boolean-AND matcher list can't express "path is /a or /b" on
// its own, since mocks otherwise compose matchers by conjunction only.
func AnyOf(ms ...stubwire.Matcher) stubwire.Matcher {
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		for _, m := range ms {
			if m.Matches(r) {
				return true
			}
		}
		return false
	})
}

// Not inverts a matcher.
func Not(m stubwire.Matcher) stubwire.Matcher {
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		return !m.Matches(r)
	})
}

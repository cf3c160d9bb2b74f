package matchers

import "github.com/stubwire/stubwire"

// QueryParam matches a request whose URL carries key=value among its
// query parameters. If more than one value is present for key, matching
// succeeds if any of them equals value.
func QueryParam(key, value string) stubwire.Matcher {
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		for _, v := range r.URL.Query()[key] {
			if v == value {
				return true
			}
		}
		return false
	})
}

package matchers

import (
	"strings"

	"github.com/stubwire/stubwire"
)

// Method matches the request method, case-insensitively.
func Method(method string) stubwire.Matcher {
	want := strings.ToUpper(method)
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		return strings.ToUpper(r.Method) == want
	})
}

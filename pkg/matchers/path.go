package matchers

import (
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stubwire/stubwire"
	"github.com/stubwire/stubwire/pkg/validation"
)

// Path matches the request path exactly, ignoring query parameters.
// A leading "/" is added if the caller omitted it.
func Path(path string) stubwire.Matcher {
	want := normalizePath(path)
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		return r.URL.Path == want
	})
}

func normalizePath(p string) string {
	if strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

// PathRegex matches the request path against a regular expression.
// Compilation failure is surfaced as a *validation.ConfigError, not a
// panic, so a bad pattern is caught when the matcher is built rather
// than on the first request that happens to hit it.
func PathRegex(pattern string) (stubwire.Matcher, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, validation.NewRegexError(pattern, err)
	}
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		return re.MatchString(r.URL.Path)
	}), nil
}

// PathGlob matches the request path against a shell-glob pattern (e.g.
// "/users/**/posts"), supplementing the required path/path-regex pair
// with shell-glob convenience syntax.
func PathGlob(pattern string) (stubwire.Matcher, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, validation.NewRegexError(pattern, errInvalidGlob)
	}
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		ok, _ := doublestar.Match(pattern, r.URL.Path)
		return ok
	}), nil
}

var errInvalidGlob = globError("invalid glob pattern")

type globError string

func (e globError) Error() string { return string(e) }

package matchers

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stubwire/stubwire"
)

// BasicAuth matches a request carrying HTTP Basic credentials equal to
// user/pass.
func BasicAuth(user, pass string) stubwire.Matcher {
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		gotUser, gotPass, ok := (&http.Request{Header: r.Header}).BasicAuth()
		return ok && gotUser == user && gotPass == pass
	})
}

// BearerAuth matches a request carrying an "Authorization: Bearer
// <token>" header equal to token.
func BearerAuth(token string) stubwire.Matcher {
	want := "Bearer " + token
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		return r.Header.Get("Authorization") == want
	})
}

// BearerAuthClaims matches a request carrying a bearer token that
// parses as a JWT and whose claims satisfy check. The token must also
// pass jwt.ParseWithClaims' checks: its signature is verified with the
// key keyFunc returns, and registered time claims such as exp must be
// valid.
func BearerAuthClaims(keyFunc jwt.Keyfunc, check func(jwt.MapClaims) bool) stubwire.Matcher {
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		raw := bearerToken(r.Header.Get("Authorization"))
		if raw == "" {
			return false
		}
		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(raw, claims, keyFunc); err != nil {
			return false
		}
		return check(claims)
	})
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
		return ""
	}
	return header[len(prefix):]
}

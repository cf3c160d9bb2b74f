// Package matchers provides stubwire's built-in matcher catalog: method,
// exact-path, path-regex, header-exists, header-equals, query-param,
// body-bytes, body-string, body-JSON equality, body-JSON subset,
// body-JSON-schema validation, basic-auth, bearer-auth, and an any-of
// disjunction combinator — plus a path-glob convenience matcher.
//
// Every constructor returns a stubwire.Matcher; a handful that can fail
// to build (PathRegex, PathGlob, JSONPath, BodyJSONSchema) return (stubwire.Matcher, error)
// instead, surfacing construction-time failures synchronously rather
// than panicking at match time.
package matchers

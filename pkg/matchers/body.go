package matchers

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/stubwire/stubwire"
	"github.com/stubwire/stubwire/pkg/validation"
)

// BodyBytes matches the request body byte-for-byte.
func BodyBytes(want []byte) stubwire.Matcher {
	cp := append([]byte(nil), want...)
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		return bytes.Equal(r.Body, cp)
	})
}

// BodyString matches the request body as a UTF-8 string.
func BodyString(want string) stubwire.Matcher {
	return BodyBytes([]byte(want))
}

// BodyContains matches if the request body, read as UTF-8, contains
// part as a substring.
func BodyContains(part string) stubwire.Matcher {
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		return strings.Contains(string(r.Body), part)
	})
}

// BodyJSONEquals matches if the request body, parsed as JSON, is
// structurally equal to want (a value to be marshaled, or a raw JSON
// string). Key order and whitespace are irrelevant.
func BodyJSONEquals(want any) stubwire.Matcher {
	wantCanon, err := canonicalJSON(want)
	if err != nil {
		return stubwire.MatcherFunc(func(*stubwire.Request) bool { return false })
	}
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		gotCanon, err := canonicalJSON(r.Body)
		if err != nil {
			return false
		}
		return gotCanon == wantCanon
	})
}

// BodyJSONSubset matches if every key/value pair in want (parsed as
// JSON) is present with an equal value at the same position in the
// request body's JSON document (parsed with ojg); nested objects are
// compared the same way, arrays and scalars must be equal.
func BodyJSONSubset(want any) stubwire.Matcher {
	wantParsed, err := toAny(want)
	if err != nil {
		return stubwire.MatcherFunc(func(*stubwire.Request) bool { return false })
	}
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		gotParsed, err := oj.Parse(r.Body)
		if err != nil {
			return false
		}
		return jsonContains(gotParsed, wantParsed)
	})
}

// JSONPath matches if the JSONPath expression path, evaluated against
// the request body, yields at least one result equal to value.
func JSONPath(path string, value any) (stubwire.Matcher, error) {
	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, validation.NewRegexError(path, err)
	}
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		doc, err := oj.Parse(r.Body)
		if err != nil {
			return false
		}
		for _, got := range expr.Get(doc) {
			if jsonEqual(got, value) {
				return true
			}
		}
		return false
	}), nil
}

// BodyJSONSchema matches if the request body validates against the
// given JSON Schema document. The schema is compiled once, at
// construction time; a malformed schema surfaces as a
// *validation.ConfigError rather than a runtime panic.
func BodyJSONSchema(schemaJSON string) (stubwire.Matcher, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schemaJSON)); err != nil {
		return nil, validation.NewSchemaError(err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return nil, validation.NewSchemaError(err)
	}
	return stubwire.MatcherFunc(func(r *stubwire.Request) bool {
		var v any
		if err := json.Unmarshal(r.Body, &v); err != nil {
			return false
		}
		return schema.Validate(v) == nil
	}), nil
}

func canonicalJSON(v any) (string, error) {
	parsed, err := toAny(v)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(parsed)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// toAny normalizes v — which may already be a Go value, a JSON string,
// or raw JSON bytes — into a plain any via round-tripping through
// encoding/json, so callers can pass whichever shape is convenient.
func toAny(v any) (any, error) {
	switch x := v.(type) {
	case []byte:
		var out any
		if err := json.Unmarshal(x, &out); err != nil {
			return nil, err
		}
		return out, nil
	case string:
		var out any
		if err := json.Unmarshal([]byte(x), &out); err != nil {
			return nil, err
		}
		return out, nil
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return nil, err
		}
		var out any
		if err := json.Unmarshal(b, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
}

func jsonEqual(a, b any) bool {
	ab, err1 := json.Marshal(a)
	bb, err2 := json.Marshal(b)
	if err1 != nil || err2 != nil {
		return false
	}
	return string(ab) == string(bb)
}

// jsonContains reports whether every field in want is present with an
// equal value in got, recursing into nested objects. Arrays and scalars
// in want must match got exactly.
func jsonContains(got, want any) bool {
	switch w := want.(type) {
	case map[string]any:
		g, ok := got.(map[string]any)
		if !ok {
			return false
		}
		for k, wv := range w {
			gv, present := g[k]
			if !present || !jsonContains(gv, wv) {
				return false
			}
		}
		return true
	default:
		return jsonEqual(got, want)
	}
}

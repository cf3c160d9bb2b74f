// Package validation carries the configuration-error taxonomy: errors
// raised synchronously from the mock builder, as opposed to expectation
// violations, which surface later at verification time.
package validation

import "fmt"

// Error codes for ConfigError, machine-readable.
const (
	ErrCodeEmptyMatchers = "empty_matchers"
	ErrCodeNoResponder   = "no_responder"
	ErrCodePriority      = "invalid_priority"
	ErrCodeRegex         = "invalid_regex"
	ErrCodeSchema        = "invalid_schema"
)

// ConfigError reports a mistake in how a mock was built — an empty
// matcher list, an out-of-range priority, or a matcher that failed to
// compile (a bad regex or JSON Schema). It surfaces synchronously, never
// later at match time: matcher constructors return it, and
// MockBuilder.Mount/MountAsScoped panic with it.
type ConfigError struct {
	Code    string
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewEmptyMatchersError reports that Mount was called with no matchers.
func NewEmptyMatchersError() *ConfigError {
	return &ConfigError{
		Code:    ErrCodeEmptyMatchers,
		Message: "a mock must have at least one matcher; call Given before Mount",
	}
}

// NewNoResponderError reports that Mount was called without RespondWith.
func NewNoResponderError() *ConfigError {
	return &ConfigError{
		Code:    ErrCodeNoResponder,
		Message: "a mock must have a responder; call RespondWith before Mount",
	}
}

// NewPriorityError reports a priority outside [1, 255].
func NewPriorityError(p int) *ConfigError {
	return &ConfigError{
		Code:    ErrCodePriority,
		Field:   "priority",
		Message: fmt.Sprintf("priority %d is outside the valid range [1, 255]", p),
	}
}

// NewRegexError wraps a pattern compile failure from a matcher
// constructor: a regexp.Compile failure, and also an invalid glob
// (PathGlob) or JSONPath expression (JSONPath).
func NewRegexError(pattern string, cause error) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeRegex,
		Field:   "pattern",
		Message: fmt.Sprintf("invalid regular expression %q: %s", pattern, cause),
	}
}

// NewSchemaError wraps a JSON Schema compile failure.
func NewSchemaError(cause error) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeSchema,
		Field:   "schema",
		Message: fmt.Sprintf("invalid JSON schema: %s", cause),
	}
}

package stubwire

import "github.com/stubwire/stubwire/internal/core"

// Request, ResponseSpec, Matcher, Responder, Times, and Mock are
// re-exported from internal/core so that pkg/matchers and test code can
// name them without importing an internal package. internal/core exists
// only to break the stubwire <-> internal/dispatch import cycle.
type (
	Request       = core.Request
	ResponseSpec  = core.ResponseSpec
	Matcher       = core.Matcher
	MatcherFunc   = core.MatcherFunc
	Responder     = core.Responder
	ResponderFunc = core.ResponderFunc
	Times         = core.Times
	Mock          = core.Mock
)

// Fixed, Response, Exactly, AtLeast, AtMost, Between, and Unbounded are
// re-exported constructors; see internal/core for their documentation.
var (
	Fixed     = core.Fixed
	Response  = core.Response
	Exactly   = core.Exactly
	AtLeast   = core.AtLeast
	AtMost    = core.AtMost
	Between   = core.Between
	Unbounded = core.Unbounded
)

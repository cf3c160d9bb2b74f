// Package stubwire lets a test stand up an in-process HTTP mock server,
// declare which incoming requests should be matched and which canned
// responses returned, assert how many times each mock was hit, and
// inspect the request log for diagnostics.
//
// # Usage
//
//	server := stubwire.Start(t)
//	defer server.Close()
//
//	stubwire.Given(matchers.Method("GET")).
//	    And(matchers.Path("/hello")).
//	    RespondWith(stubwire.Fixed(stubwire.Response(200).WithBodyString("world"))).
//	    Mount(server)
//
//	resp, err := http.Get(server.URI() + "/hello")
//
// A mock can also be mounted for the lifetime of a scope:
//
//	_, guard := stubwire.Given(matchers.Path("/scoped")).
//	    RespondWith(stubwire.Fixed(stubwire.Response(200))).
//	    Expect(stubwire.Exactly(1)).
//	    MountAsScoped(server)
//	defer guard.Release()
//
// See README-equivalent documentation on the exported types for the full
// surface: Mock, MockBuilder, Matcher, Responder, ScopedGuard, Server.
package stubwire

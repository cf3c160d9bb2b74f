package stubwire

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlDoc is the top-level shape LoadMockSetYAML expects.
//
//	mocks:
//	  - name: health check
//	    method: GET
//	    path: /healthz
//	    response:
//	      status: 200
//	      body: "ok"
type yamlDoc struct {
	Mocks []yamlMock `yaml:"mocks"`
}

type yamlMock struct {
	Name       string            `yaml:"name"`
	Method     string            `yaml:"method"`
	Path       string            `yaml:"path"`
	Headers    map[string]string `yaml:"headers"`
	Query      map[string]string `yaml:"query"`
	Priority   int               `yaml:"priority"`
	UpToNTimes *int              `yaml:"up_to_n_times"`
	Expect     *yamlExpect       `yaml:"expect"`
	Response   yamlResponse      `yaml:"response"`
}

type yamlExpect struct {
	Min uint64  `yaml:"min"`
	Max *uint64 `yaml:"max"`
}

type yamlResponse struct {
	Status  int               `yaml:"status"`
	Headers map[string]string `yaml:"headers"`
	Body    string            `yaml:"body"`
	DelayMS int               `yaml:"delay_ms"`
}

// LoadMockSetYAML parses a batch of static mock declarations from r and
// returns one unmounted MockBuilder per entry, in document order, so a
// caller can Mount or MountAsScoped each on a Server. It is a
// convenience for describing fixed mocks declaratively; it does not
// cover the full matcher catalog (pkg/matchers) since the root package
// cannot import pkg/matchers without an import cycle — it supports
// method, exact path, header-equals, and query-param matching only.
func LoadMockSetYAML(r io.Reader) ([]*MockBuilder, error) {
	var doc yamlDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("stubwire: decoding mock set: %w", err)
	}

	builders := make([]*MockBuilder, 0, len(doc.Mocks))
	for i, ym := range doc.Mocks {
		b, err := ym.build()
		if err != nil {
			return nil, fmt.Errorf("stubwire: mock %d (%q): %w", i, ym.Name, err)
		}
		builders = append(builders, b)
	}
	return builders, nil
}

func (ym yamlMock) build() (*MockBuilder, error) {
	var b *MockBuilder
	add := func(m Matcher) {
		if b == nil {
			b = Given(m)
		} else {
			b = b.And(m)
		}
	}

	if ym.Method != "" {
		want := strings.ToUpper(ym.Method)
		add(MatcherFunc(func(r *Request) bool { return strings.ToUpper(r.Method) == want }))
	}
	if ym.Path != "" {
		want := ym.Path
		if !strings.HasPrefix(want, "/") {
			want = "/" + want
		}
		add(MatcherFunc(func(r *Request) bool { return r.URL.Path == want }))
	}
	for k, v := range ym.Headers {
		k, v := k, v
		add(MatcherFunc(func(r *Request) bool { return r.Header.Get(k) == v }))
	}
	for k, v := range ym.Query {
		k, v := k, v
		add(MatcherFunc(func(r *Request) bool { return r.URL.Query().Get(k) == v }))
	}
	if b == nil {
		return nil, fmt.Errorf("no matcher fields set (method/path/headers/query)")
	}

	resp := Response(ym.Response.Status)
	if resp.StatusCode == 0 {
		resp.StatusCode = http.StatusOK
	}
	for k, v := range ym.Response.Headers {
		resp = resp.WithHeader(k, v)
	}
	if ym.Response.Body != "" {
		resp = resp.WithBodyString(ym.Response.Body)
	}
	if ym.Response.DelayMS > 0 {
		resp = resp.WithDelay(time.Duration(ym.Response.DelayMS) * time.Millisecond)
	}
	b = b.RespondWith(Fixed(resp))

	if ym.Name != "" {
		b = b.Named(ym.Name)
	}
	if ym.Priority != 0 {
		b = b.WithPriority(ym.Priority)
	}
	if ym.UpToNTimes != nil {
		b = b.UpToNTimes(*ym.UpToNTimes)
	}
	if ym.Expect != nil {
		max := ^uint64(0)
		if ym.Expect.Max != nil {
			max = *ym.Expect.Max
		}
		b = b.Expect(Between(ym.Expect.Min, max))
	}
	return b, nil
}

package ledger

import (
	"fmt"
	"strings"

	"github.com/stubwire/stubwire/internal/core"
)

// MaxLogBodySize is the default maximum body size for a request-log body
// preview (10KB).
const MaxLogBodySize = 10 * 1024

// TruncateBody truncates data to maxSize bytes, appending "...(truncated)"
// if it was cut short. If maxSize <= 0, uses MaxLogBodySize.
func TruncateBody(data string, maxSize int) string {
	if maxSize <= 0 {
		maxSize = MaxLogBodySize
	}
	if len(data) > maxSize {
		return data[:maxSize] + "...(truncated)"
	}
	return data
}

// Report describes one mock's verification outcome.
type Report struct {
	MockName    string
	MockID      int64
	Expected    core.Times
	Observed    uint64
	Satisfied   bool
}

// ErrorMessage renders the report as "<name>: expected range of matching
// incoming requests <range>, observed <n>", with "mock#<id>" standing in
// for an empty name.
func (r Report) ErrorMessage() string {
	name := r.MockName
	if name == "" {
		name = fmt.Sprintf("mock#%d", r.MockID)
	}
	return fmt.Sprintf("%s: expected range of matching incoming requests %s, observed %d",
		name, r.Expected.String(), r.Observed)
}

// VerifyOne checks a single mock's expectation in isolation, used for
// scoped-guard release.
func VerifyOne(m *core.Mock) *Report {
	if m.Expectation == nil {
		return nil
	}
	observed := m.HitCount()
	return &Report{
		MockName:  m.Name,
		MockID:    m.ID,
		Expected:  *m.Expectation,
		Observed:  observed,
		Satisfied: m.Expectation.Contains(observed),
	}
}

// VerifyAll checks every global mock with an expectation, returning one
// Report per mock that has one configured (satisfied or not), used for
// server-close / explicit-verify. Callers should filter for !Satisfied
// when deciding whether to fail.
func VerifyAll(mocks []*core.Mock) []*Report {
	var reports []*Report
	for _, m := range mocks {
		if r := VerifyOne(m); r != nil {
			reports = append(reports, r)
		}
	}
	return reports
}

// Failing filters reports down to the unsatisfied ones.
func Failing(reports []*Report) []*Report {
	var out []*Report
	for _, r := range reports {
		if !r.Satisfied {
			out = append(out, r)
		}
	}
	return out
}

// VerificationError aggregates one or more failing Reports into a
// single error. RequestLog is a pre-rendered compact log rendering,
// empty when the log is disabled.
type VerificationError struct {
	Failing    []*Report
	RequestLog string
}

func (e *VerificationError) Error() string {
	var b strings.Builder
	b.WriteString("expectation verification failed:\n")
	for _, r := range e.Failing {
		b.WriteString("  - ")
		b.WriteString(r.ErrorMessage())
		b.WriteByte('\n')
	}
	if e.RequestLog != "" {
		b.WriteString(e.RequestLog)
	}
	return b.String()
}

// RenderLog formats a compact, human-readable rendering of a request log
// for inclusion in a verification failure message: method, path,
// matched-or-not, and a size-limited body preview, to help the caller
// see why requests did not match.
func RenderLog(entries []*Entry, bodyPrintLimit int) string {
	if len(entries) == 0 {
		return "The server did not receive any request."
	}
	var b strings.Builder
	for _, e := range entries {
		status := "unmatched"
		if e.Matched {
			status = "matched " + e.MockName
		}
		fmt.Fprintf(&b, "- %s %s [%s]", e.Request.Method, e.Request.URL.Path, status)
		if len(e.Request.Body) > 0 {
			fmt.Fprintf(&b, " body=%q", TruncateBody(string(e.Request.Body), bodyPrintLimit))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

package stubwire

import (
	"fmt"
	"testing"
)

// fakeTB wraps testing.TB so tests can observe how Server reports
// verification failures (Fatalf vs Logf) without actually aborting the
// outer test — the same embedding trick used throughout the Go
// ecosystem to satisfy testing.TB's unexported method outside package
// testing.
type fakeTB struct {
	testing.TB
	failed    bool
	fatalMsgs []string
	logMsgs   []string
}

func (f *fakeTB) Helper() {}

func (f *fakeTB) Failed() bool { return f.failed }

func (f *fakeTB) Fatalf(format string, args ...any) {
	f.fatalMsgs = append(f.fatalMsgs, fmt.Sprintf(format, args...))
}

func (f *fakeTB) Logf(format string, args ...any) {
	f.logMsgs = append(f.logMsgs, fmt.Sprintf(format, args...))
}

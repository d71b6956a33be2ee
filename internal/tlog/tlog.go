package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	bold = "\033[1m"
	red  = "\033[1;31m"
)

// TestingPrinter wrapper over *testing.T to print data
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
	Errorf(format string, a ...any)
}

// Log logs error with its structured context.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(renderString(err, bold))
}

// Error signals error.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(renderString(err, red))
}

// Check do nothing and return false if error is nil.
// Prints error and return true otherwise.
func Check(t TestingPrinter, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(renderString(err, red))
	return true
}

// ExpectIs checks err matches target, logs it on success.
func ExpectIs(t TestingPrinter, err, target error) bool {
	t.Helper()

	if err == nil {
		t.Errorf("expected error %q, got nil", target)
		return false
	}

	if !errors.Is(err, target) {
		t.Errorf("expected error %q, got:\n%s", target, renderString(err, red))
		return false
	}

	t.Log(renderString(err, bold))
	return true
}

func renderString(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString("\033[0m\n")

	d := errors.GetContextDeliverer(err)
	if d == nil {
		return b.String()
	}

	var c contextCollector
	d.Deliver(&c)

	var width int
	for _, v := range c.vars {
		width = max(width, len(v.name))
	}

	for _, v := range c.vars {
		_, _ = fmt.Fprintf(&b, "    %s%-*s\033[0m: %v\n", bold, width, v.name, v.value)
	}

	return b.String()
}

// Package testutil provides shared helpers for lintrc tests.
package testutil

import (
	"testing"

	"go.uber.org/goleak"
)

func defaultOptions() []goleak.Option {
	return []goleak.Option{
		// database/sql keeps a connection opener goroutine per pool
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	}
}

// VerifyNoLeaks fails the test if goroutines are still running at the end.
func VerifyNoLeaks(t *testing.T, options ...goleak.Option) {
	t.Helper()
	goleak.VerifyNone(t, append(defaultOptions(), options...)...)
}

// VerifyMainNoLeaks is the TestMain variant of VerifyNoLeaks.
func VerifyMainNoLeaks(m *testing.M) {
	goleak.VerifyTestMain(m, defaultOptions()...)
}

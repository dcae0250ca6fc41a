// Package testutils collects the small assertion helpers shared by this
// module's test files, matching this module's own test convention rather
// than an assertion library dependency.
package testutils

import (
	"testing"
)

// AssertNoErr fails the test immediately if err is non-nil.
func AssertNoErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// Assert fails the test if cond is false.
func Assert(t *testing.T, cond bool) {
	t.Helper()
	if !cond {
		t.Fatal("assertion failed")
	}
}

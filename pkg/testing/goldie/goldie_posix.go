//go:build !windows

package goldie

import (
	"testing"
)

// Assert compares actual with fixtures/<name>.golden. Run the tests with
// -update to rewrite the fixture.
func Assert(t *testing.T, name string, actual []byte) {
	t.Helper()

	New(t).Assert(t, name, actual)
}

// AssertString is Assert for string output.
func AssertString(t *testing.T, name string, actual string) {
	t.Helper()

	Assert(t, name, []byte(actual))
}

func Update(t *testing.T, name string, actual []byte) {
	t.Helper()

	_ = New(t).Update(t, name, actual)
}

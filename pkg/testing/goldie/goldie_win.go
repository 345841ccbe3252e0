//go:build windows

package goldie

import (
	"bytes"
	"testing"
)

func Assert(t *testing.T, name string, actual []byte) {
	t.Helper()

	New(t).Assert(t, name, normalizeLineEndings(actual))
}

func AssertString(t *testing.T, name string, actual string) {
	t.Helper()

	Assert(t, name, []byte(actual))
}

func Update(t *testing.T, name string, actual []byte) {
	t.Helper()

	_ = New(t).Update(t, name, normalizeLineEndings(actual))
}

func normalizeLineEndings(content []byte) []byte {
	return bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
}

// Package goldie wraps github.com/sebdah/goldie/v2 with the fixture layout
// used across this module: golden files live in ./fixtures next to the test
// and carry the ".golden" suffix.
package goldie

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

const (
	FixtureDir = "fixtures"
	NameSuffix = ".golden"
)

func New(t *testing.T) *goldie.Goldie {
	t.Helper()

	return goldie.New(t,
		goldie.WithFixtureDir(FixtureDir),
		goldie.WithNameSuffix(NameSuffix),
		goldie.WithDiffEngine(goldie.ClassicDiff),
		goldie.WithTestNameForDir(false),
	)
}

package testutil

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/relq/internal/canonical"
)

// AssertStatementGolden compares a compiled statement against
// testdata/golden/<name>.golden. The file holds the SQL text on the first
// line and the canonical JSON of params on the second.
//
// Run tests with -update to regenerate the golden files.
func AssertStatementGolden(t *testing.T, name, sql string, params []any) {
	t.Helper()

	encoded, err := canonical.Marshal(params)
	if err != nil {
		t.Fatalf("marshal params: %v", err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(sql+"\n"+string(encoded)+"\n"))
}

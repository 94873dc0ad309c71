package testutil

import (
	"testing"

	"github.com/roach88/relq/internal/model"
)

// Sports is a small schema with relations two levels deep:
//
//	League { id int, name string }
//	Team   { id int, name string, league -> League }
//	Result { id int, score int, published bool }
//	Match  { id int, team -> Team, result -> Result }
type Sports struct {
	Registry *model.Registry
	League   *model.RecordType
	Team     *model.RecordType
	Result   *model.RecordType
	Match    *model.RecordType
}

// NewSports declares the sports schema in a fresh registry.
//
// Each call returns an independent registry, so tests may run in parallel.
func NewSports(t testing.TB) *Sports {
	t.Helper()

	reg := model.NewRegistry()
	s := &Sports{Registry: reg}

	s.League = mustDeclare(t, reg, "League",
		model.Field("id", model.KindInt),
		model.Field("name", model.KindString),
	)
	s.Team = mustDeclare(t, reg, "Team",
		model.Field("id", model.KindInt),
		model.Field("name", model.KindString),
		model.Relation("league", s.League),
	)
	s.Result = mustDeclare(t, reg, "Result",
		model.Field("id", model.KindInt),
		model.Field("score", model.KindInt),
		model.Field("published", model.KindBool),
	)
	s.Match = mustDeclare(t, reg, "Match",
		model.Field("id", model.KindInt),
		model.Relation("team", s.Team),
		model.Relation("result", s.Result),
	)

	if err := reg.Check(); err != nil {
		t.Fatalf("sports schema: %v", err)
	}
	return s
}

func mustDeclare(t testing.TB, reg *model.Registry, name string, decls ...model.Decl) *model.RecordType {
	t.Helper()
	rt, err := reg.Declare(name, decls...)
	if err != nil {
		t.Fatalf("declare %s: %v", name, err)
	}
	return rt
}

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relq/internal/model"
	"github.com/roach88/relq/internal/queryir"
	"github.com/roach88/relq/internal/testutil"
)

func TestNewFieldRef_CapabilitiesByKind(t *testing.T) {
	s := testutil.NewSports(t)
	path := queryir.NewPath("x")

	tests := []struct {
		kind     model.Kind
		ordering bool
		pattern  bool
	}{
		{model.KindString, true, true},
		{model.KindInt, true, false},
		{model.KindBool, false, false},
		{model.KindOther, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			ref := model.NewFieldRef(s.League, path, tt.kind)
			assert.Equal(t, tt.kind, ref.Kind())

			_, isOrdering := ref.(model.Ordering)
			_, isPattern := ref.(model.Pattern)
			assert.Equal(t, tt.ordering, isOrdering)
			assert.Equal(t, tt.pattern, isPattern)
		})
	}
}

func TestFieldRef_BuildsLeaves(t *testing.T) {
	s := testutil.NewSports(t)
	name := s.Team.MustGet("name").(model.StringRef)
	path := queryir.NewPath("name")

	tests := []struct {
		name string
		got  queryir.Leaf
		want queryir.Leaf
	}{
		{"eq", name.Eq("Eagles"), queryir.NewLeaf(queryir.OpExact, path, "Eagles")},
		{"exact", name.Exact("Eagles"), queryir.NewLeaf(queryir.OpExact, path, "Eagles")},
		{"ne", name.Ne("Eagles"), queryir.NewLeaf(queryir.OpNe, path, "Eagles")},
		{"gt", name.Gt("M"), queryir.NewLeaf(queryir.OpGt, path, "M")},
		{"lte", name.Lte("M"), queryir.NewLeaf(queryir.OpLte, path, "M")},
		{"isnull", name.IsNull(true), queryir.NewLeaf(queryir.OpIsNull, path, true)},
		{"contains", name.Contains("ag"), queryir.NewLeaf(queryir.OpContains, path, "ag")},
		{"icontains", name.IContains("ag"), queryir.NewLeaf(queryir.OpIContains, path, "ag")},
		{"startswith", name.StartsWith("E"), queryir.NewLeaf(queryir.OpStartsWith, path, "E")},
		{"istartswith", name.IStartsWith("e"), queryir.NewLeaf(queryir.OpIStartsWith, path, "e")},
		{"endswith", name.EndsWith("s"), queryir.NewLeaf(queryir.OpEndsWith, path, "s")},
		{"iendswith", name.IEndsWith("S"), queryir.NewLeaf(queryir.OpIEndsWith, path, "S")},
		{"in", name.In("a", "b"), queryir.NewLeaf(queryir.OpIn, path, []any{"a", "b"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestIn_CopiesValues(t *testing.T) {
	s := testutil.NewSports(t)
	id := s.Result.MustGet("id").(model.IntRef)

	values := []any{1, 2, 3}
	expr := id.In(values...)
	values[0] = 99

	assert.Equal(t, []any{1, 2, 3}, expr.Value)
}

func TestInValues_TypedSlice(t *testing.T) {
	s := testutil.NewSports(t)
	id := s.Result.MustGet("id").(model.IntRef)

	ids := []int{4, 5}
	expr := model.InValues(id, ids)
	ids[0] = 0

	assert.Equal(t, queryir.OpIn, expr.Op)
	assert.Equal(t, []any{4, 5}, expr.Value)
}

func TestFieldRef_RootAndPath(t *testing.T) {
	s := testutil.NewSports(t)

	ref := s.Result.MustGet("published")
	require.IsType(t, model.BoolRef{}, ref)
	assert.Same(t, s.Result, ref.Root())
	assert.Equal(t, []string{"published"}, ref.Path().Segments())
}

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relq/internal/model"
	"github.com/roach88/relq/internal/queryir"
	"github.com/roach88/relq/internal/testutil"
)

func TestApply_MatchesMethods(t *testing.T) {
	s := testutil.NewSports(t)
	name := model.MustAttr[model.StringRef](s.Match, "team", "name")

	tests := []struct {
		op    queryir.Op
		value any
		want  queryir.Leaf
	}{
		{queryir.OpExact, "Eagles", name.Eq("Eagles")},
		{queryir.OpNe, "Eagles", name.Ne("Eagles")},
		{queryir.OpGt, "M", name.Gt("M")},
		{queryir.OpGte, "M", name.Gte("M")},
		{queryir.OpLt, "M", name.Lt("M")},
		{queryir.OpLte, "M", name.Lte("M")},
		{queryir.OpIn, []string{"a", "b"}, name.In("a", "b")},
		{queryir.OpIsNull, false, name.IsNull(false)},
		{queryir.OpContains, "ag", name.Contains("ag")},
		{queryir.OpIContains, "ag", name.IContains("ag")},
		{queryir.OpStartsWith, "E", name.StartsWith("E")},
		{queryir.OpIStartsWith, "e", name.IStartsWith("e")},
		{queryir.OpEndsWith, "s", name.EndsWith("s")},
		{queryir.OpIEndsWith, "S", name.IEndsWith("S")},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			got, err := model.Apply(name, tt.op, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_Unsupported(t *testing.T) {
	s := testutil.NewSports(t)
	score := model.MustAttr[model.IntRef](s.Match, "result", "score")
	published := model.MustAttr[model.BoolRef](s.Match, "result", "published")

	_, err := model.Apply(score, queryir.OpContains, "1")
	require.Error(t, err)
	assert.True(t, model.IsUnsupportedOperator(err))
	assert.Equal(t, `result.score (int) does not support "contains"`, err.Error())

	_, err = model.Apply(published, queryir.OpGt, true)
	var uo *model.UnsupportedOperatorError
	require.ErrorAs(t, err, &uo)
	assert.Equal(t, model.KindBool, uo.Kind)

	_, err = model.Apply(published, queryir.Op("regex"), "x")
	assert.True(t, model.IsUnsupportedOperator(err))
}

func TestApply_InvalidValues(t *testing.T) {
	s := testutil.NewSports(t)
	name := model.MustAttr[model.StringRef](s.Match, "team", "name")

	for _, tt := range []struct {
		op    queryir.Op
		value any
	}{
		{queryir.OpIn, "not a list"},
		{queryir.OpIn, nil},
		{queryir.OpIsNull, "yes"},
		{queryir.OpIContains, 7},
	} {
		_, err := model.Apply(name, tt.op, tt.value)
		require.ErrorIs(t, err, model.ErrInvalidValue, string(tt.op))
	}
}

func TestCapabilities(t *testing.T) {
	assert.Len(t, model.Capabilities(model.KindString), len(queryir.Ops))
	assert.Equal(t,
		[]queryir.Op{queryir.OpExact, queryir.OpNe, queryir.OpGt, queryir.OpGte, queryir.OpLt, queryir.OpLte, queryir.OpIn, queryir.OpIsNull},
		model.Capabilities(model.KindInt))
	assert.Equal(t,
		[]queryir.Op{queryir.OpExact, queryir.OpNe, queryir.OpIn, queryir.OpIsNull},
		model.Capabilities(model.KindBool))
	assert.Equal(t, model.Capabilities(model.KindBool), model.Capabilities(model.KindOther))

	assert.False(t, model.Supports(model.KindInt, queryir.Op("regex")))
}

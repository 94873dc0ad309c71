package queryir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_PortableLeaf(t *testing.T) {
	result := Validate(NewLeaf(OpExact, NewPath("name"), "X"))

	assert.True(t, result.IsPortable)
	assert.Empty(t, result.Warnings)
}

func TestValidate_PortableComposite(t *testing.T) {
	expr := Or(
		NewLeaf(OpGt, NewPath("score"), 10),
		NewLeaf(OpIsNull, NewPath("deleted_at"), true),
	)

	result := Validate(expr)
	assert.True(t, result.IsPortable)
}

func TestValidate_MultiHopPath(t *testing.T) {
	result := Validate(NewLeaf(OpIContains, NewPath("team", "league", "name"), "eagles"))

	assert.False(t, result.IsPortable)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "team.league.name")
	assert.Contains(t, result.Warnings[0], "2 relation(s)")
}

func TestValidate_EmptyInList(t *testing.T) {
	testCases := []struct {
		name  string
		value any
	}{
		{"empty any slice", []any{}},
		{"nil", nil},
		{"empty typed slice", []int{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Validate(NewLeaf(OpIn, NewPath("id"), tc.value))
			assert.False(t, result.IsPortable)
			require.Len(t, result.Warnings, 1)
			assert.Contains(t, result.Warnings[0], "never matches")
		})
	}
}

func TestValidate_NonEmptyTypedInList(t *testing.T) {
	result := Validate(NewLeaf(OpIn, NewPath("id"), []int{1, 2}))
	assert.True(t, result.IsPortable)
}

func TestValidate_UnknownOperator(t *testing.T) {
	result := Validate(NewLeaf(Op("regex"), NewPath("name"), ".*"))

	assert.False(t, result.IsPortable)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `unknown operator "regex"`)
}

func TestValidate_UnknownBoolOp(t *testing.T) {
	expr := Composite{
		BoolOp: "XOR",
		Left:   NewLeaf(OpExact, NewPath("a"), 1),
		Right:  NewLeaf(OpExact, NewPath("b"), 2),
	}

	result := Validate(expr)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], `"XOR"`)
}

func TestValidate_NilChildren(t *testing.T) {
	result := Validate(Composite{BoolOp: BoolAnd, Left: NewLeaf(OpExact, NewPath("a"), 1)})

	assert.False(t, result.IsPortable)
	assert.Equal(t, []string{"nil expression"}, result.Warnings)

	result = Validate(nil)
	assert.Equal(t, []string{"nil expression"}, result.Warnings)
}

func TestValidate_EmptyPath(t *testing.T) {
	result := Validate(NewLeaf(OpExact, Path{}, 1))

	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "empty path")
}

func TestValidate_PointerNodes(t *testing.T) {
	leaf := NewLeaf(OpExact, NewPath("a"), 1)
	composite := And(&leaf, NewLeaf(OpIn, NewPath("b"), []any{}))

	result := Validate(&composite)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "IN list")
}

func TestValidate_WarningOrderFollowsTree(t *testing.T) {
	expr := And(
		NewLeaf(OpExact, NewPath("team", "name"), "X"),
		NewLeaf(OpIn, NewPath("id"), []any{}),
	)

	result := Validate(expr)
	require.Len(t, result.Warnings, 2)
	assert.Contains(t, result.Warnings[0], "team.name")
	assert.Contains(t, result.Warnings[1], "IN list")
}

func TestWalk_LeftToRight(t *testing.T) {
	expr := Or(
		And(NewLeaf(OpExact, NewPath("a"), 1), NewLeaf(OpExact, NewPath("b"), 2)),
		NewLeaf(OpExact, NewPath("c"), 3),
	)

	var visited []string
	Walk(expr, func(l Leaf) { visited = append(visited, l.Path.String()) })

	assert.Equal(t, []string{"a", "b", "c"}, visited)
}

func TestPaths_DistinctFirstAppearance(t *testing.T) {
	e1 := And(NewLeaf(OpGt, NewPath("score"), 1), NewLeaf(OpLt, NewPath("score"), 9))
	e2 := NewLeaf(OpExact, NewPath("team", "name"), "X")

	paths := Paths(e1, e2)

	require.Len(t, paths, 2)
	assert.Equal(t, "score", paths[0].String())
	assert.Equal(t, "team.name", paths[1].String())
}

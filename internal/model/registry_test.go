package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relq/internal/model"
)

func TestDeclare_RegistersEveryAttributeOnce(t *testing.T) {
	reg := model.NewRegistry()

	rt, err := reg.Declare("League",
		model.Field("id", model.KindInt),
		model.Field("name", model.KindString),
	)
	require.NoError(t, err)

	assert.Equal(t, "League", rt.Name())
	assert.Same(t, reg, rt.Registry())
	assert.Equal(t, []string{"id", "name"}, rt.Attributes())
	assert.Len(t, rt.Fields(), 2)
	assert.Empty(t, rt.Relations())

	f, ok := rt.FieldDecl("name")
	require.True(t, ok)
	assert.Equal(t, model.KindString, f.Kind)

	got, ok := reg.Lookup("League")
	require.True(t, ok)
	assert.Same(t, rt, got)
}

func TestDeclare_AttachesManager(t *testing.T) {
	reg := model.NewRegistry()
	rt := reg.MustDeclare("League", model.Field("id", model.KindInt))

	require.NotNil(t, rt.Objects())
	assert.Same(t, rt, rt.Objects().Model())
}

func TestDeclare_DuplicateAttribute(t *testing.T) {
	reg := model.NewRegistry()
	league := reg.MustDeclare("League", model.Field("id", model.KindInt))

	tests := []struct {
		name  string
		decls []model.Decl
	}{
		{
			name:  "two fields",
			decls: []model.Decl{model.Field("name", model.KindString), model.Field("name", model.KindInt)},
		},
		{
			name:  "field and relation",
			decls: []model.Decl{model.Field("league", model.KindInt), model.Relation("league", league)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg.Declare("Team", tt.decls...)
			require.Error(t, err)
			assert.True(t, model.IsDuplicateField(err))

			var df *model.DuplicateFieldError
			require.ErrorAs(t, err, &df)
			assert.Equal(t, "Team", df.Type)

			_, ok := reg.Lookup("Team")
			assert.False(t, ok, "rejected declaration must not be registered")
		})
	}
}

func TestDeclare_DuplicateType(t *testing.T) {
	reg := model.NewRegistry()
	reg.MustDeclare("League")

	_, err := reg.Declare("League")
	var dt *model.DuplicateTypeError
	require.ErrorAs(t, err, &dt)
	assert.Equal(t, "League", dt.Type)
}

func TestDeclare_EmptyNames(t *testing.T) {
	reg := model.NewRegistry()

	_, err := reg.Declare("")
	require.ErrorIs(t, err, model.ErrEmptyName)

	_, err = reg.Declare("Team", model.Field("", model.KindInt))
	require.ErrorIs(t, err, model.ErrEmptyName)

	_, err = reg.Declare("Team", model.RelationTo("league", ""))
	require.ErrorIs(t, err, model.ErrEmptyName)
}

func TestDeclare_PlaceholderMarkerInName(t *testing.T) {
	reg := model.NewRegistry()

	_, err := reg.Declare("Team", model.Field("ok?", model.KindInt))
	var in *model.InvalidNameError
	require.ErrorAs(t, err, &in)
	assert.Equal(t, "ok?", in.Name)

	_, err = reg.Declare("Team?")
	require.ErrorAs(t, err, &in)
	assert.Equal(t, "Team?", in.Type)

	_, ok := reg.Lookup("Team")
	assert.False(t, ok)
}

func TestMustDeclare_Panics(t *testing.T) {
	reg := model.NewRegistry()
	assert.Panics(t, func() {
		reg.MustDeclare("Team", model.Field("x", model.KindInt), model.Field("x", model.KindInt))
	})
}

func TestCheck_UnknownTarget(t *testing.T) {
	reg := model.NewRegistry()
	reg.MustDeclare("Team", model.RelationTo("league", "League"))

	err := reg.Check()
	var ut *model.UnknownTypeError
	require.ErrorAs(t, err, &ut)
	assert.Equal(t, "Team", ut.Type)
	assert.Equal(t, "league", ut.Relation)
	assert.Equal(t, "League", ut.Target)

	reg.MustDeclare("League", model.Field("name", model.KindString))
	assert.NoError(t, reg.Check())
}

func TestTypes_DeclarationOrder(t *testing.T) {
	reg := model.NewRegistry()
	for _, name := range []string{"C", "A", "B"} {
		reg.MustDeclare(name)
	}

	var names []string
	for _, rt := range reg.Types() {
		names = append(names, rt.Name())
	}
	assert.Equal(t, []string{"C", "A", "B"}, names)
}

func TestDefaultRegistry(t *testing.T) {
	rt, err := model.Declare("DefaultRegistryProbe", model.Field("id", model.KindInt))
	require.NoError(t, err)

	got, ok := model.Lookup("DefaultRegistryProbe")
	require.True(t, ok)
	assert.Same(t, rt, got)
	assert.Same(t, model.Default, rt.Registry())
}

func TestParseKind(t *testing.T) {
	tests := map[string]model.Kind{
		"string":  model.KindString,
		"TEXT":    model.KindString,
		"int":     model.KindInt,
		"integer": model.KindInt,
		"bool":    model.KindBool,
		"boolean": model.KindBool,
		"float":   model.KindOther,
		"":        model.KindOther,
	}
	for in, want := range tests {
		assert.Equal(t, want, model.ParseKind(in), in)
	}
	assert.Equal(t, "other", model.KindOther.String())
}

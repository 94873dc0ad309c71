package querysql

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relq/internal/queryir"
)

func TestSqlizer_ComposesWithSquirrel(t *testing.T) {
	c := NewSQLCompiler()
	expr := leaf(queryir.OpExact, "Eagles", "team", "name").Or(leaf(queryir.OpGt, 3, "result", "score"))

	sql, params, err := sq.Select("id").
		From("Match").
		Where(c.Sqlizer(expr)).
		Where(sq.Eq{"result__published": true}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id FROM Match WHERE (team__name = $1) OR (result__score > $2) AND result__published = $3",
		sql)
	assert.Equal(t, []any{"Eagles", 3, true}, params)
}

func TestSqlizer_PropagatesErrors(t *testing.T) {
	c := NewSQLCompiler()

	_, _, err := sq.Select("*").From("T").Where(c.Sqlizer(nil)).ToSql()
	require.ErrorIs(t, err, ErrNilExpression)
}

func TestSelectBuilder_MatchesCompileSelect(t *testing.T) {
	for _, d := range []Dialect{Default, Postgres, SQLite} {
		t.Run(d.Name, func(t *testing.T) {
			c := NewSQLCompiler(WithDialect(d))
			preds := []queryir.Expression{
				leaf(queryir.OpIContains, "eagles", "team", "league", "name"),
				leaf(queryir.OpIn, []any{1, 2, 3}, "result", "id"),
			}

			wantSQL, wantParams, err := c.CompileSelect("Match", preds)
			require.NoError(t, err)

			gotSQL, gotParams, err := c.SelectBuilder("Match", preds).ToSql()
			require.NoError(t, err)

			assert.Equal(t, wantSQL, gotSQL)
			assert.Equal(t, wantParams, gotParams)
		})
	}
}

func TestSelectBuilder_Extends(t *testing.T) {
	c := NewSQLCompiler(WithDialect(Postgres))

	sql, params, err := c.SelectBuilder("Match", []queryir.Expression{
		leaf(queryir.OpExact, true, "result", "published"),
	}).OrderBy("id").Limit(5).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM Match WHERE (result__published = $1) ORDER BY id LIMIT 5", sql)
	assert.Equal(t, []any{true}, params)
}

func TestSelectBuilder_NoPredicates(t *testing.T) {
	sql, params, err := NewSQLCompiler().SelectBuilder("League", nil).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM League", sql)
	assert.Empty(t, params)
}

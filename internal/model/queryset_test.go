package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/relq/internal/canonical"
	"github.com/roach88/relq/internal/model"
	"github.com/roach88/relq/internal/queryir"
	"github.com/roach88/relq/internal/querysql"
	"github.com/roach88/relq/internal/testutil"
)

func matchDemo(s *testutil.Sports) model.QueryBuilder {
	return s.Match.Objects().Where(
		model.MustAttr[model.StringRef](s.Match, "team", "league", "name").IContains("eagles"),
		model.MustAttr[model.IntRef](s.Match, "result", "id").In(1, 2, 3),
		model.MustAttr[model.BoolRef](s.Match, "result", "published").Eq(true),
		model.MustAttr[model.IntRef](s.Match, "result", "score").Gt(10),
	)
}

func TestQueryBuilder_MatchDemo(t *testing.T) {
	s := testutil.NewSports(t)

	sql, params, err := matchDemo(s).Compile()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT * FROM Match WHERE (team__league__name ILIKE ?) AND (result__id IN (?, ?, ?)) AND (result__published = ?) AND (result__score > ?)",
		sql)
	assert.Equal(t, []any{"%eagles%", 1, 2, 3, true, 10}, params)
	testutil.AssertStatementGolden(t, "match_demo", sql, params)
}

func TestQueryBuilder_BooleanDemo(t *testing.T) {
	s := testutil.NewSports(t)

	teamName := model.MustAttr[model.StringRef](s.Match, "team", "name")
	leagueName := model.MustAttr[model.StringRef](s.Match, "team", "league", "name")
	score := model.MustAttr[model.IntRef](s.Match, "result", "score")

	expr := teamName.StartsWith("New").And(leagueName.EndsWith("East")).Or(score.Gte(42))
	sql, params, err := s.Match.Objects().Where(expr).Compile()
	require.NoError(t, err)

	testutil.AssertStatementGolden(t, "boolean_demo", sql, params)
}

func TestQueryBuilder_Postgres(t *testing.T) {
	s := testutil.NewSports(t)

	sql, params, err := matchDemo(s).CompileWith(querysql.NewSQLCompiler(querysql.WithDialect(querysql.Postgres)))
	require.NoError(t, err)

	testutil.AssertStatementGolden(t, "match_demo_postgres", sql, params)
}

func TestQueryBuilder_All(t *testing.T) {
	s := testutil.NewSports(t)

	sql, params, err := s.League.Objects().All().Compile()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM League", sql)
	assert.Empty(t, params)
}

func TestQueryBuilder_WhereIsImmutable(t *testing.T) {
	s := testutil.NewSports(t)
	name := model.MustAttr[model.StringRef](s.Team, "name")
	id := model.MustAttr[model.IntRef](s.Team, "id")

	base := s.Team.Objects().Where(name.Eq("Eagles"))
	left := base.Where(id.Gt(1))
	right := base.Where(id.Lt(100))

	assert.Len(t, base.Filters(), 1)
	require.Len(t, left.Filters(), 2)
	require.Len(t, right.Filters(), 2)
	assert.Equal(t, queryir.OpGt, left.Filters()[1].(queryir.Leaf).Op)
	assert.Equal(t, queryir.OpLt, right.Filters()[1].(queryir.Leaf).Op)

	filters := left.Filters()
	filters[0] = nil
	assert.NotNil(t, left.Filters()[0], "Filters returns a copy")
}

func TestQueryBuilder_CompileError(t *testing.T) {
	s := testutil.NewSports(t)
	bad := queryir.NewLeaf(queryir.Op("regex"), queryir.NewPath("name"), ".*")

	sql, params, err := s.Team.Objects().Where(bad).Compile()
	require.Error(t, err)
	assert.True(t, querysql.IsUnknownOperator(err))
	assert.Contains(t, err.Error(), "compile query on Team")
	assert.Empty(t, sql)
	assert.Nil(t, params)

	assert.Contains(t, s.Team.Objects().Where(bad).String(), "<QuerySet error=")
}

func TestQueryBuilder_String(t *testing.T) {
	s := testutil.NewSports(t)
	name := model.MustAttr[model.StringRef](s.Team, "name")

	qs := s.Team.Objects().Where(name.Eq("Eagles"), name.In())
	assert.Equal(t, `<QuerySet SELECT * FROM Team WHERE (name = ?) AND (1 = 0) params=["Eagles"]>`, qs.String())
}

func TestQueryBuilder_Fingerprint(t *testing.T) {
	s := testutil.NewSports(t)

	a, err := matchDemo(s).Fingerprint()
	require.NoError(t, err)
	b, err := matchDemo(testutil.NewSports(t)).Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	sql, params, err := matchDemo(s).Compile()
	require.NoError(t, err)
	assert.Equal(t, canonical.MustFingerprint(sql, params), a)

	other, err := s.Match.Objects().All().Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, a, other)
}

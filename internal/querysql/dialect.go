package querysql

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/roach88/relq/internal/queryir"
)

// Dialect fixes the surface syntax details that vary between databases.
type Dialect struct {
	// Name identifies the dialect in configuration.
	Name string

	// Separator joins path segments into a column name.
	Separator string

	// Placeholder rewrites the "?" markers of a compiled statement.
	// Numbering formats such as sq.Dollar count over the whole statement.
	Placeholder sq.PlaceholderFormat

	// Like and ILike are the case-sensitive and case-insensitive pattern
	// match keywords.
	Like  string
	ILike string
}

var (
	// Default renders "?" placeholders and ILIKE.
	Default = Dialect{
		Name:        "default",
		Separator:   queryir.DefaultSeparator,
		Placeholder: sq.Question,
		Like:        "LIKE",
		ILike:       "ILIKE",
	}

	// Postgres renders "$1", "$2", ... placeholders.
	Postgres = Dialect{
		Name:        "postgres",
		Separator:   queryir.DefaultSeparator,
		Placeholder: sq.Dollar,
		Like:        "LIKE",
		ILike:       "ILIKE",
	}

	// SQLite has no ILIKE; its LIKE already ignores ASCII case.
	SQLite = Dialect{
		Name:        "sqlite",
		Separator:   queryir.DefaultSeparator,
		Placeholder: sq.Question,
		Like:        "LIKE",
		ILike:       "LIKE",
	}
)

var dialects = map[string]Dialect{
	Default.Name:  Default,
	Postgres.Name: Postgres,
	SQLite.Name:   SQLite,
	"sqlite3":     SQLite,
	"postgresql":  Postgres,
}

// DialectByName returns the dialect registered under name. The empty name
// selects Default.
func DialectByName(name string) (Dialect, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Default, nil
	}
	d, ok := dialects[key]
	if !ok {
		return Dialect{}, fmt.Errorf("unknown dialect %q", name)
	}
	return d, nil
}

// DialectNames lists the canonical dialect names.
func DialectNames() []string {
	return []string{Default.Name, Postgres.Name, SQLite.Name}
}

func (d Dialect) patternKeyword(op queryir.Op) string {
	if op.CaseInsensitive() {
		return d.ILike
	}
	return d.Like
}

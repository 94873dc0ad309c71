package sqlcheck

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/relq/internal/model"
	"github.com/roach88/relq/internal/queryir"
	"github.com/roach88/relq/internal/querysql"
)

// Checker prepares statements against a private in-memory database.
type Checker struct {
	db       *sql.DB
	compiler *querysql.SQLCompiler
}

// Open creates a checker backed by a fresh in-memory SQLite database.
func Open() (*Checker, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every connection to ":memory:" is a separate database; keep one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Checker{
		db:       db,
		compiler: querysql.NewSQLCompiler(querysql.WithDialect(querysql.SQLite)),
	}, nil
}

// Close closes the database.
func (c *Checker) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Check compiles qb for SQLite and prepares the result.
func (c *Checker) Check(ctx context.Context, qb model.QueryBuilder) error {
	if qb.Model() == nil {
		return fmt.Errorf("check query: no record type")
	}
	sqlText, _, err := qb.CompileWith(c.compiler)
	if err != nil {
		return err
	}
	return c.CheckStatement(ctx, qb.Model().Name(), Columns(qb.Filters()...), sqlText)
}

// CheckStatement prepares sqlText with a scratch table called table that
// has the given columns.
func (c *Checker) CheckStatement(ctx context.Context, table string, columns []string, sqlText string) (err error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && err == nil {
			err = fmt.Errorf("failed to roll back: %w", rbErr)
		}
	}()

	if _, err := tx.ExecContext(ctx, createTable(table, columns)); err != nil {
		return &CheckError{Table: table, SQL: sqlText, Stage: "create table", Err: err}
	}

	stmt, err := tx.PrepareContext(ctx, sqlText)
	if err != nil {
		return &CheckError{Table: table, SQL: sqlText, Stage: "prepare", Err: err}
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("failed to close statement: %w", err)
	}

	slog.Debug("statement prepared", "table", table, "columns", len(columns))
	return nil
}

// Columns lists the distinct columns referenced by exprs, in first
// appearance order, joined with the default separator.
func Columns(exprs ...queryir.Expression) []string {
	paths := queryir.Paths(exprs...)
	cols := make([]string, 0, len(paths))
	for _, p := range paths {
		cols = append(cols, p.Column(queryir.DefaultSeparator))
	}
	return cols
}

func createTable(table string, columns []string) string {
	seen := make(map[string]bool, len(columns)+1)
	quoted := make([]string, 0, len(columns)+1)
	for _, col := range append([]string{"id"}, columns...) {
		if seen[col] {
			continue
		}
		seen[col] = true
		quoted = append(quoted, quoteIdent(col))
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(table), strings.Join(quoted, ", "))
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// CheckError reports a statement SQLite refused.
type CheckError struct {
	Table string
	SQL   string
	Stage string
	Err   error
}

func (e *CheckError) Error() string {
	return fmt.Sprintf("%s %s: %v (sql: %s)", e.Stage, e.Table, e.Err, e.SQL)
}

func (e *CheckError) Unwrap() error { return e.Err }

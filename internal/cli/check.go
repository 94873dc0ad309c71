package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/relq/internal/querydoc"
	"github.com/roach88/relq/internal/sqlcheck"
)

// CheckResult is the outcome of checking one query.
type CheckResult struct {
	Name  string `json:"name"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <queries.yaml>",
		Short: "Check compiled queries against SQLite",
		Long: `Compile every query of a YAML query document for SQLite and prepare it
against an in-memory database with a scratch table per query. Statements
are never executed. Any statement SQLite rejects makes the command exit
with status 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(rootOpts, args[0], cmd)
		},
	}
}

func runCheck(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := opts.printer(cmd)

	schema, err := loadSchema(opts, f)
	if err != nil {
		return err
	}
	doc, err := loadDocument(path, f)
	if err != nil {
		return err
	}

	checker, err := sqlcheck.Open()
	if err != nil {
		return f.Fail(ExitUsage, ErrCodeCheckerSetup, err)
	}
	defer checker.Close()

	ctx := cmd.Context()
	results := make([]CheckResult, 0, len(doc.Queries))
	rejected := 0
	for _, q := range doc.Queries {
		qb, err := querydoc.Build(schema.Registry, q)
		if err != nil {
			return f.Fail(ExitUsage, ErrCodeBuild, err)
		}

		result := CheckResult{Name: q.Name, OK: true}
		if err := checker.Check(ctx, qb); err != nil {
			result.OK = false
			result.Error = err.Error()
			rejected++
		}
		f.Debugf("checked %s: ok=%t", q.Name, result.OK)
		results = append(results, result)
	}

	if f.JSON {
		if err := f.Result(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.OK {
				fmt.Fprintf(f.Out, "✓ %s\n", r.Name)
			} else {
				fmt.Fprintf(f.Out, "✗ %s: %s\n", r.Name, r.Error)
			}
		}
	}

	if rejected > 0 {
		return failed(ErrCodeCheckFailed, "%d quer(y/ies) rejected by SQLite", rejected)
	}
	return nil
}

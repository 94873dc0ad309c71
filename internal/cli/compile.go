package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/relq/internal/canonical"
	"github.com/roach88/relq/internal/querydoc"
)

// CompileOutput is the JSON payload of the compile command.
type CompileOutput struct {
	Dialect string              `json:"dialect"`
	Queries []querydoc.Compiled `json:"queries"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compile <queries.yaml>",
		Short: "Compile a query document to SQL",
		Long: `Resolve every query of a YAML query document against the CUE schema and
print the compiled SQL text, its parameters and its fingerprint.

Queries with an expect block are compared against it; any mismatch makes
the command exit with status 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(rootOpts, args[0], cmd)
		},
	}
}

func runCompile(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := opts.printer(cmd)

	schema, err := loadSchema(opts, f)
	if err != nil {
		return err
	}
	doc, err := loadDocument(path, f)
	if err != nil {
		return err
	}
	compiler, err := opts.compiler()
	if err != nil {
		return f.Fail(ExitUsage, ErrCodeGeneric, err)
	}

	results, err := querydoc.Compile(schema.Registry, doc, compiler)
	if err != nil {
		return f.Fail(ExitUsage, ErrCodeCompile, err)
	}

	mismatches := 0
	for _, r := range results {
		if r.Mismatch != "" {
			mismatches++
		}
		for _, w := range r.Warnings {
			f.Debugf("%s: %s", r.Name, w)
		}
	}

	if f.JSON {
		if err := f.Result(CompileOutput{Dialect: compiler.Dialect.Name, Queries: results}); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			params, err := canonical.Marshal(r.Params)
			if err != nil {
				params = []byte(fmt.Sprint(r.Params))
			}
			fmt.Fprintf(f.Out, "%s (%s)\n", r.Name, r.Model)
			fmt.Fprintf(f.Out, "  sql:    %s\n", r.SQL)
			fmt.Fprintf(f.Out, "  params: %s\n", params)
			fmt.Fprintf(f.Out, "  hash:   %s\n", r.Fingerprint)
			if r.Mismatch != "" {
				fmt.Fprintf(f.Out, "  ✗ %s\n", r.Mismatch)
			}
		}
	}

	if mismatches > 0 {
		return failed(ErrCodeMismatch, "%d quer(y/ies) differ from expectation", mismatches)
	}
	return nil
}

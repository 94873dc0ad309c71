package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/relq/internal/config"
	"github.com/roach88/relq/internal/logging"
	"github.com/roach88/relq/internal/querysql"
)

// RootOptions holds global flags for all commands.
//
// Flag values override the config file and RELQ_ environment variables;
// PersistentPreRunE merges them into Config before any command runs.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigFile string
	Dialect    string
	SchemaDir  string

	Config *config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the relq CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "relq",
		Short: "relq - typed query expressions over declared record types",
		Long: `Declare record types in CUE, describe queries in YAML, and compile them
to parameterized SQL. Attribute paths are resolved through the schema, so
unknown attributes and operators a field does not support are rejected
before any SQL is produced.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default ./relq.yaml if present)")
	cmd.PersistentFlags().StringVar(&opts.Dialect, "dialect", "", fmt.Sprintf("SQL dialect %v", querysql.DialectNames()))
	cmd.PersistentFlags().StringVarP(&opts.SchemaDir, "schema", "s", "", "CUE schema directory")

	// Add subcommands
	cmd.AddCommand(NewSchemaCommand(opts))
	cmd.AddCommand(NewCompileCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// resolve loads the config, applies explicitly set flags on top and
// installs the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigFile)
	if err != nil {
		return usageError(fmt.Errorf("loading config: %w", err))
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = o.Format
	}
	if flags.Changed("dialect") {
		cfg.Dialect = o.Dialect
	}
	if flags.Changed("schema") {
		cfg.SchemaDir = o.SchemaDir
	}
	if o.Verbose {
		cfg.LogLevel = "debug"
	}

	// Validate format flag
	if !isValidFormat(cfg.Format) {
		return usageError(fmt.Errorf("invalid format %q: must be one of %v", cfg.Format, ValidFormats))
	}
	if err := cfg.Validate(); err != nil {
		return usageError(fmt.Errorf("invalid options: %w", err))
	}

	if _, err := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, cfg.Format); err != nil {
		return usageError(fmt.Errorf("configuring logging: %w", err))
	}

	o.Format = cfg.Format
	o.Dialect = cfg.Dialect
	o.SchemaDir = cfg.SchemaDir
	o.Config = cfg
	return nil
}

// compiler returns a SQL compiler for the resolved dialect.
func (o *RootOptions) compiler() (*querysql.SQLCompiler, error) {
	d, err := querysql.DialectByName(o.Dialect)
	if err != nil {
		return nil, err
	}
	return querysql.NewSQLCompiler(querysql.WithDialect(d)), nil
}

func (o *RootOptions) printer(cmd *cobra.Command) *Printer {
	return &Printer{
		JSON:    o.Format == "json",
		Out:     cmd.OutOrStdout(),
		Diag:    cmd.ErrOrStderr(),
		Verbose: o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

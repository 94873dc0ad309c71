package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/relq/internal/model"
)

// TypeInfo describes a declared record type.
type TypeInfo struct {
	Name      string         `json:"name"`
	Fields    []FieldInfo    `json:"fields"`
	Relations []RelationInfo `json:"relations"`
}

// FieldInfo describes a field and the operators its proxy supports.
type FieldInfo struct {
	Name      string   `json:"name"`
	Kind      string   `json:"kind"`
	Operators []string `json:"operators"`
}

// RelationInfo describes a relation.
type RelationInfo struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}

// NewSchemaCommand creates the schema command.
func NewSchemaCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Show the declared record types",
		Long: `Load the CUE schema and list every record type with its fields,
their kinds and supported operators, and its relations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(rootOpts, cmd)
		},
	}
}

func runSchema(opts *RootOptions, cmd *cobra.Command) error {
	f := opts.printer(cmd)

	schema, err := loadSchema(opts, f)
	if err != nil {
		return err
	}

	infos := make([]TypeInfo, 0, len(schema.Types))
	for _, rt := range schema.Types {
		infos = append(infos, describeType(rt))
	}

	if f.JSON {
		return f.Result(infos)
	}

	fmt.Fprintf(f.Out, "✓ %d record type(s)\n\n", len(infos))
	for _, info := range infos {
		fmt.Fprintf(f.Out, "%s\n", info.Name)
		for _, field := range info.Fields {
			fmt.Fprintf(f.Out, "  %s %s [%s]\n", field.Name, field.Kind, strings.Join(field.Operators, " "))
		}
		for _, rel := range info.Relations {
			fmt.Fprintf(f.Out, "  %s -> %s\n", rel.Name, rel.Target)
		}
	}
	return nil
}

func describeType(rt *model.RecordType) TypeInfo {
	info := TypeInfo{
		Name:      rt.Name(),
		Fields:    []FieldInfo{},
		Relations: []RelationInfo{},
	}
	for _, f := range rt.Fields() {
		ops := model.Capabilities(f.Kind)
		names := make([]string, len(ops))
		for i, op := range ops {
			names[i] = string(op)
		}
		info.Fields = append(info.Fields, FieldInfo{Name: f.Name, Kind: f.Kind.String(), Operators: names})
	}
	for _, rel := range rt.Relations() {
		info.Relations = append(info.Relations, RelationInfo{Name: rel.Name, Target: rel.Target})
	}
	return info
}

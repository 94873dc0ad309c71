package cueschema

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/roach88/relq/internal/model"
)

// Schema is the result of loading a CUE schema.
type Schema struct {
	Registry  *model.Registry
	Types     []*model.RecordType
	FileCount int
}

// Type returns the declared record type called name.
func (s *Schema) Type(name string) (*model.RecordType, bool) {
	return s.Registry.Lookup(name)
}

// LoadDir loads every .cue file of the package in dir into a fresh registry.
func LoadDir(dir string) (*Schema, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("schema directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("schema directory: not a directory: %s", dir)
	}

	files, err := FindCUEFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("scan schema directory: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no CUE files found in %s", dir)
	}

	ctx := cuecontext.New()
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, fmt.Errorf("no CUE instances loaded from %s", dir)
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, formatCUEError(inst.Err)
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	schema, err := Compile(value)
	if err != nil {
		return nil, err
	}
	schema.FileCount = len(files)

	slog.Debug("schema loaded", "dir", dir, "files", len(files), "types", len(schema.Types))
	return schema, nil
}

// LoadString compiles CUE source into a fresh registry. filename is used
// in error positions only.
func LoadString(src, filename string) (*Schema, error) {
	ctx := cuecontext.New()
	value := ctx.CompileString(src, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	return Compile(value)
}

// Compile declares the record types found under "record" in v into a
// fresh registry and checks that every relation target exists.
func Compile(v cue.Value) (*Schema, error) {
	reg := model.NewRegistry()
	types, err := Declare(reg, v)
	if err != nil {
		return nil, err
	}
	return &Schema{Registry: reg, Types: types}, nil
}

// Declare adds the record types found under "record" in v to reg, in
// source order, then checks relation targets.
func Declare(reg *model.Registry, v cue.Value) ([]*model.RecordType, error) {
	records := v.LookupPath(cue.ParsePath("record"))
	if !records.Exists() {
		return nil, &CompileError{
			Field:   "record",
			Message: "no record types declared",
			Pos:     v.Pos(),
		}
	}

	iter, err := records.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var types []*model.RecordType
	for iter.Next() {
		rt, err := declareRecord(reg, iter.Label(), iter.Value())
		if err != nil {
			return nil, err
		}
		types = append(types, rt)
	}

	if err := reg.Check(); err != nil {
		return nil, &CompileError{
			Field:   "relations",
			Message: err.Error(),
			Pos:     records.Pos(),
			Err:     err,
		}
	}
	return types, nil
}

func declareRecord(reg *model.Registry, name string, v cue.Value) (*model.RecordType, error) {
	var decls []model.Decl

	fields, err := parseFields(v)
	if err != nil {
		return nil, err
	}
	decls = append(decls, fields...)

	relations, err := parseRelations(v)
	if err != nil {
		return nil, err
	}
	decls = append(decls, relations...)

	rt, err := reg.Declare(name, decls...)
	if err != nil {
		return nil, &CompileError{
			Field:   "record." + name,
			Message: err.Error(),
			Pos:     v.Pos(),
			Err:     err,
		}
	}
	return rt, nil
}

// parseFields reads the optional "fields" struct in declaration order.
func parseFields(v cue.Value) ([]model.Decl, error) {
	fieldsVal := v.LookupPath(cue.ParsePath("fields"))
	if !fieldsVal.Exists() {
		return nil, nil
	}

	iter, err := fieldsVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var decls []model.Decl
	for iter.Next() {
		decls = append(decls, model.Field(iter.Label(), extractKind(iter.Value())))
	}
	return decls, nil
}

// parseRelations reads the optional "relations" struct. Each value must be
// the name of a record type.
func parseRelations(v cue.Value) ([]model.Decl, error) {
	relVal := v.LookupPath(cue.ParsePath("relations"))
	if !relVal.Exists() {
		return nil, nil
	}

	iter, err := relVal.Fields()
	if err != nil {
		return nil, formatCUEError(err)
	}

	var decls []model.Decl
	for iter.Next() {
		target, err := iter.Value().String()
		if err != nil {
			return nil, &CompileError{
				Field:   "relations",
				Message: fmt.Sprintf("relation %q: target must be a record type name", iter.Label()),
				Pos:     iter.Value().Pos(),
			}
		}
		decls = append(decls, model.RelationTo(iter.Label(), target))
	}
	return decls, nil
}

// extractKind converts a CUE type to a field kind.
func extractKind(v cue.Value) model.Kind {
	if v.IsConcrete() && v.Kind() == cue.StringKind {
		name, _ := v.String()
		return model.ParseKind(name)
	}
	switch v.IncompleteKind() {
	case cue.StringKind:
		return model.KindString
	case cue.IntKind:
		return model.KindInt
	case cue.BoolKind:
		return model.KindBool
	default:
		return model.KindOther
	}
}

// FindCUEFiles walks the directory and returns all .cue file paths.
func FindCUEFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(path) == ".cue" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

package cli

import (
	"errors"

	"github.com/roach88/relq/internal/cueschema"
	"github.com/roach88/relq/internal/querydoc"
)

// loadSchema loads the CUE schema from the resolved schema directory.
func loadSchema(opts *RootOptions, f *Printer) (*cueschema.Schema, error) {
	schema, err := cueschema.LoadDir(opts.SchemaDir)
	if err != nil {
		var compileErr *cueschema.CompileError
		if errors.As(err, &compileErr) && compileErr.Pos.IsValid() {
			f.Debugf("schema error at %s", compileErr.Pos)
		}
		return nil, f.Fail(ExitUsage, ErrCodeSchema, err)
	}
	f.Debugf("Loaded %d record type(s) from %d file(s) in %s", len(schema.Types), schema.FileCount, opts.SchemaDir)
	return schema, nil
}

// loadDocument loads a YAML query document.
func loadDocument(path string, f *Printer) (*querydoc.Document, error) {
	doc, err := querydoc.LoadFile(path)
	if err != nil {
		return nil, f.Fail(ExitUsage, ErrCodeDocument, err)
	}
	f.Debugf("Loaded %d quer(y/ies) from %s", len(doc.Queries), path)
	return doc, nil
}

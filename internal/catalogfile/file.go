// Package catalogfile loads type catalogs and instance trees from TOML.
//
// A document declares types with [[types]] and [[types.properties]] tables and
// may carry one [object] table describing a root instance:
//
//	[[types]]
//	uri = "urn:company"
//	name = "Company"
//
//	[[types.properties]]
//	name = "CEO"
//	type = "Employee"
//
//	[object]
//	type = "urn:company#Company"
//
//	[object.properties.CEO]
//	id = "ceo"
//
// Property values are TOML scalars, arrays for many-valued properties, tables
// for contained objects, {ref = "id"} for references and {null = true} for
// explicit nulls.
package catalogfile

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/jacoelho/sdo/internal/object"
	"github.com/jacoelho/sdo/internal/types"
)

// File is a decoded catalog document.
type File struct {
	Catalog *types.Catalog
	// Root is nil when the document has no [object] table.
	Root *object.DataObject
}

type document struct {
	Object map[string]any `toml:"object"`
	Types  []typeDecl     `toml:"types"`
}

type typeDecl struct {
	URI        string         `toml:"uri"`
	Name       string         `toml:"name"`
	Kind       string         `toml:"kind"`
	Properties []propertyDecl `toml:"properties"`
	Open       bool           `toml:"open"`
	Sequenced  bool           `toml:"sequenced"`
}

type propertyDecl struct {
	Name string `toml:"name"`
	Type string `toml:"type"`
	Many bool   `toml:"many"`
}

// Load reads and decodes name from fsys.
func Load(fsys fs.FS, name string) (*File, error) {
	if fsys == nil {
		return nil, fmt.Errorf("load catalog: nil fs")
	}
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", name, err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", name, err)
	}
	return f, nil
}

// LoadFile reads and decodes a catalog from a file path.
func LoadFile(path string) (*File, error) {
	return Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// Decode parses a catalog document. Unknown keys outside [object] are rejected.
func Decode(r io.Reader) (*File, error) {
	var doc document
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode toml: %s", describe(err))
	}
	catalog, err := buildCatalog(doc.Types)
	if err != nil {
		return nil, err
	}
	f := &File{Catalog: catalog}
	if doc.Object == nil {
		return f, nil
	}
	root, err := buildInstance(catalog, doc.Object)
	if err != nil {
		return nil, err
	}
	f.Root = root
	return f, nil
}

// describe flattens go-toml errors, which carry positions and context, into
// one line.
func describe(err error) string {
	switch e := err.(type) {
	case *toml.DecodeError:
		row, col := e.Position()
		return fmt.Sprintf("line %d column %d: %s", row, col, e.Error())
	case *toml.StrictMissingError:
		return e.Error()
	default:
		return err.Error()
	}
}

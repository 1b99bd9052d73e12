package sdo

import (
	"fmt"
	"io"
	"io/fs"

	"github.com/jacoelho/sdo/internal/catalogfile"
)

// Document is a loaded catalog with an optional root instance.
type Document struct {
	Catalog *Catalog
	// Root is nil when the document declares types only.
	Root *DataObject
}

// Load reads a TOML catalog document from fsys.
func Load(fsys fs.FS, location string) (*Document, error) {
	f, err := catalogfile.Load(fsys, location)
	if err != nil {
		return nil, err
	}
	return &Document{Catalog: f.Catalog, Root: f.Root}, nil
}

// LoadFile reads a TOML catalog document from a file path.
func LoadFile(path string) (*Document, error) {
	f, err := catalogfile.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return &Document{Catalog: f.Catalog, Root: f.Root}, nil
}

// Decode reads a TOML catalog document from r.
func Decode(r io.Reader) (*Document, error) {
	if r == nil {
		return nil, fmt.Errorf("decode catalog: nil reader")
	}
	f, err := catalogfile.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &Document{Catalog: f.Catalog, Root: f.Root}, nil
}

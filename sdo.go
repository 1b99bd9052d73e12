// Package sdo builds schema-described dynamic data objects and renders them
// for diagnostics.
//
// Types are declared in a Catalog or loaded from a TOML catalog file.
// DataObjects hold typed property values and own their children through
// containment; reference properties point at objects without owning them.
package sdo

import (
	"github.com/jacoelho/sdo/internal/marker"
	"github.com/jacoelho/sdo/internal/object"
	"github.com/jacoelho/sdo/internal/typenames"
	"github.com/jacoelho/sdo/internal/types"
)

type (
	// Kind is a primitive kind.
	Kind = types.Kind
	// Type describes a kind of DataObject or a primitive kind.
	Type = types.Type
	// TypeOptions configures a new Type.
	TypeOptions = types.TypeOptions
	// Property describes one named slot of a Type.
	Property = types.Property
	// Catalog is an ordered set of user-defined types.
	Catalog = types.Catalog
	// DataObject is a typed node of an object graph.
	DataObject = object.DataObject
	// List is the view of a many-valued property.
	List = object.List
)

// Primitive kinds.
const (
	KindString     = types.KindString
	KindDataObject = types.KindDataObject
	KindInteger    = types.KindInteger
	KindLong       = types.KindLong
	KindDouble     = types.KindDouble
	KindShort      = types.KindShort
	KindFloat      = types.KindFloat
	KindBoolean    = types.KindBoolean
	KindByte       = types.KindByte
	KindBytes      = types.KindBytes
	KindURI        = types.KindURI
)

// PrimitiveURI is the namespace of the primitive types.
const PrimitiveURI = types.SDOURI

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return types.NewCatalog()
}

// New creates an instance of a structural type.
func New(t *Type) (*DataObject, error) {
	return object.New(t)
}

// Primitive returns the shared primitive type of kind k.
func Primitive(k Kind) *Type {
	return types.Primitive(k)
}

// InternalToExternal returns the XSD name for a primitive kind. Unmapped
// kinds resolve to "string".
func InternalToExternal(k Kind) string {
	return typenames.KindToXSD(k)
}

// ExternalToInternal returns the primitive kind for an XSD type name.
// Empty or unknown names resolve to KindString.
func ExternalToInternal(name string) Kind {
	return typenames.KindFromXSD(name)
}

// ReplaceAll replaces every non-overlapping occurrence of from in host,
// scanning left to right. An empty from returns host unchanged.
func ReplaceAll(host, from, to string) string {
	return marker.ReplaceAll(host, from, to)
}

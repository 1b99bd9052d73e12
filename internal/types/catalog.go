package types

import (
	"slices"

	sdoerrors "github.com/jacoelho/sdo/errors"
)

type typeKey struct {
	uri  string
	name string
}

// Catalog is an ordered set of user-defined types.
type Catalog struct {
	byKey   map[typeKey]*Type
	ordered []*Type
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byKey: make(map[typeKey]*Type)}
}

// Define adds a new type to the catalog.
func (c *Catalog) Define(uri, name string, opts TypeOptions) (*Type, error) {
	const op = "define type"
	if name == "" {
		return nil, sdoerrors.New(sdoerrors.ErrInvalidArgument, op, "", "empty type name")
	}
	key := typeKey{uri: uri, name: name}
	if _, exists := c.byKey[key]; exists || (uri == SDOURI && PrimitiveByName(name) != nil) {
		return nil, sdoerrors.Newf(sdoerrors.ErrDuplicateName, op, "", "type %s#%s already defined", uri, name)
	}
	t := NewType(uri, name, opts)
	c.byKey[key] = t
	c.ordered = append(c.ordered, t)
	return t, nil
}

// MustDefine adds a type and panics on error.
func (c *Catalog) MustDefine(uri, name string, opts TypeOptions) *Type {
	t, err := c.Define(uri, name, opts)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the type with identity (uri, name). Primitive types resolve
// under SDOURI.
func (c *Catalog) Lookup(uri, name string) *Type {
	if t, ok := c.byKey[typeKey{uri: uri, name: name}]; ok {
		return t
	}
	if uri == SDOURI {
		return PrimitiveByName(name)
	}
	return nil
}

// Types returns user-defined types in definition order.
func (c *Catalog) Types() []*Type {
	return slices.Clone(c.ordered)
}

// Len returns the number of user-defined types.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

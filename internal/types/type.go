package types

import (
	"slices"

	sdoerrors "github.com/jacoelho/sdo/errors"
)

// Type describes a kind of DataObject or a primitive kind.
type Type struct {
	byName map[string]*Property
	URI    string
	Name   string
	props  []*Property
	// Kind is the primitive kind of a data type, KindDataObject otherwise.
	Kind      Kind
	DataType  bool
	Open      bool
	Sequenced bool
}

// TypeOptions configures a new Type.
type TypeOptions struct {
	Kind      Kind
	DataType  bool
	Open      bool
	Sequenced bool
}

// NewType builds a Type outside any catalog.
func NewType(uri, name string, opts TypeOptions) *Type {
	kind := opts.Kind
	switch {
	case !opts.DataType:
		kind = KindDataObject
	case !kind.Valid():
		kind = KindString
	}
	return &Type{
		URI:       uri,
		Name:      name,
		DataType:  opts.DataType,
		Open:      opts.Open,
		Sequenced: opts.Sequenced,
		Kind:      kind,
		byName:    make(map[string]*Property),
	}
}

// QName returns the type identity in uri#name form.
func (t *Type) QName() string {
	if t == nil {
		return "#"
	}
	return t.URI + "#" + t.Name
}

// Is reports whether t has the given identity.
func (t *Type) Is(uri, name string) bool {
	return t != nil && t.URI == uri && t.Name == name
}

// Properties returns the declared properties in declaration order.
func (t *Type) Properties() []*Property {
	if t == nil {
		return nil
	}
	return slices.Clone(t.props)
}

// Property returns the declared property with name, or nil.
func (t *Type) Property(name string) *Property {
	if t == nil {
		return nil
	}
	return t.byName[name]
}

// AddProperty declares a property on t.
func (t *Type) AddProperty(name string, valueType *Type, many bool) (*Property, error) {
	const op = "add property"
	if t == nil {
		return nil, sdoerrors.New(sdoerrors.ErrInvalidArgument, op, name, "nil owner type")
	}
	if t.DataType {
		return nil, sdoerrors.Newf(sdoerrors.ErrTypeMismatch, op, name, "data type %s cannot declare properties", t.QName())
	}
	if t.URI == SDOURI && PrimitiveByName(t.Name) == t {
		return nil, sdoerrors.Newf(sdoerrors.ErrInvalidArgument, op, name, "shared primitive %s cannot declare properties", t.QName())
	}
	if name == "" {
		return nil, sdoerrors.New(sdoerrors.ErrInvalidArgument, op, name, "empty property name")
	}
	if valueType == nil {
		return nil, sdoerrors.New(sdoerrors.ErrInvalidArgument, op, name, "nil value type")
	}
	if _, exists := t.byName[name]; exists {
		return nil, sdoerrors.Newf(sdoerrors.ErrDuplicateName, op, name, "already declared on %s", t.QName())
	}
	p := &Property{Name: name, Type: valueType, Many: many, owner: t}
	t.props = append(t.props, p)
	t.byName[name] = p
	return p, nil
}

// MustAddProperty declares a property and panics on error.
func (t *Type) MustAddProperty(name string, valueType *Type, many bool) *Property {
	p, err := t.AddProperty(name, valueType, many)
	if err != nil {
		panic(err)
	}
	return p
}

// Property describes one named slot of a Type.
type Property struct {
	// Type is the value type. It is nil for an open property whose type is
	// not known yet.
	Type  *Type
	owner *Type
	Name  string
	Many  bool
}

// NewOpenProperty builds an ad hoc property that belongs to no Type.
func NewOpenProperty(name string, valueType *Type, many bool) *Property {
	return &Property{Name: name, Type: valueType, Many: many}
}

// Owner returns the declaring type, or nil for an ad hoc property.
func (p *Property) Owner() *Type {
	if p == nil {
		return nil
	}
	return p.owner
}

// IsDataType reports whether the property holds primitive values.
func (p *Property) IsDataType() bool {
	return p != nil && p.Type != nil && p.Type.DataType
}

// IsStructural reports whether the property holds DataObjects.
func (p *Property) IsStructural() bool {
	return p != nil && p.Type != nil && !p.Type.DataType
}

// Kind returns the primitive kind of the value type.
func (p *Property) Kind() Kind {
	if p == nil || p.Type == nil {
		return KindUnspecified
	}
	return p.Type.Kind
}

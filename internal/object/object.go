package object

import (
	sdoerrors "github.com/jacoelho/sdo/errors"
	"github.com/jacoelho/sdo/internal/types"
)

// DataObject is a typed node of the object graph. Its properties are realised
// as slots; structural slots own their children unless flagged as references.
//
// A DataObject is not safe for concurrent mutation.
type DataObject struct {
	typ        *types.Type
	slots      map[*types.Property]*slot
	openByName map[string]*types.Property
	container  *DataObject
	containing *types.Property
	open       []*types.Property
}

// New creates an instance of a structural type.
func New(t *types.Type) (*DataObject, error) {
	const op = "new data object"
	if t == nil {
		return nil, sdoerrors.New(sdoerrors.ErrInvalidArgument, op, "", "nil type")
	}
	if t.DataType {
		return nil, sdoerrors.Newf(sdoerrors.ErrTypeMismatch, op, "", "%s is a data type", t.QName())
	}
	return &DataObject{
		typ:   t,
		slots: make(map[*types.Property]*slot),
	}, nil
}

// MustNew creates an instance and panics on error.
func MustNew(t *types.Type) *DataObject {
	d, err := New(t)
	if err != nil {
		panic(err)
	}
	return d
}

// Type returns the type the object is bound to.
func (d *DataObject) Type() *types.Type {
	return d.typ
}

// InstanceProperties returns the declared properties followed by ad hoc
// properties in the order they were added.
func (d *DataObject) InstanceProperties() []*types.Property {
	declared := d.typ.Properties()
	if len(d.open) == 0 {
		return declared
	}
	return append(declared, d.open...)
}

// Property returns the declared or ad hoc property with name, or nil.
func (d *DataObject) Property(name string) *types.Property {
	if p := d.typ.Property(name); p != nil {
		return p
	}
	return d.openByName[name]
}

// DefineOpenProperty adds an ad hoc property to an instance of an open type.
// A nil valueType leaves the property pending until its first assignment
// binds a type.
func (d *DataObject) DefineOpenProperty(name string, valueType *types.Type, many bool) (*types.Property, error) {
	const op = "define open property"
	if !d.typ.Open {
		return nil, sdoerrors.Newf(sdoerrors.ErrNotOpenType, op, name, "%s is not open", d.typ.QName())
	}
	if name == "" {
		return nil, sdoerrors.New(sdoerrors.ErrInvalidArgument, op, name, "empty property name")
	}
	if d.Property(name) != nil {
		return nil, sdoerrors.Newf(sdoerrors.ErrDuplicateName, op, name, "already present on %s", d.typ.QName())
	}
	p := types.NewOpenProperty(name, valueType, many)
	if d.openByName == nil {
		d.openByName = make(map[string]*types.Property)
	}
	d.open = append(d.open, p)
	d.openByName[name] = p
	d.slots[p] = &slot{pending: valueType == nil}
	return p, nil
}

func (d *DataObject) owns(p *types.Property) bool {
	if p == nil {
		return false
	}
	if p.Owner() == d.typ {
		return true
	}
	return p.Owner() == nil && d.openByName[p.Name] == p
}

func (d *DataObject) slotFor(op string, p *types.Property) (*slot, error) {
	if !d.owns(p) {
		name := ""
		if p != nil {
			name = p.Name
		}
		return nil, sdoerrors.Newf(sdoerrors.ErrUnknownProperty, op, name, "not a property of %s", d.typ.QName())
	}
	s, ok := d.slots[p]
	if !ok {
		s = &slot{}
		d.slots[p] = s
	}
	return s, nil
}

func (d *DataObject) peek(p *types.Property) *slot {
	if !d.owns(p) {
		return nil
	}
	return d.slots[p]
}

// IsSet reports whether the property has been assigned. A many-valued
// property is set while its list is not empty.
func (d *DataObject) IsSet(p *types.Property) bool {
	s := d.peek(p)
	return s != nil && s.present
}

// IsNull reports whether the property was explicitly set to null.
func (d *DataObject) IsNull(p *types.Property) bool {
	s := d.peek(p)
	return s != nil && s.present && s.null
}

// IsReference reports whether the property holds a non-owning reference.
func (d *DataObject) IsReference(p *types.Property) bool {
	s := d.peek(p)
	return s != nil && s.present && s.idref
}

// IsPending reports whether an ad hoc property still waits for its type.
func (d *DataObject) IsPending(p *types.Property) bool {
	s := d.peek(p)
	return s != nil && s.pending
}

// Unset restores the property to never assigned. Contained children are
// detached.
func (d *DataObject) Unset(p *types.Property) error {
	s, err := d.slotFor("unset", p)
	if err != nil {
		return err
	}
	d.releaseAll(s)
	s.reset()
	return nil
}

// Payload returns the raw slot content for traversal: a scalar, a
// *DataObject, nil for null, or a []any copy of a many-valued list.
func (d *DataObject) Payload(p *types.Property) (any, error) {
	const op = "payload"
	s, err := d.slotFor(op, p)
	if err != nil {
		return nil, err
	}
	if !s.present {
		return nil, sdoerrors.New(sdoerrors.ErrInvalidState, op, p.Name, "property is not set")
	}
	if p.Many {
		return append([]any(nil), s.items...), nil
	}
	if s.null {
		return nil, nil
	}
	return s.value, nil
}

package object

import (
	"slices"

	sdoerrors "github.com/jacoelho/sdo/errors"
	"github.com/jacoelho/sdo/internal/types"
)

// SetDataObject contains child in a single-valued structural property.
// The child is detached from its previous parent and the previous child of
// the slot is detached from d. A nil child sets the property to null.
func (d *DataObject) SetDataObject(p *types.Property, child *DataObject) error {
	const op = "set data object"
	if child == nil {
		return d.SetNull(p)
	}
	s, err := d.slotFor(op, p)
	if err != nil {
		return err
	}
	if p.Many {
		return sdoerrors.New(sdoerrors.ErrTypeMismatch, op, p.Name, "many-valued property, use List")
	}
	if s.contained() == child {
		return nil
	}
	if err := d.checkAdopt(op, s, p, child); err != nil {
		return err
	}
	bindObject(s, p, child)
	child.Detach()
	d.releaseAll(s)
	d.attach(p, child)
	s.value = child
	s.present = true
	s.null = false
	s.idref = false
	return nil
}

// SetReference points a single-valued structural property at target without
// taking ownership of it.
func (d *DataObject) SetReference(p *types.Property, target *DataObject) error {
	const op = "set reference"
	if target == nil {
		return d.SetNull(p)
	}
	s, err := d.slotFor(op, p)
	if err != nil {
		return err
	}
	if p.Many {
		return sdoerrors.New(sdoerrors.ErrTypeMismatch, op, p.Name, "many-valued references are not supported")
	}
	if !s.pending {
		if err := checkValueType(op, p, target); err != nil {
			return err
		}
	}
	bindObject(s, p, target)
	d.releaseAll(s)
	s.value = target
	s.present = true
	s.null = false
	s.idref = true
	return nil
}

// GetDataObject returns the contained or referenced object of a
// single-valued structural property.
func (d *DataObject) GetDataObject(p *types.Property) (*DataObject, error) {
	const op = "get data object"
	v, err := d.Get(p)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	child, ok := v.(*DataObject)
	if !ok {
		return nil, sdoerrors.Newf(sdoerrors.ErrTypeMismatch, op, p.Name, "holds %T", v)
	}
	return child, nil
}

// CreateDataObject creates an instance of the property value type and
// contains it in p, appending when p is many-valued.
func (d *DataObject) CreateDataObject(p *types.Property) (*DataObject, error) {
	const op = "create data object"
	s, err := d.slotFor(op, p)
	if err != nil {
		return nil, err
	}
	if s.pending {
		return nil, sdoerrors.New(sdoerrors.ErrInvalidState, op, p.Name, "property type is not known yet")
	}
	if !p.IsStructural() {
		return nil, sdoerrors.Newf(sdoerrors.ErrTypeMismatch, op, p.Name, "%s is a data type", p.Type.QName())
	}
	child, err := New(p.Type)
	if err != nil {
		return nil, err
	}
	if p.Many {
		l, err := d.List(p)
		if err != nil {
			return nil, err
		}
		if err := l.Append(child); err != nil {
			return nil, err
		}
		return child, nil
	}
	if err := d.SetDataObject(p, child); err != nil {
		return nil, err
	}
	return child, nil
}

// Container returns the object that contains d, or nil for a root.
func (d *DataObject) Container() *DataObject {
	return d.container
}

// ContainmentProperty returns the property of the container holding d.
func (d *DataObject) ContainmentProperty() *types.Property {
	return d.containing
}

// Detach removes d from its container. A single-valued containing slot
// becomes unset; a many-valued one drops the element.
func (d *DataObject) Detach() {
	parent, p := d.container, d.containing
	if parent == nil {
		return
	}
	if s := parent.slots[p]; s != nil {
		if p.Many {
			if i := slices.IndexFunc(s.items, func(v any) bool { return v == any(d) }); i >= 0 {
				s.items = slices.Delete(s.items, i, i+1)
			}
			s.present = len(s.items) > 0
		} else if s.contained() == d {
			s.reset()
		}
	}
	d.container = nil
	d.containing = nil
}

// Delete detaches d and clears its contained subtree.
func (d *DataObject) Delete() {
	d.Detach()
	d.clear()
}

func (d *DataObject) clear() {
	for _, s := range d.slots {
		for _, child := range containedIn(s) {
			child.container = nil
			child.containing = nil
			child.clear()
		}
		s.reset()
	}
}

func (d *DataObject) attach(p *types.Property, child *DataObject) {
	child.container = d
	child.containing = p
}

// releaseAll unlinks the children owned by s from d.
func (d *DataObject) releaseAll(s *slot) {
	for _, child := range containedIn(s) {
		if child.container == d {
			child.container = nil
			child.containing = nil
		}
	}
}

func containedIn(s *slot) []*DataObject {
	if child := s.contained(); child != nil {
		return []*DataObject{child}
	}
	var out []*DataObject
	for _, v := range s.items {
		if child, ok := v.(*DataObject); ok {
			out = append(out, child)
		}
	}
	return out
}

// checkAdopt validates that child may be contained by d through p.
func (d *DataObject) checkAdopt(op string, s *slot, p *types.Property, child *DataObject) error {
	if !s.pending {
		if err := checkValueType(op, p, child); err != nil {
			return err
		}
	}
	for a := d; a != nil; a = a.container {
		if a == child {
			return sdoerrors.Newf(sdoerrors.ErrContainmentCycle, op, p.Name, "%s would contain its own ancestor", d.typ.QName())
		}
	}
	return nil
}

func checkValueType(op string, p *types.Property, child *DataObject) error {
	if !p.IsStructural() {
		return sdoerrors.Newf(sdoerrors.ErrTypeMismatch, op, p.Name, "%s is a data type", p.Type.QName())
	}
	if p.Type.Is(types.SDOURI, types.KindDataObject.String()) || p.Type == child.typ {
		return nil
	}
	return sdoerrors.Newf(sdoerrors.ErrTypeMismatch, op, p.Name, "want %s, got %s", p.Type.QName(), child.typ.QName())
}

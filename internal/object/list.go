package object

import (
	"slices"

	sdoerrors "github.com/jacoelho/sdo/errors"
	"github.com/jacoelho/sdo/internal/types"
)

// List is the ordered value sequence of a many-valued property.
// Elements are addressed by zero-based position in insertion order.
type List struct {
	owner *DataObject
	prop  *types.Property
}

// List returns the sequence view of a many-valued property.
func (d *DataObject) List(p *types.Property) (*List, error) {
	const op = "list"
	if _, err := d.slotFor(op, p); err != nil {
		return nil, err
	}
	if !p.Many {
		return nil, sdoerrors.New(sdoerrors.ErrTypeMismatch, op, p.Name, "single-valued property")
	}
	return &List{owner: d, prop: p}, nil
}

// Property returns the many-valued property behind the list.
func (l *List) Property() *types.Property {
	return l.prop
}

func (l *List) slot() *slot {
	return l.owner.slots[l.prop]
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.slot().items)
}

// Values returns a copy of the elements.
func (l *List) Values() []any {
	return slices.Clone(l.slot().items)
}

// Get returns the element at i.
func (l *List) Get(i int) (any, error) {
	s := l.slot()
	if err := l.checkIndex("list get", s, i); err != nil {
		return nil, err
	}
	return s.items[i], nil
}

// DataObject returns the element at i as a data object.
func (l *List) DataObject(i int) (*DataObject, error) {
	v, err := l.Get(i)
	if err != nil {
		return nil, err
	}
	child, ok := v.(*DataObject)
	if !ok {
		return nil, sdoerrors.Newf(sdoerrors.ErrTypeMismatch, "list data object", l.prop.Name, "element %d holds %T", i, v)
	}
	return child, nil
}

// Append adds v at the end of the list and marks the property set.
// A *DataObject element is detached from its previous parent first.
func (l *List) Append(v any) error {
	const op = "list append"
	s := l.slot()
	value, err := l.prepare(op, s, v)
	if err != nil {
		return err
	}
	if child, ok := value.(*DataObject); ok {
		child.Detach()
		l.owner.attach(l.prop, child)
	}
	s.items = append(s.items, value)
	s.present = true
	return nil
}

// Set replaces the element at i. A replaced data object is detached.
func (l *List) Set(i int, v any) error {
	const op = "list set"
	s := l.slot()
	if err := l.checkIndex(op, s, i); err != nil {
		return err
	}
	value, err := l.prepare(op, s, v)
	if err != nil {
		return err
	}
	old := s.items[i]
	if child, ok := value.(*DataObject); ok {
		if old == value {
			return nil
		}
		if child.container == l.owner && child.containing == l.prop {
			j := slices.IndexFunc(s.items, func(e any) bool { return e == value })
			s.items = slices.Delete(s.items, j, j+1)
			if j < i {
				i--
			}
		} else {
			child.Detach()
		}
		l.owner.attach(l.prop, child)
	}
	if prev, ok := old.(*DataObject); ok && prev.container == l.owner {
		prev.container = nil
		prev.containing = nil
	}
	s.items[i] = value
	return nil
}

// Remove deletes and returns the element at i. A removed data object is
// detached. Removing the last element leaves the property unset.
func (l *List) Remove(i int) (any, error) {
	const op = "list remove"
	s := l.slot()
	if err := l.checkIndex(op, s, i); err != nil {
		return nil, err
	}
	v := s.items[i]
	s.items = slices.Delete(s.items, i, i+1)
	s.present = len(s.items) > 0
	if child, ok := v.(*DataObject); ok && child.container == l.owner {
		child.container = nil
		child.containing = nil
	}
	return v, nil
}

func (l *List) checkIndex(op string, s *slot, i int) error {
	if i < 0 || i >= len(s.items) {
		return sdoerrors.Newf(sdoerrors.ErrIndexOutOfRange, op, l.prop.Name, "index %d, size %d", i, len(s.items))
	}
	return nil
}

// prepare validates and coerces a list element.
func (l *List) prepare(op string, s *slot, v any) (any, error) {
	if v == nil {
		return nil, sdoerrors.New(sdoerrors.ErrInvalidArgument, op, l.prop.Name, "nil element")
	}
	if child, ok := v.(*DataObject); ok {
		if child == nil {
			return nil, sdoerrors.New(sdoerrors.ErrInvalidArgument, op, l.prop.Name, "nil element")
		}
		if err := l.owner.checkAdopt(op, s, l.prop, child); err != nil {
			return nil, err
		}
		bindObject(s, l.prop, child)
		return child, nil
	}
	if err := bindScalar(op, s, l.prop, v); err != nil {
		return nil, err
	}
	if l.prop.IsStructural() {
		return nil, sdoerrors.Newf(sdoerrors.ErrTypeMismatch, op, l.prop.Name, "%T is not a data object", v)
	}
	return coerce(op, l.prop, v)
}

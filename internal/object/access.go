package object

import (
	"github.com/spf13/cast"

	sdoerrors "github.com/jacoelho/sdo/errors"
	"github.com/jacoelho/sdo/internal/scalar"
	"github.com/jacoelho/sdo/internal/types"
)

// Set assigns a single-valued property. Scalars are coerced to the property
// kind; a *DataObject is contained; nil sets the property to null.
func (d *DataObject) Set(p *types.Property, v any) error {
	const op = "set"
	if child, ok := v.(*DataObject); ok {
		return d.SetDataObject(p, child)
	}
	if v == nil {
		return d.SetNull(p)
	}
	s, err := d.slotFor(op, p)
	if err != nil {
		return err
	}
	if p.Many {
		return sdoerrors.New(sdoerrors.ErrTypeMismatch, op, p.Name, "many-valued property, use List")
	}
	if err := bindScalar(op, s, p, v); err != nil {
		return err
	}
	if p.IsStructural() {
		return sdoerrors.Newf(sdoerrors.ErrTypeMismatch, op, p.Name, "%T is not a data object", v)
	}
	value, err := coerce(op, p, v)
	if err != nil {
		return err
	}
	s.value = value
	s.present = true
	s.null = false
	s.idref = false
	return nil
}

// SetNull assigns null to a single-valued property, detaching a contained child.
func (d *DataObject) SetNull(p *types.Property) error {
	const op = "set null"
	s, err := d.slotFor(op, p)
	if err != nil {
		return err
	}
	if p.Many {
		return sdoerrors.New(sdoerrors.ErrTypeMismatch, op, p.Name, "many-valued property cannot be null")
	}
	d.releaseAll(s)
	s.value = nil
	s.present = true
	s.null = true
	s.idref = false
	return nil
}

// Get returns the value of a single-valued property. Reading a property that
// is not set fails with ErrInvalidState; a null property returns nil.
func (d *DataObject) Get(p *types.Property) (any, error) {
	const op = "get"
	s, err := d.slotFor(op, p)
	if err != nil {
		return nil, err
	}
	if p.Many {
		return nil, sdoerrors.New(sdoerrors.ErrTypeMismatch, op, p.Name, "many-valued property, use List")
	}
	if !s.present {
		return nil, sdoerrors.New(sdoerrors.ErrInvalidState, op, p.Name, "property is not set")
	}
	if s.null {
		return nil, nil
	}
	return s.value, nil
}

// GetString returns the property value converted to a string.
func (d *DataObject) GetString(p *types.Property) (string, error) {
	v, err := d.Get(p)
	if err != nil || v == nil {
		return "", err
	}
	if b, ok := v.([]byte); ok {
		return string(b), nil
	}
	out, err := cast.ToStringE(v)
	if err != nil {
		return "", sdoerrors.Wrap(sdoerrors.ErrTypeMismatch, "get string", err)
	}
	return out, nil
}

// GetInt64 returns the property value converted to an int64.
func (d *DataObject) GetInt64(p *types.Property) (int64, error) {
	v, err := d.Get(p)
	if err != nil || v == nil {
		return 0, err
	}
	out, err := cast.ToInt64E(v)
	if err != nil {
		return 0, sdoerrors.Wrap(sdoerrors.ErrTypeMismatch, "get int64", err)
	}
	return out, nil
}

// GetFloat64 returns the property value converted to a float64.
func (d *DataObject) GetFloat64(p *types.Property) (float64, error) {
	v, err := d.Get(p)
	if err != nil || v == nil {
		return 0, err
	}
	out, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, sdoerrors.Wrap(sdoerrors.ErrTypeMismatch, "get float64", err)
	}
	return out, nil
}

// GetBool returns the property value converted to a bool.
func (d *DataObject) GetBool(p *types.Property) (bool, error) {
	v, err := d.Get(p)
	if err != nil || v == nil {
		return false, err
	}
	out, err := cast.ToBoolE(v)
	if err != nil {
		return false, sdoerrors.Wrap(sdoerrors.ErrTypeMismatch, "get bool", err)
	}
	return out, nil
}

// bindScalar resolves the type of a pending ad hoc property from a scalar value.
func bindScalar(op string, s *slot, p *types.Property, v any) error {
	if !s.pending {
		return nil
	}
	kind := scalar.KindOf(v)
	if !kind.Valid() {
		return sdoerrors.Newf(sdoerrors.ErrTypeMismatch, op, p.Name, "cannot infer a primitive kind from %T", v)
	}
	p.Type = types.Primitive(kind)
	s.pending = false
	return nil
}

// bindObject resolves the type of a pending ad hoc property from a child.
func bindObject(s *slot, p *types.Property, child *DataObject) {
	if !s.pending {
		return
	}
	p.Type = child.typ
	s.pending = false
}

func coerce(op string, p *types.Property, v any) (any, error) {
	value, err := scalar.Coerce(p.Kind(), v)
	if err != nil {
		e := sdoerrors.Wrap(sdoerrors.ErrTypeMismatch, op, err)
		e.Property = p.Name
		return nil, e
	}
	return value, nil
}

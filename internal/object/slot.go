package object

// slot holds the value of one property on one object.
// present=false means never assigned, which differs from null.
type slot struct {
	// value is a scalar or *DataObject for single-valued properties.
	value any
	// items holds scalars or *DataObject for many-valued properties.
	items   []any
	present bool
	null    bool
	idref   bool
	pending bool
}

func (s *slot) reset() {
	s.value = nil
	s.items = nil
	s.present = false
	s.null = false
	s.idref = false
}

// contained returns the child owned by a single-valued slot, if any.
func (s *slot) contained() *DataObject {
	if s.idref || s.null {
		return nil
	}
	child, _ := s.value.(*DataObject)
	return child
}

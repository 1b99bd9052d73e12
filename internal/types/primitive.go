package types

// SDOURI is the namespace of the primitive types.
const SDOURI = "commonj.sdo"

type primitiveRegistry struct {
	byKind map[Kind]*Type
	byName map[string]*Type
}

var primitives = newPrimitiveRegistry()

func newPrimitiveRegistry() primitiveRegistry {
	kinds := Kinds()
	reg := primitiveRegistry{
		byKind: make(map[Kind]*Type, len(kinds)),
		byName: make(map[string]*Type, len(kinds)),
	}
	for _, k := range kinds {
		var t *Type
		if k == KindDataObject {
			// commonj.sdo#DataObject is the open root of all structural types.
			t = NewType(SDOURI, k.String(), TypeOptions{Open: true})
		} else {
			t = NewType(SDOURI, k.String(), TypeOptions{DataType: true, Kind: k})
		}
		reg.byKind[k] = t
		reg.byName[t.Name] = t
	}
	return reg
}

// Primitive returns the shared primitive type for k, or nil when k is not valid.
func Primitive(k Kind) *Type {
	return primitives.byKind[k]
}

// PrimitiveByName returns the shared primitive type with an SDO kind name.
func PrimitiveByName(name string) *Type {
	return primitives.byName[name]
}

// Primitives returns the primitive types in kind order.
func Primitives() []*Type {
	kinds := Kinds()
	out := make([]*Type, 0, len(kinds))
	for _, k := range kinds {
		out = append(out, primitives.byKind[k])
	}
	return out
}

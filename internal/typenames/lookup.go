package typenames

import (
	"slices"

	"github.com/jacoelho/sdo/internal/types"
)

// DefaultKind is the internal kind every unmapped external name resolves to.
const DefaultKind = types.KindString

// DefaultXSD is the external name every unmapped internal kind resolves to.
const DefaultXSD = XSDString

// KindFromXSD maps an external primitive name to its internal kind.
// Empty or unknown names resolve to DefaultKind.
func KindFromXSD(name string) types.Kind {
	if name == "" {
		return DefaultKind
	}
	if kind, ok := defaultRegistry().toKind[name]; ok {
		return kind
	}
	return DefaultKind
}

// KindToXSD maps an internal kind to its canonical external name.
// KindUnspecified and out-of-range kinds resolve to DefaultXSD.
func KindToXSD(kind types.Kind) string {
	if name, ok := defaultRegistry().toXSD[kind]; ok {
		return name
	}
	return DefaultXSD
}

// FromXSD maps an external primitive name to an internal kind name.
func FromXSD(name string) string {
	return KindFromXSD(name).String()
}

// ToXSD maps an internal kind name to its canonical external name.
// Empty or unknown kind names resolve to DefaultXSD.
func ToXSD(sdoName string) string {
	return KindToXSD(types.ParseKind(sdoName))
}

// Known reports whether name is part of the external vocabulary.
func Known(name string) bool {
	_, ok := defaultRegistry().toKind[name]
	return ok
}

// XSDNames returns the external vocabulary in deterministic order.
func XSDNames() []string {
	return slices.Clone(defaultRegistry().ordered)
}

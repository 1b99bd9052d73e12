package typenames

import (
	"sync"

	"github.com/jacoelho/sdo/internal/types"
)

type registry struct {
	toKind  map[string]types.Kind
	toXSD   map[types.Kind]string
	ordered []string
}

var defaultRegistry = sync.OnceValue(newRegistry)

// xsdToKind is the many-to-one external to internal table, in lookup order.
var xsdToKind = []struct {
	name string
	kind types.Kind
}{
	{XSDID, types.KindString},
	{XSDNCName, types.KindString},
	{XSDString, types.KindString},
	{XSDAnyType, types.KindDataObject},
	{XSDInt, types.KindInteger},
	{XSDInteger, types.KindInteger},
	{XSDNegativeInteger, types.KindInteger},
	{XSDNonNegativeInteger, types.KindInteger},
	{XSDPositiveInteger, types.KindInteger},
	{XSDNonpositiveInteger, types.KindInteger},
	{XSDNonPositiveInteger, types.KindInteger},
	{XSDUnsignedShort, types.KindInteger},
	{XSDUnsignedInt, types.KindInteger},
	{XSDUnsignedLong, types.KindLong},
	{XSDDouble, types.KindDouble},
	{XSDShort, types.KindShort},
	{XSDUnsignedByte, types.KindShort},
	{XSDFloat, types.KindFloat},
	{XSDBoolean, types.KindBoolean},
	{XSDByte, types.KindByte},
	{XSDBase64Binary, types.KindBytes},
	{XSDHexBinary, types.KindBytes},
	{XSDAnyURI, types.KindURI},
	{XSDQName, types.KindURI},
}

// kindToXSD picks the canonical external name for each kind.
var kindToXSD = map[types.Kind]string{
	types.KindString:     XSDString,
	types.KindDataObject: XSDAnyType,
	types.KindInteger:    XSDInteger,
	types.KindLong:       XSDUnsignedLong,
	types.KindDouble:     XSDDouble,
	types.KindShort:      XSDShort,
	types.KindFloat:      XSDFloat,
	types.KindBoolean:    XSDBoolean,
	types.KindByte:       XSDByte,
	types.KindBytes:      XSDBase64Binary,
	types.KindURI:        XSDAnyURI,
}

func newRegistry() *registry {
	reg := &registry{
		toKind:  make(map[string]types.Kind, len(xsdToKind)),
		toXSD:   make(map[types.Kind]string, len(kindToXSD)),
		ordered: make([]string, 0, len(xsdToKind)),
	}
	for _, item := range xsdToKind {
		if _, exists := reg.toKind[item.name]; exists {
			continue
		}
		reg.toKind[item.name] = item.kind
		reg.ordered = append(reg.ordered, item.name)
	}
	for kind, name := range kindToXSD {
		reg.toXSD[kind] = name
	}
	return reg
}

package types

// Kind is a primitive SDO kind.
type Kind uint8

// The zero Kind is unspecified; the name translator maps it to the defaults.
const (
	KindUnspecified Kind = iota
	KindString
	KindDataObject
	KindInteger
	KindLong
	KindDouble
	KindShort
	KindFloat
	KindBoolean
	KindByte
	KindBytes
	KindURI
)

var kindNames = [...]string{
	KindUnspecified: "",
	KindString:      "String",
	KindDataObject:  "DataObject",
	KindInteger:     "Integer",
	KindLong:        "Long",
	KindDouble:      "Double",
	KindShort:       "Short",
	KindFloat:       "Float",
	KindBoolean:     "Boolean",
	KindByte:        "Byte",
	KindBytes:       "Bytes",
	KindURI:         "URI",
}

// String returns the SDO name of the kind, or "" when unspecified.
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return ""
	}
	return kindNames[k]
}

// Valid reports whether k is one of the eleven primitive kinds.
func (k Kind) Valid() bool {
	return k > KindUnspecified && int(k) < len(kindNames)
}

// ParseKind resolves an SDO kind name. Unknown names return KindUnspecified.
func ParseKind(name string) Kind {
	if name == "" {
		return KindUnspecified
	}
	for i, n := range kindNames {
		if n == name {
			return Kind(i)
		}
	}
	return KindUnspecified
}

// Kinds returns all primitive kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kindNames)-1)
	for k := KindString; int(k) < len(kindNames); k++ {
		out = append(out, k)
	}
	return out
}

package scalar

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/jacoelho/sdo/internal/types"
)

// Coerce converts v to the Go representation of kind:
//
//	String, URI  string
//	Integer      int32
//	Long         int64
//	Short        int16
//	Byte         int8
//	Double       float64
//	Float        float32
//	Boolean      bool
//	Bytes        []byte
func Coerce(kind types.Kind, v any) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("coerce %s: nil value", kind)
	}
	var (
		out any
		err error
	)
	switch kind {
	case types.KindString, types.KindURI:
		out, err = cast.ToStringE(v)
	case types.KindInteger:
		var n int64
		n, err = toInt(v, 32)
		out = int32(n)
	case types.KindLong:
		out, err = toInt(v, 64)
	case types.KindShort:
		var n int64
		n, err = toInt(v, 16)
		out = int16(n)
	case types.KindByte:
		var n int64
		n, err = toInt(v, 8)
		out = int8(n)
	case types.KindDouble:
		out, err = cast.ToFloat64E(v)
	case types.KindFloat:
		out, err = cast.ToFloat32E(v)
	case types.KindBoolean:
		out, err = cast.ToBoolE(v)
	case types.KindBytes:
		out, err = toBytes(v)
	default:
		return nil, fmt.Errorf("coerce %T: %q is not a scalar kind", v, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("coerce %s: %w", kind, err)
	}
	return out, nil
}

// toInt converts v to a signed integer that fits in bits. Strings are parsed
// as decimal, so leading zeros do not select another base.
func toInt(v any, bits int) (int64, error) {
	switch n := v.(type) {
	case string:
		return strconv.ParseInt(strings.TrimSpace(n), 10, bits)
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", n)
		}
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", n)
		}
	case float64:
		if math.IsNaN(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return 0, fmt.Errorf("%v overflows int64", n)
		}
	case float32:
		if f := float64(n); math.IsNaN(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("%v overflows int64", n)
		}
	}
	i, err := cast.ToInt64E(v)
	if err != nil {
		return 0, err
	}
	lo, hi := int64(-1)<<(bits-1), int64(1)<<(bits-1)-1
	if bits == 64 {
		lo, hi = math.MinInt64, math.MaxInt64
	}
	if i < lo || i > hi {
		return 0, fmt.Errorf("%d out of range [%d, %d]", i, lo, hi)
	}
	return i, nil
}

func toBytes(v any) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return append([]byte(nil), b...), nil
	case string:
		return []byte(b), nil
	default:
		return nil, fmt.Errorf("unable to cast %#v of type %T to []byte", v, v)
	}
}

// KindOf infers the primitive kind of a Go value.
// It returns KindUnspecified for values with no primitive kind.
func KindOf(v any) types.Kind {
	switch v.(type) {
	case string:
		return types.KindString
	case bool:
		return types.KindBoolean
	case int8:
		return types.KindByte
	case int16, uint8:
		return types.KindShort
	case int32, uint16:
		return types.KindInteger
	case int, int64, uint32, uint, uint64:
		return types.KindLong
	case float32:
		return types.KindFloat
	case float64:
		return types.KindDouble
	case []byte:
		return types.KindBytes
	default:
		return types.KindUnspecified
	}
}

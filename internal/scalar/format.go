package scalar

import (
	"fmt"

	"github.com/spf13/cast"

	"github.com/jacoelho/sdo/internal/types"
)

// Formatter converts a primitive value to display text.
type Formatter interface {
	Format(kind types.Kind, v any) (string, error)
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(kind types.Kind, v any) (string, error)

// Format calls f.
func (f FormatterFunc) Format(kind types.Kind, v any) (string, error) {
	return f(kind, v)
}

// Text is the default Formatter. Numbers use the shortest representation
// that round-trips, bytes are written verbatim, and nil renders as "".
type Text struct{}

// Format returns the text form of v.
func (Text) Format(kind types.Kind, v any) (string, error) {
	if v == nil {
		return "", nil
	}
	if kind == types.KindBytes {
		if b, ok := v.([]byte); ok {
			return string(b), nil
		}
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("format %s: %w", kind, err)
	}
	return s, nil
}

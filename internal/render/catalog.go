package render

import (
	"fmt"

	"github.com/jacoelho/sdo/internal/types"
)

// Catalog renders each type in order followed by its declared properties.
func Catalog(sink Sink, catalog []*types.Type) error {
	for _, t := range catalog {
		if t == nil {
			continue
		}
		line := fmt.Sprintf("Type: %s isOpen: %t isSequenced: %t", t.QName(), t.Open, t.Sequenced)
		if err := sink.Line(0, line); err != nil {
			return err
		}
		for _, p := range t.Properties() {
			line := fmt.Sprintf("Property: %s type: %s isMany: %t", p.Name, typeName(p.Type), p.Many)
			if err := sink.Line(1, line); err != nil {
				return err
			}
		}
	}
	return nil
}

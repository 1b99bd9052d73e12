package catalogfile

import (
	"fmt"
	"strings"

	sdoerrors "github.com/jacoelho/sdo/errors"
	"github.com/jacoelho/sdo/internal/typenames"
	"github.com/jacoelho/sdo/internal/types"
)

const xsdPrefix = "xsd:"

// buildCatalog defines every type before adding properties so property types
// may refer forward.
func buildCatalog(decls []typeDecl) (*types.Catalog, error) {
	catalog := types.NewCatalog()
	defined := make([]*types.Type, len(decls))
	for i, d := range decls {
		opts := types.TypeOptions{Open: d.Open, Sequenced: d.Sequenced}
		if d.Kind != "" {
			kind := types.ParseKind(d.Kind)
			if !kind.Valid() || kind == types.KindDataObject {
				return nil, sdoerrors.Newf(sdoerrors.ErrInvalidArgument, "decode type", "", "type %s#%s: unknown kind %q", d.URI, d.Name, d.Kind)
			}
			opts.DataType = true
			opts.Kind = kind
		}
		t, err := catalog.Define(d.URI, d.Name, opts)
		if err != nil {
			return nil, fmt.Errorf("types[%d]: %w", i, err)
		}
		defined[i] = t
	}
	for i, d := range decls {
		t := defined[i]
		for j, pd := range d.Properties {
			vt, err := resolveType(catalog, t.URI, pd.Type)
			if err != nil {
				return nil, fmt.Errorf("types[%d].properties[%d]: %w", i, j, err)
			}
			if _, err := t.AddProperty(pd.Name, vt, pd.Many); err != nil {
				return nil, fmt.Errorf("types[%d].properties[%d]: %w", i, j, err)
			}
		}
	}
	return catalog, nil
}

// resolveType resolves a type reference. Accepted forms are "uri#name",
// "xsd:name" for the XSD primitive vocabulary, a type name in scope, or an
// SDO primitive name such as "String".
func resolveType(catalog *types.Catalog, scope, ref string) (*types.Type, error) {
	const op = "resolve type"
	if ref == "" {
		return nil, sdoerrors.New(sdoerrors.ErrInvalidArgument, op, "", "empty type reference")
	}
	if name, ok := strings.CutPrefix(ref, xsdPrefix); ok {
		if !typenames.Known(name) {
			return nil, sdoerrors.Newf(sdoerrors.ErrInvalidArgument, op, "", "unknown XSD type %q", name)
		}
		return types.Primitive(typenames.KindFromXSD(name)), nil
	}
	if i := strings.LastIndexByte(ref, '#'); i >= 0 {
		if t := catalog.Lookup(ref[:i], ref[i+1:]); t != nil {
			return t, nil
		}
		return nil, sdoerrors.Newf(sdoerrors.ErrInvalidArgument, op, "", "unknown type %q", ref)
	}
	if t := catalog.Lookup(scope, ref); t != nil {
		return t, nil
	}
	if t := types.PrimitiveByName(ref); t != nil {
		return t, nil
	}
	return nil, sdoerrors.Newf(sdoerrors.ErrInvalidArgument, op, "", "unknown type %q", ref)
}

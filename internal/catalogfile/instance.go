package catalogfile

import (
	"fmt"
	"maps"
	"slices"

	sdoerrors "github.com/jacoelho/sdo/errors"
	"github.com/jacoelho/sdo/internal/object"
	"github.com/jacoelho/sdo/internal/types"
)

const (
	keyType       = "type"
	keyID         = "id"
	keyProperties = "properties"
	keyRef        = "ref"
	keyNull       = "null"
)

type instanceBuilder struct {
	catalog *types.Catalog
	ids     map[string]*object.DataObject
	refs    []pendingRef
}

// pendingRef is resolved once every id in the document is known.
type pendingRef struct {
	owner *object.DataObject
	prop  *types.Property
	id    string
	path  string
}

func buildInstance(catalog *types.Catalog, table map[string]any) (*object.DataObject, error) {
	const path = "object"
	b := &instanceBuilder{
		catalog: catalog,
		ids:     make(map[string]*object.DataObject),
	}
	ref, _ := table[keyType].(string)
	if ref == "" {
		return nil, fmt.Errorf("%s: %w", path, sdoerrors.New(sdoerrors.ErrInvalidArgument, "decode object", "", "missing type"))
	}
	t, err := resolveType(catalog, "", ref)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	root, err := b.object(path, t, table)
	if err != nil {
		return nil, err
	}
	for _, r := range b.refs {
		target, ok := b.ids[r.id]
		if !ok {
			return nil, fmt.Errorf("%s: %w", r.path, sdoerrors.Newf(sdoerrors.ErrInvalidArgument, "decode object", r.prop.Name, "unknown id %q", r.id))
		}
		if err := r.owner.SetReference(r.prop, target); err != nil {
			return nil, fmt.Errorf("%s: %w", r.path, err)
		}
	}
	return root, nil
}

func (b *instanceBuilder) object(path string, t *types.Type, table map[string]any) (*object.DataObject, error) {
	for key := range table {
		if key != keyType && key != keyID && key != keyProperties {
			return nil, fmt.Errorf("%s: unknown key %q", path, key)
		}
	}
	d, err := object.New(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if raw, ok := table[keyID]; ok {
		id, _ := raw.(string)
		if id == "" {
			return nil, fmt.Errorf("%s.id: expected a non-empty string", path)
		}
		if _, dup := b.ids[id]; dup {
			return nil, fmt.Errorf("%s.id: %w", path, sdoerrors.Newf(sdoerrors.ErrDuplicateName, "decode object", "", "id %q already used", id))
		}
		b.ids[id] = d
	}

	values, ok := table[keyProperties].(map[string]any)
	if !ok && table[keyProperties] != nil {
		return nil, fmt.Errorf("%s.properties: expected a table", path)
	}
	for _, p := range t.Properties() {
		v, ok := values[p.Name]
		if !ok {
			continue
		}
		if err := b.assign(path+".properties."+p.Name, d, p, v); err != nil {
			return nil, err
		}
	}
	// TOML tables are unordered, so ad hoc properties are added by name.
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if t.Property(name) != nil {
			continue
		}
		v := values[name]
		propPath := path + ".properties." + name
		p, err := b.openProperty(d, name, v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", propPath, err)
		}
		if err := b.assign(propPath, d, p, v); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// openProperty declares an ad hoc property shaped after its value. Scalars
// and references leave the type pending until assignment binds it.
func (b *instanceBuilder) openProperty(d *object.DataObject, name string, v any) (*types.Property, error) {
	switch val := v.(type) {
	case []any:
		return d.DefineOpenProperty(name, nil, true)
	case map[string]any:
		if _, ok := val[keyRef]; ok {
			return d.DefineOpenProperty(name, nil, false)
		}
		if _, ok := val[keyNull]; ok {
			return d.DefineOpenProperty(name, nil, false)
		}
		ref, _ := val[keyType].(string)
		if ref == "" {
			return d.DefineOpenProperty(name, nil, false)
		}
		t, err := resolveType(b.catalog, d.Type().URI, ref)
		if err != nil {
			return nil, err
		}
		return d.DefineOpenProperty(name, t, false)
	default:
		return d.DefineOpenProperty(name, nil, false)
	}
}

func (b *instanceBuilder) assign(path string, d *object.DataObject, p *types.Property, v any) error {
	switch val := v.(type) {
	case []any:
		if !p.Many {
			return fmt.Errorf("%s: %w", path, sdoerrors.New(sdoerrors.ErrTypeMismatch, "decode object", p.Name, "single-valued property given an array"))
		}
		list, err := d.List(p)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for i, item := range val {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			if table, ok := item.(map[string]any); ok {
				child, err := b.child(itemPath, d, p, table)
				if err != nil {
					return err
				}
				item = child
			}
			if err := list.Append(item); err != nil {
				return fmt.Errorf("%s: %w", itemPath, err)
			}
		}
		return nil
	case map[string]any:
		if p.Many {
			return fmt.Errorf("%s: %w", path, sdoerrors.New(sdoerrors.ErrTypeMismatch, "decode object", p.Name, "many-valued property expects an array"))
		}
		if raw, ok := val[keyRef]; ok {
			id, _ := raw.(string)
			if id == "" || len(val) != 1 {
				return fmt.Errorf("%s: a reference is {ref = \"id\"}", path)
			}
			b.refs = append(b.refs, pendingRef{owner: d, prop: p, id: id, path: path})
			return nil
		}
		if raw, ok := val[keyNull]; ok {
			if null, _ := raw.(bool); !null || len(val) != 1 {
				return fmt.Errorf("%s: a null value is {null = true}", path)
			}
			if err := d.SetNull(p); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		}
		child, err := b.child(path, d, p, val)
		if err != nil {
			return err
		}
		if err := d.SetDataObject(p, child); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	default:
		if p.Many {
			return fmt.Errorf("%s: %w", path, sdoerrors.New(sdoerrors.ErrTypeMismatch, "decode object", p.Name, "many-valued property expects an array"))
		}
		if err := d.Set(p, val); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return nil
	}
}

// child builds a contained object. Its type is the explicit type key, or the
// property value type.
func (b *instanceBuilder) child(path string, parent *object.DataObject, p *types.Property, table map[string]any) (*object.DataObject, error) {
	if _, ok := table[keyRef]; ok {
		return nil, fmt.Errorf("%s: references are only allowed in single-valued properties", path)
	}
	t := p.Type
	if ref, ok := table[keyType].(string); ok {
		resolved, err := resolveType(b.catalog, parent.Type().URI, ref)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		t = resolved
	}
	if t == nil {
		return nil, fmt.Errorf("%s: %w", path, sdoerrors.New(sdoerrors.ErrInvalidArgument, "decode object", p.Name, "ad hoc object needs a type key"))
	}
	return b.object(path, t, table)
}

package render

import (
	"errors"
	"strconv"

	sdoerrors "github.com/jacoelho/sdo/errors"
	"github.com/jacoelho/sdo/internal/graphcycle"
	"github.com/jacoelho/sdo/internal/types"
)

// Node is a data object as seen by the walker. Implementations must be
// comparable; pointer receivers satisfy this.
type Node interface {
	Type() *types.Type
	InstanceProperties() []*types.Property
	IsSet(p *types.Property) bool
	IsNull(p *types.Property) bool
	IsReference(p *types.Property) bool
	// Payload returns a scalar, a Node, nil for null, or []any for a
	// many-valued property.
	Payload(p *types.Property) (any, error)
}

const (
	notSetText = "not set"
	nullText   = "null"
)

// Object renders root depth first, pre-order, into sink.
// On error the lines emitted before the fault remain in the sink.
func Object(sink Sink, root Node, opts Options) error {
	if root == nil {
		return nil
	}
	opts = opts.withDefaults()
	if opts.CyclePolicy == RejectCycles {
		if err := checkCycles(root); err != nil {
			return err
		}
	}
	w := &objectWalker{sink: sink, opts: opts, onPath: make(map[Node]bool)}
	return w.node(root, 0)
}

type objectWalker struct {
	sink   Sink
	onPath map[Node]bool
	opts   Options
	// refs counts the reference edges on the current path.
	refs int
}

func (w *objectWalker) node(n Node, depth int) error {
	if depth > w.opts.MaxDepth {
		return sdoerrors.Newf(sdoerrors.ErrDepthExceeded, "render object", "", "depth %d exceeds %d at %s", depth, w.opts.MaxDepth, n.Type().QName())
	}
	if err := w.sink.Line(depth, "DataObject type: "+n.Type().QName()); err != nil {
		return err
	}
	w.onPath[n] = true
	defer delete(w.onPath, n)

	for _, p := range n.InstanceProperties() {
		if err := w.property(n, p, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (w *objectWalker) property(n Node, p *types.Property, depth int) error {
	if err := w.sink.Line(depth, "Property: "+p.Name); err != nil {
		return err
	}
	if err := w.sink.Line(depth, "Property Type: "+typeName(p.Type)); err != nil {
		return err
	}
	if !n.IsSet(p) {
		return w.value(depth, notSetText)
	}
	payload, err := n.Payload(p)
	if err != nil {
		return err
	}

	if p.Many {
		items, ok := payload.([]any)
		if !ok {
			return malformed(p, "many-valued slot holds %T", payload)
		}
		for i, item := range items {
			if err := w.sink.Line(depth, "Value "+strconv.Itoa(i)); err != nil {
				return err
			}
			if err := w.element(p, item, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	if n.IsNull(p) {
		return w.value(depth, nullText)
	}
	if n.IsReference(p) {
		return w.reference(p, payload, depth)
	}
	return w.element(p, payload, depth)
}

func (w *objectWalker) element(p *types.Property, v any, depth int) error {
	if p.IsDataType() {
		text, err := w.opts.Formatter.Format(p.Type.Kind, v)
		if err != nil {
			return err
		}
		return w.value(depth, text)
	}
	child, ok := v.(Node)
	if !ok {
		return malformed(p, "structural slot holds %T", v)
	}
	if w.onPath[child] {
		// Containment alone forms a tree, so an ancestor reached without a
		// reference edge on the path means the graph is corrupt.
		if w.refs == 0 {
			return malformed(p, "containment cycle at %s", child.Type().QName())
		}
		return w.sink.Line(depth, "Cycle: "+child.Type().QName())
	}
	return w.node(child, depth)
}

func (w *objectWalker) reference(p *types.Property, v any, depth int) error {
	target, ok := v.(Node)
	if !ok {
		return malformed(p, "reference slot holds %T", v)
	}
	switch {
	case w.opts.CyclePolicy == ContainmentOnly:
		return w.sink.Line(depth, "Reference: "+target.Type().QName())
	case w.onPath[target]:
		return w.sink.Line(depth, "Cycle: "+target.Type().QName())
	default:
		w.refs++
		defer func() { w.refs-- }()
		return w.node(target, depth)
	}
}

func (w *objectWalker) value(depth int, text string) error {
	return w.sink.Line(depth, "Property Value: "+text)
}

func typeName(t *types.Type) string {
	if t == nil {
		return "unknown"
	}
	return t.QName()
}

func malformed(p *types.Property, format string, args ...any) error {
	return sdoerrors.Newf(sdoerrors.ErrMalformedGraph, "render object", p.Name, format, args...)
}

// checkCycles reports a cycle through containment or reference edges.
func checkCycles(root Node) error {
	err := graphcycle.Detect(graphcycle.Config[Node]{
		Starts: []Node{root},
		Next:   structuralEdges,
	})
	if err == nil {
		return nil
	}
	var cycle graphcycle.CycleError[Node]
	if errors.As(err, &cycle) {
		e := sdoerrors.Wrap(sdoerrors.ErrReferenceCycle, "render object", err)
		e.Message = "cycle starts at " + cycle.Path[0].Type().QName()
		return e
	}
	return err
}

func structuralEdges(n Node) ([]Node, error) {
	var out []Node
	for _, p := range n.InstanceProperties() {
		if !p.IsStructural() || !n.IsSet(p) || n.IsNull(p) {
			continue
		}
		payload, err := n.Payload(p)
		if err != nil {
			return nil, err
		}
		if !p.Many {
			child, ok := payload.(Node)
			if !ok {
				return nil, malformed(p, "structural slot holds %T", payload)
			}
			out = append(out, child)
			continue
		}
		items, ok := payload.([]any)
		if !ok {
			return nil, malformed(p, "many-valued slot holds %T", payload)
		}
		for _, item := range items {
			child, ok := item.(Node)
			if !ok {
				return nil, malformed(p, "structural slot holds %T", item)
			}
			out = append(out, child)
		}
	}
	return out, nil
}

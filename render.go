package sdo

import (
	"fmt"
	"io"
	"strings"

	"github.com/jacoelho/sdo/internal/render"
	"github.com/jacoelho/sdo/internal/scalar"
	"github.com/jacoelho/sdo/internal/textbuf"
)

// CyclePolicy selects how rendering treats reference properties.
type CyclePolicy = render.CyclePolicy

// Cycle policies.
const (
	ContainmentOnly  = render.ContainmentOnly
	FollowReferences = render.FollowReferences
	RejectCycles     = render.RejectCycles
)

// Formatter renders primitive values as text.
type Formatter = scalar.Formatter

// RenderOptions configures rendering.
type RenderOptions struct {
	// Formatter renders primitive values. Nil uses the default text form.
	Formatter Formatter
	// MaxDepth bounds nesting. Zero means 512.
	MaxDepth    int
	CyclePolicy CyclePolicy
	// Escape writes the output as XML character data. CDATA sections in
	// values are kept intact.
	Escape bool
}

// RenderObject renders root with default options.
func RenderObject(root *DataObject) (string, error) {
	var b strings.Builder
	if err := WriteObject(&b, root, RenderOptions{}); err != nil {
		return b.String(), err
	}
	return b.String(), nil
}

// WriteObject renders root to w. Output emitted before a failure is still
// written.
func WriteObject(w io.Writer, root *DataObject, opts RenderOptions) error {
	walk := render.Options{
		Formatter:   opts.Formatter,
		MaxDepth:    opts.MaxDepth,
		CyclePolicy: opts.CyclePolicy,
	}
	var node render.Node
	if root != nil {
		node = root
	}
	return emit(w, opts.Escape, func(sink render.Sink) error {
		return render.Object(sink, node, walk)
	})
}

// RenderCatalog renders each type and its declared properties.
func RenderCatalog(catalog []*Type) (string, error) {
	var b strings.Builder
	if err := WriteCatalog(&b, catalog, false); err != nil {
		return b.String(), err
	}
	return b.String(), nil
}

// WriteCatalog renders types to w, optionally escaped as XML character data.
func WriteCatalog(w io.Writer, catalog []*Type, escape bool) error {
	return emit(w, escape, func(sink render.Sink) error {
		return render.Catalog(sink, catalog)
	})
}

func emit(w io.Writer, escape bool, walk func(render.Sink) error) error {
	if !escape {
		return walk(render.TextSink{W: w})
	}
	var buf textbuf.Buffer
	err := walk(render.EscapingSink{Buffer: &buf})
	if _, werr := buf.WriteTo(w); werr != nil && err == nil {
		err = fmt.Errorf("write output: %w", werr)
	}
	return err
}

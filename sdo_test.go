package sdo

import (
	"errors"
	"strings"
	"testing"

	sdoerrors "github.com/jacoelho/sdo/errors"
	"github.com/jacoelho/sdo/internal/typenames"
	"github.com/jacoelho/sdo/internal/types"
)

func TestNameTranslationRoundTrip(t *testing.T) {
	t.Parallel()

	for _, name := range typenames.XSDNames() {
		if k := ExternalToInternal(name); !k.Valid() {
			t.Fatalf("ExternalToInternal(%q) = %v, not a primitive kind", name, k)
		}
	}
	for _, k := range types.Kinds() {
		if got := ExternalToInternal(InternalToExternal(k)); got != k {
			t.Fatalf("round trip of %v = %v", k, got)
		}
	}
	if got := InternalToExternal(0); got != "string" {
		t.Fatalf("InternalToExternal(unspecified) = %q, want string", got)
	}
	if got := ExternalToInternal(""); got != KindString {
		t.Fatalf("ExternalToInternal(\"\") = %v, want String", got)
	}
}

func TestReplaceAllLaws(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		host, from, to string
		want           string
	}{
		{name: "commas", host: "a,b,,c", from: ",", to: "-", want: "a-b--c"},
		{name: "absent", host: "plain text", from: "#", to: "anything", want: "plain text"},
		{name: "empty from", host: "abc", from: "", to: "x", want: "abc"},
		{name: "marker", host: "<![CDATA[x]]>", from: "<![CDATA[", to: "XXXCDATA@STARTXXX", want: "XXXCDATA@STARTXXXx]]>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ReplaceAll(tt.host, tt.from, tt.to); got != tt.want {
				t.Fatalf("ReplaceAll(%q, %q, %q) = %q, want %q", tt.host, tt.from, tt.to, got, tt.want)
			}
		})
	}

	text := "one <![CDATA[two]]> three"
	escaped := ReplaceAll(text, "<![CDATA[", "@@")
	if back := ReplaceAll(escaped, "@@", "<![CDATA["); back != text {
		t.Fatalf("round trip = %q, want %q", back, text)
	}
}

func TestWriteObjectOptions(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog()
	node := catalog.MustDefine("urn:t", "Node", TypeOptions{})
	label := node.MustAddProperty("label", Primitive(KindString), false)
	peer := node.MustAddProperty("peer", node, false)

	root, err := New(node)
	if err != nil {
		t.Fatal(err)
	}
	if err := root.Set(label, "a<b"); err != nil {
		t.Fatal(err)
	}
	if err := root.SetReference(peer, root); err != nil {
		t.Fatal(err)
	}

	var plain strings.Builder
	if err := WriteObject(&plain, root, RenderOptions{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(plain.String(), "Property Value: a<b\n") || !strings.Contains(plain.String(), "Reference: urn:t#Node\n") {
		t.Fatalf("plain output =\n%s", plain.String())
	}

	var escaped strings.Builder
	if err := WriteObject(&escaped, root, RenderOptions{Escape: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(escaped.String(), "Property Value: a&lt;b\n") {
		t.Fatalf("escaped output =\n%s", escaped.String())
	}

	var follow strings.Builder
	if err := WriteObject(&follow, root, RenderOptions{CyclePolicy: FollowReferences}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(follow.String(), "Cycle: urn:t#Node\n") {
		t.Fatalf("follow output =\n%s", follow.String())
	}

	err = WriteObject(&strings.Builder{}, root, RenderOptions{CyclePolicy: RejectCycles})
	if !errors.Is(err, sdoerrors.ErrReferenceCycle) {
		t.Fatalf("WriteObject(reject) error = %v, want ErrReferenceCycle", err)
	}
}

func TestRenderObjectNil(t *testing.T) {
	t.Parallel()

	out, err := RenderObject(nil)
	if err != nil || out != "" {
		t.Fatalf("RenderObject(nil) = %q, %v", out, err)
	}
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	if _, err := Decode(nil); err == nil {
		t.Fatal("Decode(nil) expected error")
	}
	if _, err := Decode(strings.NewReader("[[types]]\nname = 1\n")); err == nil {
		t.Fatal("Decode() expected type error")
	}
}

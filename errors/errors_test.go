package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		want string
		e    *Error
	}{
		{
			name: "code only",
			e:    &Error{Code: ErrInvalidState},
			want: "[sdo-invalid-state]",
		},
		{
			name: "with op and property",
			e:    New(ErrInvalidState, "get", "name", "property is not set"),
			want: `[sdo-invalid-state] get "name": property is not set`,
		},
		{
			name: "with cause",
			e:    Wrap(ErrReferenceCycle, "render", fmt.Errorf("cycle detected")),
			want: "[render-reference-cycle] render: cycle detected",
		},
		{
			name: "nil",
			e:    nil,
			want: "sdo error <nil>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.Error(); got != tt.want {
				t.Fatalf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorMatchesCode(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("outer: %w", Newf(ErrIndexOutOfRange, "list get", "items", "index %d, size %d", 3, 2))
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("errors.Is(%v, ErrIndexOutOfRange) = false", err)
	}
	if errors.Is(err, ErrInvalidState) {
		t.Fatalf("errors.Is(%v, ErrInvalidState) = true", err)
	}
}

func TestCodeOf(t *testing.T) {
	t.Parallel()

	if _, ok := CodeOf(nil); ok {
		t.Fatal("CodeOf(nil) ok = true")
	}
	if _, ok := CodeOf(fmt.Errorf("plain")); ok {
		t.Fatal("CodeOf(plain) ok = true")
	}
	code, ok := CodeOf(fmt.Errorf("wrapped: %w", New(ErrNotOpenType, "define", "x", "")))
	if !ok || code != ErrNotOpenType {
		t.Fatalf("CodeOf() = %q, %v, want %q, true", code, ok, ErrNotOpenType)
	}
	code, ok = CodeOf(ErrMalformedGraph)
	if !ok || code != ErrMalformedGraph {
		t.Fatalf("CodeOf(code) = %q, %v, want %q, true", code, ok, ErrMalformedGraph)
	}
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	cause := fmt.Errorf("boom")
	err := Wrap(ErrMalformedGraph, "render", cause)
	if !errors.Is(err, cause) {
		t.Fatal("errors.Is(err, cause) = false")
	}
}

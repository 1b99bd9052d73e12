package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies a class of data object failure.
// A Code is itself an error so callers can match with errors.Is.
type Code string

const (
	// ErrInvalidState indicates a value was read from a slot that is not set.
	ErrInvalidState Code = "sdo-invalid-state"
	// ErrIndexOutOfRange indicates a many-valued index outside the list bounds.
	ErrIndexOutOfRange Code = "sdo-index-out-of-range"
	// ErrUnknownProperty indicates a property that does not belong to the object type.
	ErrUnknownProperty Code = "sdo-unknown-property"
	// ErrNotOpenType indicates an ad hoc property was added to a closed type.
	ErrNotOpenType Code = "sdo-not-open-type"
	// ErrTypeMismatch indicates a value does not fit the property shape or kind.
	ErrTypeMismatch Code = "sdo-type-mismatch"
	// ErrDuplicateName indicates a type or property name is already declared.
	ErrDuplicateName Code = "sdo-duplicate-name"
	// ErrInvalidArgument indicates a nil or empty argument.
	ErrInvalidArgument Code = "sdo-invalid-argument"
	// ErrContainmentCycle indicates an object would contain one of its ancestors.
	ErrContainmentCycle Code = "sdo-containment-cycle"

	// ErrMalformedGraph indicates a slot payload does not match its property shape.
	ErrMalformedGraph Code = "render-malformed-graph"
	// ErrReferenceCycle indicates a cycle through reference edges.
	ErrReferenceCycle Code = "render-reference-cycle"
	// ErrDepthExceeded indicates traversal went past the configured depth limit.
	ErrDepthExceeded Code = "render-depth-exceeded"
)

// Error returns the code text.
func (c Code) Error() string {
	return string(c)
}

// Error describes a failed data object operation.
type Error struct {
	Err      error
	Code     Code
	Op       string
	Property string
	Message  string
}

// Error formats the code, operation, property, and message.
func (e *Error) Error() string {
	if e == nil {
		return "sdo error <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]", e.Code))
	if e.Op != "" {
		b.WriteString(" " + e.Op)
	}
	if e.Property != "" {
		b.WriteString(fmt.Sprintf(" %q", e.Property))
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is the same Code.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	code, ok := target.(Code)
	return ok && code == e.Code
}

// New builds an Error for op with an optional property name.
func New(code Code, op, property, msg string) *Error {
	return &Error{Code: code, Op: op, Property: property, Message: msg}
}

// Newf formats a message and builds an Error.
func Newf(code Code, op, property, format string, args ...any) *Error {
	return New(code, op, property, fmt.Sprintf(format, args...))
}

// Wrap builds an Error that carries err as its cause.
func Wrap(code Code, op string, err error) *Error {
	return &Error{Code: code, Op: op, Err: err}
}

// CodeOf extracts the code of the first Error in err's chain.
func CodeOf(err error) (Code, bool) {
	if err == nil {
		return "", false
	}
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Code, true
	}
	var code Code
	if errors.As(err, &code) {
		return code, true
	}
	return "", false
}

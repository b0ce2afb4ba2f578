package wire

import (
	"errors"
	"fmt"
	"strings"
)

// Decoding error kinds. Every decode failure wraps exactly one of these, so
// callers can branch with errors.Is.
var (
	ErrMalformedVarint   = errors.New("malformed varint")
	ErrTruncated         = errors.New("truncated input")
	ErrUnknownWireType   = errors.New("unknown wire type")
	ErrFieldTypeMismatch = errors.New("field wire type mismatch")
	ErrInvalidTag        = errors.New("invalid field number in tag")
	ErrDepthExceeded     = errors.New("message nesting too deep")
)

// DecodeError records where in the stream a decode failure happened.
type DecodeError struct {
	Kind     error       // one of the Err* sentinels above
	Offset   int64       // byte offset from the start of the source
	Field    FieldNumber // 0 when not known
	WireType WireType
	Err      error // underlying cause, may be nil
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	fmt.Fprintf(&b, " at offset %d", e.Offset)
	if e.Field != 0 {
		fmt.Fprintf(&b, " (field %d, %s)", e.Field, e.WireType)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is matches the error kind so errors.Is(err, ErrTruncated) works.
func (e *DecodeError) Is(target error) bool {
	return target == e.Kind
}

// FieldError represents an encoding/decoding error with a field path.
type FieldError struct {
	FieldPath []string // e.g., ["people", "phones", "number"]
	Err       error    // underlying error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if len(e.FieldPath) == 0 {
		return e.Err.Error()
	}

	return fmt.Sprintf("error at proto path %s: %v", strings.Join(e.FieldPath, "."), e.Err)
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// WrapWithField prefixes err's field path with fieldName. Nested failures
// collapse into a single FieldError rather than stacking.
func WrapWithField(err error, fieldName string) error {
	if err == nil {
		return nil
	}

	if fe, ok := err.(*FieldError); ok {
		return &FieldError{
			FieldPath: append([]string{fieldName}, fe.FieldPath...),
			Err:       fe.Err,
		}
	}

	return &FieldError{
		FieldPath: []string{fieldName},
		Err:       err,
	}
}

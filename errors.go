package tmas

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrMissingField is the cause of an InvalidFieldError for a required
	// field that is blank.
	ErrMissingField = errors.New("required field is blank")

	// ErrMalformedField is the cause of an InvalidFieldError for a field
	// whose characters do not match its declared type.
	ErrMalformedField = errors.New("malformed field")

	// ErrUnknownCode is the cause of an InvalidFieldError for a coded field
	// holding a value outside its domain.
	ErrUnknownCode = errors.New("unrecognized code")
)

// An UnexpectedRecordKindError describes a line whose discriminator
// character does not belong to the formatter's kind.
type UnexpectedRecordKindError struct {
	Kind Kind
	Want byte
	Have byte
}

func (e *UnexpectedRecordKindError) Error() string {
	return fmt.Sprintf("tmas: %s record must start with %q, have %q", e.Kind, e.Want, e.Have)
}

// A TruncatedRecordError describes a line shorter than the length its kind,
// or its embedded count, requires.
type TruncatedRecordError struct {
	Kind     Kind
	Required int
	Actual   int
}

func (e *TruncatedRecordError) Error() string {
	return fmt.Sprintf("tmas: %s record requires at least %d columns, have %d", e.Kind, e.Required, e.Actual)
}

// An OverlongRecordError describes a line longer than its fixed length kind
// allows.
type OverlongRecordError struct {
	Kind     Kind
	Required int
	Actual   int
}

func (e *OverlongRecordError) Error() string {
	return fmt.Sprintf("tmas: %s record must be exactly %d columns, have %d", e.Kind, e.Required, e.Actual)
}

// An InvalidFieldError describes a column range that could not be decoded.
type InvalidFieldError struct {
	Kind  Kind
	Field string // name of the record field
	Start int    // first column, 1-based
	End   int    // last column, inclusive
	Value string // the raw characters
	Err   error  // ErrMissingField, ErrMalformedField, ErrUnknownCode, or a parse error
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("tmas: %s field %s (columns %d-%d) %q: %v", e.Kind, e.Field, e.Start, e.End, e.Value, e.Err)
}

func (e *InvalidFieldError) Unwrap() error { return e.Err }

// An UnrepresentableValueError describes a record value that cannot be
// written to its column range.
type UnrepresentableValueError struct {
	Kind   Kind
	Field  string
	Start  int
	End    int
	Value  string // the value as formatted by fmt
	Reason string
}

func (e *UnrepresentableValueError) Error() string {
	return fmt.Sprintf("tmas: cannot encode %s field %s (columns %d-%d) value %s: %s", e.Kind, e.Field, e.Start, e.End, e.Value, e.Reason)
}

package rdate

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrInvalidValue marks every error returned when a value cannot be
// constructed or an operation's precondition does not hold. Test for it with
// errors.Is from github.com/cockroachdb/errors, which follows marks.
var ErrInvalidValue = errors.New("invalid value")

// ValueError describes a field or input that failed validation.
type ValueError struct {
	// Field names what was being validated, e.g. "hour" or "date".
	Field string
	// Bounds is the permitted range, if one applies, e.g. "1-28".
	Bounds string
	// Value is the offending value or the unparsed input.
	Value interface{}
}

// NewValueError returns a ValueError marked with ErrInvalidValue.
func NewValueError(field string, value interface{}) error {
	return errors.Mark(&ValueError{Field: field, Value: value}, ErrInvalidValue)
}

// NewBoundsError returns a ValueError with a permitted range, marked with
// ErrInvalidValue.
func NewBoundsError(field string, lo, hi int, value interface{}) error {
	return errors.Mark(
		&ValueError{Field: field, Bounds: fmt.Sprintf("%d-%d", lo, hi), Value: value},
		ErrInvalidValue,
	)
}

// Error implements the error interface.
func (ve *ValueError) Error() string {
	if ve.Bounds != "" {
		return fmt.Sprintf("invalid %s (%s): %v", ve.Field, ve.Bounds, ve.Value)
	}
	return fmt.Sprintf("invalid %s: %v", ve.Field, ve.Value)
}

var _ error = (*ValueError)(nil)

// invalidf returns a free-form error marked with ErrInvalidValue.
func invalidf(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalidValue)
}

// invalidInput reports that s could not be read as field. The underlying
// cause, if any, stays reachable through errors.GetAllSecondaryErrors but
// does not change the message.
func invalidInput(field, s string, cause error) error {
	err := NewValueError(field, s)
	if cause != nil {
		err = errors.WithSecondaryError(err, cause)
	}
	return err
}

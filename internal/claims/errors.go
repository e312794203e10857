package claims

import (
	"errors"
	"fmt"
)

// ErrInvalidLimit is returned by TopProviders for a non-positive limit.
var ErrInvalidLimit = errors.New("limit must be a positive integer")

// ParseError reports a malformed value in a single field of a single record.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %s", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError reports a parsed record that violates a structural
// invariant.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// IsInputError reports whether err is attributable to the caller's input
// (parse or validation) rather than to the store.
func IsInputError(err error) bool {
	var pe *ParseError
	var ve *ValidationError
	return errors.As(err, &pe) || errors.As(err, &ve)
}

package usecase

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every add-data input error.
var ErrValidation = errors.New("validation failed")

var (
	// ErrMissingField reports a required field left empty.
	ErrMissingField = fmt.Errorf("%w: missing required field", ErrValidation)
	// ErrInvalidField reports a field whose value cannot be used.
	ErrInvalidField = fmt.Errorf("%w: invalid field", ErrValidation)
)

// FieldError ties a validation error to the offending input field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string { return fmt.Sprintf("%s: %v", e.Field, e.Err) }

func (e *FieldError) Unwrap() error { return e.Err }

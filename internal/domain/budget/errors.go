package budget

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput matches every *InvalidInputError via errors.Is.
	ErrInvalidInput = errors.New("invalid budget input")
	// ErrInvalidCatalog is returned when reference data fails validation at load time.
	ErrInvalidCatalog = errors.New("invalid catalog")
	// ErrInvalidPolicy is returned by NewEstimator when the pricing policy fails validation.
	ErrInvalidPolicy = errors.New("invalid pricing policy")
)

// InvalidInputError names the request field that failed validation.
//
// Field uses the JSON path of the request, e.g. "materials[2].coverage".
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(field, format string, args ...any) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

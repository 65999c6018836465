package validator

import "errors"

var (
	// ErrKindAndKeyRequired is returned when a result or rule is built without a kind or key.
	ErrKindAndKeyRequired = errors.New("type and key are required")

	// ErrInvalidCompareWith is returned when a validator cannot use its comparison argument.
	ErrInvalidCompareWith = errors.New("invalid compare value")

	// ErrValidationFailed is the error form of a failed validation.
	ErrValidationFailed = errors.New("validation failed")
)

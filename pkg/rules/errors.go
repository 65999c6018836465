package rules

import "errors"

var (
	// ErrInvalidDescriptor is returned by Compile for descriptors missing a
	// name, a type, or both a state path and a predicate.
	ErrInvalidDescriptor = errors.New("every descriptor needs at least name, type and stateMap or validate")

	// ErrCompile wraps validator factory failures during Compile.
	ErrCompile = errors.New("failed to compile rule")

	// ErrUnknownRule is returned when selecting a rule name the set does not contain.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrNoRules is returned by Validate for a nil Rules value.
	ErrNoRules = errors.New("no rules to validate")

	// ErrAccumulatorMismatch is returned by Validate when the previous result
	// does not match the shape of the rules.
	ErrAccumulatorMismatch = errors.New("previous result does not match rules shape")
)

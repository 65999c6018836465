package rules

import (
	"github.com/dmitrymomot/formrules/pkg/message"
)

// Predicate is a custom check over the whole state.
type Predicate func(state any) bool

// Descriptor declares one rule to build.
type Descriptor struct {
	// Name is the field key reported in errors.
	Name string
	// Type is the validator kind, built-in or custom.
	Type string
	// StateMap is the path of the field value inside the state.
	// Required unless Validate is set.
	StateMap string
	// Validate replaces the built-in validator lookup when set.
	Validate Predicate
	// CompareWith is passed to the validator as its argument.
	CompareWith any
	// DefaultValue replaces a missing or falsy field value.
	DefaultValue any
	// Message overrides the generated error message.
	Message message.Func
}

func (d Descriptor) valid() bool {
	return d.Name != "" && d.Type != "" && (d.StateMap != "" || d.Validate != nil)
}

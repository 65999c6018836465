package message

import (
	"fmt"
	"strings"
)

// Func renders an error message for a failed validation.
type Func func(value any, kind, key string, compareWith any) string

// Default is used when a validator has no dedicated message.
func Default(value any, kind, key string, _ any) string {
	return fmt.Sprintf("%s need to be %s. %s is invalid", key, kind, Format(value))
}

// Required reports a missing value.
func Required(_ any, _, key string, _ any) string {
	return key + " is required"
}

// MinLength reports a value shorter than the bound.
func MinLength(value any, _, key string, compareWith any) string {
	return fmt.Sprintf("%s should less than %s and got %s", key, Format(compareWith), Format(value))
}

// MaxLength reports a value longer than the bound.
func MaxLength(value any, _, key string, compareWith any) string {
	return fmt.Sprintf("%s more less than %s and got %s", key, Format(compareWith), Format(value))
}

// Match reports a value that differs from its sibling field.
func Match(value any, _, _ string, compareWith any) string {
	return fmt.Sprintf("%s should match with %s", Format(value), Format(compareWith))
}

// Email reports a value that is not an email address.
func Email(value any, _, _ string, _ any) string {
	return Format(value) + " should be an email"
}

// Format renders a value for inclusion in a message.
// nil renders as an empty string.
func Format(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// Template builds a Func from a template string. Supported placeholders are
// {value}, {type}, {key} and {compare}.
func Template(tpl string) Func {
	return func(value any, kind, key string, compareWith any) string {
		return strings.NewReplacer(
			"{value}", Format(value),
			"{type}", kind,
			"{key}", key,
			"{compare}", Format(compareWith),
		).Replace(tpl)
	}
}

// Or returns fn when it is set, otherwise fallback.
func Or(fn, fallback Func) Func {
	if fn != nil {
		return fn
	}
	return fallback
}

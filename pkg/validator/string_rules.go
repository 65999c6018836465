package validator

import (
	"fmt"
	"reflect"
	"unicode/utf8"

	"github.com/dmitrymomot/formrules/pkg/message"
	"github.com/dmitrymomot/formrules/pkg/statepath"
)

// Required passes when the value at Path is truthy. DefaultValue is not used.
func Required(cfg Config) (Rule, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return func(state any) Result {
		v, _ := statepath.Get(state, cfg.Path)
		return cfg.result(statepath.Truthy(v), v, message.Required)
	}, nil
}

// MinLength passes when the (defaulted) value has at least CompareWith characters or elements.
func MinLength(cfg Config) (Rule, error) {
	return lengthRule(cfg, message.MinLength, func(n, bound float64) bool { return n >= bound })
}

// MaxLength passes when the (defaulted) value has at most CompareWith characters or elements.
func MaxLength(cfg Config) (Rule, error) {
	return lengthRule(cfg, message.MaxLength, func(n, bound float64) bool { return n <= bound })
}

func lengthRule(cfg Config, msg message.Func, cmp func(n, bound float64) bool) (Rule, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	bound, err := toBound(cfg.CompareWith)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", cfg.Kind, cfg.Key, err)
	}
	return func(state any) Result {
		v := cfg.valueOrDefault(state)
		n, ok := length(v)
		return cfg.result(ok && cmp(float64(n), bound), v, msg)
	}, nil
}

// length counts runes for strings and elements for slices, arrays and maps.
// Other values have no length.
func length(v any) (int, bool) {
	if s, ok := v.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	default:
		return 0, false
	}
}

func toBound(v any) (float64, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	default:
		return 0, fmt.Errorf("%w: length bound must be a number, got %T", ErrInvalidCompareWith, v)
	}
}

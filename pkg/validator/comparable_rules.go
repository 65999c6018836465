package validator

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/formrules/pkg/message"
	"github.com/dmitrymomot/formrules/pkg/statepath"
)

// CompareFields passes when the value at Path strictly equals the value at
// the path given in CompareWith. No defaulting or conversion is applied.
// A missing path never equals a present nil.
func CompareFields(cfg Config) (Rule, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	other, ok := cfg.CompareWith.(string)
	if !ok || other == "" {
		return nil, fmt.Errorf("%s %q: %w: sibling path must be a non-empty string, got %T",
			cfg.Kind, cfg.Key, ErrInvalidCompareWith, cfg.CompareWith)
	}
	return func(state any) Result {
		a, okA := statepath.Get(state, cfg.Path)
		b, okB := statepath.Get(state, other)
		return cfg.result(okA == okB && strictEqual(a, b), a, message.Match)
	}, nil
}

// strictEqual compares without conversion. Values of different dynamic types
// are never equal; maps, slices and funcs are equal only when they share the
// same backing storage.
func strictEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	switch va.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func:
		return va.Pointer() == vb.Pointer() && (va.Kind() == reflect.Func || va.Len() == vb.Len())
	default:
		return false
	}
}

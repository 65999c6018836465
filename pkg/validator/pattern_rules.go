package validator

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/formrules/pkg/message"
)

// Regex passes when the (defaulted) value matches CompareWith, which must be
// a *regexp.Regexp or a pattern string.
func Regex(cfg Config) (Rule, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	re, err := toPattern(cfg.CompareWith)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", cfg.Kind, cfg.Key, err)
	}
	return func(state any) Result {
		v := cfg.valueOrDefault(state)
		return cfg.result(re.MatchString(message.Format(v)), v, message.Default)
	}, nil
}

func toPattern(v any) (*regexp.Regexp, error) {
	switch p := v.(type) {
	case *regexp.Regexp:
		if p == nil {
			return nil, fmt.Errorf("%w: nil pattern", ErrInvalidCompareWith)
		}
		return p, nil
	case string:
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCompareWith, err)
		}
		return re, nil
	default:
		return nil, fmt.Errorf("%w: pattern must be a string or *regexp.Regexp, got %T", ErrInvalidCompareWith, v)
	}
}

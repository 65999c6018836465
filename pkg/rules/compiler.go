package rules

import (
	"fmt"
	"log/slog"

	"github.com/agnivade/levenshtein"

	"github.com/dmitrymomot/formrules/pkg/logger"
	"github.com/dmitrymomot/formrules/pkg/message"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

// Resolver finds the validator factory for a kind.
// *validator.Registry satisfies it.
type Resolver interface {
	Lookup(kind string) (validator.Factory, bool)
	Fallback() validator.Factory
	Kinds() []string
}

// Compile builds a RuleSet from descriptors. The first invalid descriptor or
// factory error aborts the whole batch.
func Compile(resolver Resolver, descriptors []Descriptor, opts ...Option) (*RuleSet, error) {
	cfg := defaultCompileConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	set := newRuleSet(len(descriptors))
	for i, d := range descriptors {
		if !d.valid() {
			return nil, fmt.Errorf("descriptor %d (name %q, type %q): %w", i, d.Name, d.Type, ErrInvalidDescriptor)
		}

		rule, err := compileOne(resolver, d, cfg.logger)
		if err != nil {
			return nil, fmt.Errorf("%w: descriptor %d (name %q, type %q): %w", ErrCompile, i, d.Name, d.Type, err)
		}

		name := RuleName(d.Name, d.Type)
		if set.set(name, rule) {
			cfg.logger.Debug("rule replaced by later descriptor",
				logger.Rule(name),
				logger.Field(d.Name),
				slog.Int("index", i),
			)
		}
	}

	return set, nil
}

func compileOne(resolver Resolver, d Descriptor, log *slog.Logger) (validator.Rule, error) {
	if d.Validate != nil {
		return predicateRule(d), nil
	}

	factory, ok := resolver.Lookup(d.Type)
	if !ok {
		attrs := []any{logger.Kind(d.Type), logger.Field(d.Name)}
		if s := suggest(d.Type, resolver.Kinds()); s != "" {
			attrs = append(attrs, slog.String("did_you_mean", s))
		}
		log.Warn("unknown validator kind, using fallback", attrs...)
		factory = resolver.Fallback()
	}

	return factory.Build(validator.Config{
		Path:         d.StateMap,
		Kind:         d.Type,
		Key:          d.Name,
		CompareWith:  d.CompareWith,
		DefaultValue: d.DefaultValue,
		Message:      d.Message,
	})
}

// predicateRule wraps a custom predicate. The message generator receives the
// whole state as its value argument, not a field value: existing message
// consumers rely on it.
func predicateRule(d Descriptor) validator.Rule {
	msg := message.Or(d.Message, message.Default)
	return func(state any) validator.Result {
		if d.Validate(state) {
			return validator.Result{Valid: true}
		}
		return validator.Result{Error: &validator.ErrorDetail{
			Key:     d.Name,
			Type:    d.Type,
			Message: msg(state, d.Type, d.Name, d.CompareWith),
		}}
	}
}

// suggest returns the known kind closest to kind, or "" when none is close.
func suggest(kind string, known []string) string {
	best, bestDist := "", len(kind)/2+1
	for _, k := range known {
		if d := levenshtein.ComputeDistance(kind, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

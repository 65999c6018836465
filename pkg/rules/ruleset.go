package rules

import (
	"fmt"
	"iter"
	"slices"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

// RuleSet is an insertion ordered mapping from derived rule names to rules.
// It is read-only once Compile returns it and safe for concurrent use.
type RuleSet struct {
	names []string
	rules map[string]validator.Rule
}

func newRuleSet(capacity int) *RuleSet {
	return &RuleSet{
		names: make([]string, 0, capacity),
		rules: make(map[string]validator.Rule, capacity),
	}
}

// set stores rule under name and reports whether an earlier rule was replaced.
// Replaced rules keep their original position.
func (s *RuleSet) set(name string, rule validator.Rule) bool {
	_, exists := s.rules[name]
	if !exists {
		s.names = append(s.names, name)
	}
	s.rules[name] = rule
	return exists
}

func (s *RuleSet) Get(name string) (validator.Rule, bool) {
	r, ok := s.rules[name]
	return r, ok
}

// Names returns the rule names in evaluation order.
func (s *RuleSet) Names() []string {
	return slices.Clone(s.names)
}

func (s *RuleSet) Len() int {
	return len(s.names)
}

// All iterates the rules in evaluation order.
func (s *RuleSet) All() iter.Seq2[string, validator.Rule] {
	return func(yield func(string, validator.Rule) bool) {
		for _, name := range s.names {
			if !yield(name, s.rules[name]) {
				return
			}
		}
	}
}

// Select builds a RuleList from the named rules, in the order given.
func (s *RuleSet) Select(names ...string) (RuleList, error) {
	list := make(RuleList, 0, len(names))
	for _, name := range names {
		r, ok := s.rules[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
		}
		list = append(list, r)
	}
	return list, nil
}

// RuleList is an ordered list of rules evaluated into a flat OrderedResult.
type RuleList []validator.Rule

package rules

import (
	"fmt"
)

// Rules is the input of Validate: a *RuleSet or a RuleList.
type Rules interface {
	run(state any, previous Aggregate) (Aggregate, error)
}

// Validate runs rules against state starting from previous, which may be nil.
// previous must be a *GroupedResult for a *RuleSet and an *OrderedResult for
// a RuleList.
func Validate(rules Rules, state any, previous Aggregate) (Aggregate, error) {
	if rules == nil {
		return nil, ErrNoRules
	}
	return rules.run(state, previous)
}

// ValidateSet applies every rule of set in order and groups failures by
// field key. A nil previous starts from an empty valid result.
func ValidateSet(set *RuleSet, state any, previous *GroupedResult) *GroupedResult {
	res := previous.clone()
	if set == nil {
		return res
	}
	for _, rule := range set.All() {
		applied := rule(state)
		res.Valid = res.Valid && applied.Valid
		if applied.Error != nil {
			res.add(applied.Error)
		}
	}
	return res
}

// ValidateList applies every rule of list in order and records failures in a
// flat list. A nil previous starts from an empty valid result.
func ValidateList(list RuleList, state any, previous *OrderedResult) *OrderedResult {
	res := previous.clone()
	for _, rule := range list {
		applied := rule(state)
		res.Valid = res.Valid && applied.Valid
		if applied.Error != nil {
			res.add(applied.Error)
		}
	}
	return res
}

func (s *RuleSet) run(state any, previous Aggregate) (Aggregate, error) {
	var prev *GroupedResult
	if previous != nil {
		p, ok := previous.(*GroupedResult)
		if !ok {
			return nil, fmt.Errorf("%w: rule set needs *GroupedResult, got %T", ErrAccumulatorMismatch, previous)
		}
		prev = p
	}
	return ValidateSet(s, state, prev), nil
}

func (l RuleList) run(state any, previous Aggregate) (Aggregate, error) {
	var prev *OrderedResult
	if previous != nil {
		p, ok := previous.(*OrderedResult)
		if !ok {
			return nil, fmt.Errorf("%w: rule list needs *OrderedResult, got %T", ErrAccumulatorMismatch, previous)
		}
		prev = p
	}
	return ValidateList(l, state, prev), nil
}

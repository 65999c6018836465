package rules

import (
	"slices"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

// Entry is one recorded failure.
type Entry struct {
	Type    string `json:"type" yaml:"type"`
	Message string `json:"message" yaml:"message"`
}

// Aggregate is the result of running Rules. It is implemented by
// *GroupedResult and *OrderedResult only.
type Aggregate interface {
	IsValid() bool
	// Err returns the failures as validator.ValidationErrors, or nil when valid.
	Err() error
	aggregate()
}

// GroupedResult accumulates failures per field key.
type GroupedResult struct {
	Valid  bool               `json:"valid" yaml:"valid"`
	Errors map[string][]Entry `json:"errors" yaml:"errors"`

	order []string
	keys  []string
}

// NewGroupedResult returns an empty, valid accumulator.
func NewGroupedResult() *GroupedResult {
	return &GroupedResult{Valid: true, Errors: map[string][]Entry{}}
}

func (r *GroupedResult) IsValid() bool { return r.Valid }

func (*GroupedResult) aggregate() {}

func (r *GroupedResult) add(d *validator.ErrorDetail) {
	if _, ok := r.Errors[d.Key]; !ok {
		r.order = append(r.order, d.Key)
	}
	r.Errors[d.Key] = append(r.Errors[d.Key], Entry{Type: d.Type, Message: d.Message})
	r.keys = append(r.keys, d.Key)
}

// Kinds returns the failures in the legacy shape: field key to failed kinds.
func (r *GroupedResult) Kinds() map[string][]string {
	out := make(map[string][]string, len(r.Errors))
	for key, entries := range r.Errors {
		kinds := make([]string, len(entries))
		for i, e := range entries {
			kinds[i] = e.Type
		}
		out[key] = kinds
	}
	return out
}

// Fields returns the failing keys in the order they first failed. Keys that
// only came from a map built outside this package are appended sorted.
func (r *GroupedResult) Fields() []string {
	fields := slices.Clone(r.order)
	var rest []string
	for key := range r.Errors {
		if !slices.Contains(fields, key) {
			rest = append(rest, key)
		}
	}
	slices.Sort(rest)
	return append(fields, rest...)
}

// Err flattens the failures in evaluation order.
func (r *GroupedResult) Err() error {
	if r.Valid {
		return nil
	}
	var errs validator.ValidationErrors
	seen := make(map[string]int, len(r.Errors))
	for _, key := range r.keys {
		i := seen[key]
		if i >= len(r.Errors[key]) {
			continue
		}
		e := r.Errors[key][i]
		seen[key]++
		errs.Add(validator.ErrorDetail{Key: key, Type: e.Type, Message: e.Message})
	}
	// Entries from a previous result built outside this package.
	for _, key := range r.Fields() {
		entries := r.Errors[key]
		for _, e := range entries[min(seen[key], len(entries)):] {
			errs.Add(validator.ErrorDetail{Key: key, Type: e.Type, Message: e.Message})
		}
	}
	return errs
}

func (r *GroupedResult) clone() *GroupedResult {
	if r == nil {
		return NewGroupedResult()
	}
	out := &GroupedResult{
		Valid:  r.Valid,
		Errors: make(map[string][]Entry, len(r.Errors)),
		order:  slices.Clone(r.order),
		keys:   slices.Clone(r.keys),
	}
	for key, entries := range r.Errors {
		out.Errors[key] = slices.Clone(entries)
	}
	return out
}

// OrderedResult accumulates failures in one flat list.
type OrderedResult struct {
	Valid  bool    `json:"valid" yaml:"valid"`
	Errors []Entry `json:"errors" yaml:"errors"`

	keys []string
}

// NewOrderedResult returns an empty, valid accumulator.
func NewOrderedResult() *OrderedResult {
	return &OrderedResult{Valid: true, Errors: []Entry{}}
}

func (r *OrderedResult) IsValid() bool { return r.Valid }

func (*OrderedResult) aggregate() {}

func (r *OrderedResult) add(d *validator.ErrorDetail) {
	r.Errors = append(r.Errors, Entry{Type: d.Type, Message: d.Message})
	r.keys = append(r.keys, d.Key)
}

// Err returns the failures in evaluation order. Entries that were not
// recorded by this package carry no key.
func (r *OrderedResult) Err() error {
	if r.Valid {
		return nil
	}
	errs := make(validator.ValidationErrors, 0, len(r.Errors))
	for i, e := range r.Errors {
		var key string
		if i < len(r.keys) {
			key = r.keys[i]
		}
		errs = append(errs, validator.ErrorDetail{Key: key, Type: e.Type, Message: e.Message})
	}
	return errs
}

func (r *OrderedResult) clone() *OrderedResult {
	if r == nil {
		return NewOrderedResult()
	}
	errs := slices.Clone(r.Errors)
	if errs == nil {
		errs = []Entry{}
	}
	return &OrderedResult{Valid: r.Valid, Errors: errs, keys: slices.Clone(r.keys)}
}

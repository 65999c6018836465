package validator

import (
	"maps"
	"slices"
)

// Registry maps validator kinds to factories. Kinds it does not know resolve
// to the fallback factory. A Registry is never modified in place: With and
// WithFallback return copies.
type Registry struct {
	factories map[string]Factory
	fallback  Factory
}

// NewRegistry returns an empty registry. A nil fallback defaults to Required.
func NewRegistry(fallback Factory) *Registry {
	if fallback == nil {
		fallback = FactoryFunc(Required)
	}
	return &Registry{factories: map[string]Factory{}, fallback: fallback}
}

// DefaultRegistry returns a registry with every built-in validator and
// Required as the fallback.
func DefaultRegistry() *Registry {
	r := NewRegistry(FactoryFunc(Required))
	r.factories[KindRequired] = FactoryFunc(Required)
	r.factories[KindMinLength] = FactoryFunc(MinLength)
	r.factories[KindMaxLength] = FactoryFunc(MaxLength)
	r.factories[KindCompareFields] = FactoryFunc(CompareFields)
	r.factories[KindIsEmail] = FactoryFunc(IsEmail)
	r.factories[KindRegex] = FactoryFunc(Regex)
	return r
}

// With returns a copy of r with kind bound to f. A nil f removes the kind.
func (r *Registry) With(kind string, f Factory) *Registry {
	next := &Registry{factories: maps.Clone(r.factories), fallback: r.fallback}
	if f == nil {
		delete(next.factories, kind)
	} else {
		next.factories[kind] = f
	}
	return next
}

// WithFallback returns a copy of r using f for unknown kinds.
func (r *Registry) WithFallback(f Factory) *Registry {
	next := &Registry{factories: maps.Clone(r.factories), fallback: r.fallback}
	if f != nil {
		next.fallback = f
	}
	return next
}

// Lookup returns the factory registered for kind.
func (r *Registry) Lookup(kind string) (Factory, bool) {
	f, ok := r.factories[kind]
	return f, ok
}

func (r *Registry) Fallback() Factory {
	return r.fallback
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	return slices.Sorted(maps.Keys(r.factories))
}

// Package rules compiles declarative field descriptors into a named set of
// reusable validation rules and runs rules against state snapshots.
//
// # Compilation
//
// Compile turns a list of Descriptor values into a RuleSet. Each descriptor
// names a field, a validator kind and either a state path or a custom
// Predicate. Built-in kinds are resolved through a Resolver (usually a
// *validator.Registry); unknown kinds resolve to the resolver's fallback.
// Every rule is stored under a derived name, see RuleName. A descriptor that
// derives an existing name replaces the earlier rule in place.
//
// Compilation is all or nothing: the first malformed descriptor or factory
// error aborts the batch and no RuleSet is returned.
//
// # Running
//
// Rules come in two shapes and each produces its own result shape:
//
//   - *RuleSet   → *GroupedResult, failures grouped per field key
//   - RuleList   → *OrderedResult, failures in one flat list
//
// Every rule runs; a failure never stops evaluation. Results may start from a
// previous accumulator, which is copied rather than modified.
//
//	set, err := rules.Compile(validator.DefaultRegistry(), []rules.Descriptor{
//	    {Name: "email", Type: "required", StateMap: "email"},
//	    {Name: "email", Type: "isEmail", StateMap: "email"},
//	})
//	if err != nil {
//	    return err
//	}
//	res := rules.ValidateSet(set, state, nil)
//	if !res.Valid {
//	    return res.Err()
//	}
package rules

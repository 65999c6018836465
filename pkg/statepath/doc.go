// Package statepath resolves dotted and bracketed paths such as
// "user.addresses[0].city" against arbitrary in-memory state.
//
// State can be any mix of string-keyed maps, slices, arrays, structs and
// pointers. Struct fields are matched by their json tag name first and by
// their Go name second. Lookups never mutate the state and never panic on
// missing or mistyped segments; they simply report the path as unresolved.
package statepath

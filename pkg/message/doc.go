// Package message holds the human-readable error message generators used by
// the built-in validators.
//
// Every generator has the same signature, Func, receiving the value that was
// checked, the validator kind, the field key and the comparison argument the
// validator was configured with. Generators are pure and can be replaced per
// descriptor or per validator configuration.
//
// The wording of MinLength and MaxLength is kept exactly as existing message
// consumers know it, even though "should less than" reads oddly for a minimum
// bound.
package message

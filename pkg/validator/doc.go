// Package validator provides the built-in field validators and the result
// types shared by every rule.
//
// A validator is a Factory: it takes a Config (state path, validator kind,
// field key, optional comparison argument, default value and message
// generator) and builds a Rule. A Rule is a pure function from a state
// snapshot to a Result; it captures only its configuration, so the same Rule
// can be applied to any number of states, concurrently if needed.
//
// # Architecture
//
// Each source file groups a family of validators:
//   - string_rules.go      – Required, MinLength, MaxLength
//   - comparable_rules.go  – CompareFields
//   - format_rules.go      – IsEmail
//   - pattern_rules.go     – Regex
//
// Registry maps validator kinds to factories and carries an explicit fallback
// factory (Required in the default registry) used for kinds it does not know.
//
// # Errors
//
// Two kinds of failure are kept apart. Construction errors (missing kind or
// key, unusable comparison argument) are returned by NewResult and by the
// factories as Go errors. Data failures are never errors: they are reported
// as a Result with Valid set to false and a populated ErrorDetail.
//
// # Usage
//
//	rule, err := validator.MinLength(validator.Config{
//	    Path:        "user.password",
//	    Kind:        validator.KindMinLength,
//	    Key:         "password",
//	    CompareWith: 8,
//	})
//	if err != nil {
//	    return err
//	}
//	res := rule(state)
//	if !res.Valid {
//	    fmt.Println(res.Error.Message)
//	}
package validator

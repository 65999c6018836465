package rules

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RuleName derives the RuleSet key for a descriptor: "name-type" is trimmed,
// its first hyphen becomes a space, and the space separated segments are
// joined back with their first letter upper-cased.
//
//	RuleName("firstName", "required")     // FirstNameRequired
//	RuleName("firstName", "customLength") // FirstNameCustomLength
func RuleName(name, kind string) string {
	s := strings.TrimSpace(name + "-" + kind)
	s = strings.Replace(s, "-", " ", 1)

	var b strings.Builder
	b.Grow(len(s))
	for _, seg := range strings.Split(s, " ") {
		b.WriteString(capitalizeFirst(seg))
	}
	return b.String()
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	// Casers are stateful, so each call gets its own.
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}

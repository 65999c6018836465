package validator

import (
	"regexp"

	"github.com/dmitrymomot/formrules/pkg/message"
)

// emailPattern is matched anywhere in the value and is case-sensitive:
// upper-case addresses do not match. Hyphens are allowed in domain labels
// but not in the local part.
var emailPattern = regexp.MustCompile(
	"[a-z0-9!#$%&'*+/=?^_`{|}~.]+(?:\\.[a-z0-9!#$%&'*+/=?^_`{|}~.]+)*" +
		"@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\\.)+[a-z]{2,}\\b",
)

// IsEmail passes when the (defaulted) value looks like an email address.
func IsEmail(cfg Config) (Rule, error) {
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return func(state any) Result {
		v := cfg.valueOrDefault(state)
		return cfg.result(emailPattern.MatchString(message.Format(v)), v, message.Email)
	}, nil
}

package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/formrules/pkg/message"
	"github.com/dmitrymomot/formrules/pkg/statepath"
)

// Built-in validator kinds.
const (
	KindRequired      = "required"
	KindMinLength     = "minLength"
	KindMaxLength     = "maxLength"
	KindCompareFields = "compareFields"
	KindIsEmail       = "isEmail"
	KindRegex         = "regex"
)

// ErrorDetail describes a single failed rule.
type ErrorDetail struct {
	Key     string `json:"key" yaml:"key"`
	Type    string `json:"type" yaml:"type"`
	Message string `json:"message" yaml:"message"`
}

// Result is the outcome of applying one Rule. Error is nil iff Valid is true.
type Result struct {
	Valid bool         `json:"valid" yaml:"valid"`
	Error *ErrorDetail `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewResult builds a Result. Kind and key are checked before valid is looked
// at, so a malformed call fails even for passing results.
func NewResult(valid bool, kind, key, msg string) (Result, error) {
	if kind == "" || key == "" {
		return Result{}, ErrKindAndKeyRequired
	}
	if valid {
		return Result{Valid: true}, nil
	}
	return Result{Error: &ErrorDetail{Key: key, Type: kind, Message: msg}}, nil
}

// Rule validates a state snapshot.
type Rule func(state any) Result

// Config configures a single validator.
type Config struct {
	// Path locates the field value inside the state.
	Path string
	// Kind is reported as ErrorDetail.Type on failure.
	Kind string
	// Key is the field name reported as ErrorDetail.Key on failure.
	Key string
	// CompareWith is the validator argument: a length bound, a pattern or a sibling path.
	CompareWith any
	// DefaultValue replaces a missing or falsy value. Validators that default
	// use the empty string when it is nil.
	DefaultValue any
	// Message overrides the validator's message generator.
	Message message.Func
}

// Factory builds a Rule from a Config.
type Factory interface {
	Build(cfg Config) (Rule, error)
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(cfg Config) (Rule, error)

func (f FactoryFunc) Build(cfg Config) (Rule, error) {
	return f(cfg)
}

func (c Config) check() error {
	if c.Kind == "" || c.Key == "" {
		return ErrKindAndKeyRequired
	}
	return nil
}

// valueOrDefault returns the value at Path, or the default when the path is
// missing or the value is falsy.
func (c Config) valueOrDefault(state any) any {
	def := c.DefaultValue
	if def == nil {
		def = ""
	}
	v := statepath.GetOr(state, c.Path, def)
	if !statepath.Truthy(v) {
		return def
	}
	return v
}

// result renders the message only for failures.
func (c Config) result(valid bool, value any, fallback message.Func) Result {
	if valid {
		return Result{Valid: true}
	}
	msg := message.Or(c.Message, fallback)(value, c.Kind, c.Key, c.CompareWith)
	return Result{Error: &ErrorDetail{Key: c.Key, Type: c.Kind, Message: msg}}
}

// ValidationErrors is a list of failures that satisfies the error interface.
type ValidationErrors []ErrorDetail

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Key, err.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidationFailed) match.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ErrorDetail) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(key string) bool {
	for _, err := range ve {
		if err.Key == key {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for key.
func (ve ValidationErrors) Get(key string) []string {
	var messages []string
	for _, err := range ve {
		if err.Key == key {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the failing keys in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Key] {
			fields = append(fields, err.Key)
			seen[err.Key] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error chain.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

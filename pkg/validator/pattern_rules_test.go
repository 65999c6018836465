package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestRegex(t *testing.T) {
	t.Parallel()

	digit := regexp.MustCompile(`\d`)

	t.Run("fails when the pattern does not match", func(t *testing.T) {
		rule := build(t, validator.Regex, validator.Config{Path: "email", Kind: "email-regex", Key: "key", CompareWith: digit})
		res := rule(map[string]any{"email": "algoalgoalgo"})
		assert.False(t, res.Valid)
		require.NotNil(t, res.Error)
		assert.Equal(t, "email-regex", res.Error.Type)
		assert.Equal(t, "key need to be email-regex. algoalgoalgo is invalid", res.Error.Message)
	})

	t.Run("passes when the pattern matches", func(t *testing.T) {
		rule := build(t, validator.Regex, validator.Config{Path: "email", Kind: "email-regex", Key: "key", CompareWith: digit})
		res := rule(map[string]any{"email": "1234567890"})
		assert.True(t, res.Valid)
		assert.Nil(t, res.Error)
	})

	t.Run("compiles string patterns", func(t *testing.T) {
		rule := build(t, validator.Regex, validator.Config{Path: "zip", Kind: "regex", Key: "zip", CompareWith: `^\d{4}$`})
		assert.True(t, rule(map[string]any{"zip": "2000"}).Valid)
		assert.False(t, rule(map[string]any{"zip": "20000"}).Valid)
	})

	t.Run("matches stringified values", func(t *testing.T) {
		rule := build(t, validator.Regex, validator.Config{Path: "zip", Kind: "regex", Key: "zip", CompareWith: `^\d+$`})
		assert.True(t, rule(map[string]any{"zip": 2000}).Valid)
	})

	t.Run("rejects invalid patterns", func(t *testing.T) {
		_, err := validator.Regex(validator.Config{Path: "zip", Kind: "regex", Key: "zip", CompareWith: "("})
		assert.ErrorIs(t, err, validator.ErrInvalidCompareWith)

		_, err = validator.Regex(validator.Config{Path: "zip", Kind: "regex", Key: "zip", CompareWith: 5})
		assert.ErrorIs(t, err, validator.ErrInvalidCompareWith)
	})
}

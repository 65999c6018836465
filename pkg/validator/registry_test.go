package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/validator"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	reg := validator.DefaultRegistry()
	assert.Equal(t, []string{"compareFields", "isEmail", "maxLength", "minLength", "regex", "required"}, reg.Kinds())

	_, ok := reg.Lookup("isEmail")
	assert.True(t, ok)

	_, ok = reg.Lookup("customLength")
	assert.False(t, ok)

	rule, err := reg.Fallback().Build(validator.Config{Path: "a", Kind: "customLength", Key: "a"})
	require.NoError(t, err)
	res := rule(map[string]any{})
	require.NotNil(t, res.Error)
	assert.Equal(t, "a is required", res.Error.Message)
}

func TestRegistry_With(t *testing.T) {
	t.Parallel()

	always := validator.FactoryFunc(func(cfg validator.Config) (validator.Rule, error) {
		return func(any) validator.Result { return validator.Result{Valid: true} }, nil
	})

	base := validator.DefaultRegistry()
	extended := base.With("always", always)

	_, ok := extended.Lookup("always")
	assert.True(t, ok)
	_, ok = base.Lookup("always")
	assert.False(t, ok, "base registry must not change")

	trimmed := extended.With("required", nil)
	_, ok = trimmed.Lookup("required")
	assert.False(t, ok)
	_, ok = extended.Lookup("required")
	assert.True(t, ok)

	swapped := base.WithFallback(always)
	rule, err := swapped.Fallback().Build(validator.Config{})
	require.NoError(t, err)
	assert.True(t, rule(nil).Valid)

	assert.Empty(t, validator.NewRegistry(nil).Kinds())
	assert.NotNil(t, validator.NewRegistry(nil).Fallback())
}

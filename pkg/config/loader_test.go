package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/config"
)

type testConfig struct {
	Level       string   `env:"FORMRULES_TEST_LEVEL" envDefault:"info"`
	Concurrency int      `env:"FORMRULES_TEST_CONCURRENCY" envDefault:"4"`
	Kinds       []string `env:"FORMRULES_TEST_KINDS" envSeparator:","`
}

type requiredConfig struct {
	Value string `env:"FORMRULES_TEST_REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, 4, cfg.Concurrency)
		assert.Empty(t, cfg.Kinds)
	})

	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("FORMRULES_TEST_LEVEL", "debug")
		t.Setenv("FORMRULES_TEST_CONCURRENCY", "16")
		t.Setenv("FORMRULES_TEST_KINDS", "required,isEmail")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "debug", cfg.Level)
		assert.Equal(t, 16, cfg.Concurrency)
		assert.Equal(t, []string{"required", "isEmail"}, cfg.Kinds)
	})

	t.Run("reports parse errors", func(t *testing.T) {
		t.Setenv("FORMRULES_TEST_CONCURRENCY", "many")
		var cfg testConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})

	t.Run("reports missing required values", func(t *testing.T) {
		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("rejects nil pointers", func(t *testing.T) {
		assert.ErrorIs(t, config.Load[testConfig](nil), config.ErrNilPointer)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads explicit files without overriding the environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env.test")
		require.NoError(t, os.WriteFile(path, []byte("FORMRULES_TEST_FROM_FILE=file\nFORMRULES_TEST_PRESET=file\n"), 0o600))
		t.Setenv("FORMRULES_TEST_PRESET", "env")
		t.Cleanup(func() { os.Unsetenv("FORMRULES_TEST_FROM_FILE") })

		require.NoError(t, config.LoadEnv(path))
		assert.Equal(t, "file", os.Getenv("FORMRULES_TEST_FROM_FILE"))
		assert.Equal(t, "env", os.Getenv("FORMRULES_TEST_PRESET"))
	})

	t.Run("missing explicit file fails", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
		assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("missing default file is fine", func(t *testing.T) {
		t.Chdir(t.TempDir())
		assert.NoError(t, config.LoadEnv())
	})
}

package loader_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formrules/pkg/loader"
	"github.com/dmitrymomot/formrules/pkg/rules"
	"github.com/dmitrymomot/formrules/pkg/validator"
)

const yamlRules = `
rules:
  - name: firstName
    type: required
    stateMap: user.firstName
  - name: password
    type: minLength
    stateMap: user.password
    compareWith: 8
    message: "{key} needs {compare} characters, got {value}"
  - name: nickname
    type: maxLength
    stateMap: user.nickname
    compareWith: 5
    defaultValue: anon
`

const jsonRules = `{
  "rules": [
    {"name": "email", "type": "isEmail", "stateMap": "email"},
    {"name": "zip", "type": "regex", "stateMap": "zip", "compareWith": "^\\d{4}$"},
    {"name": "confirm", "type": "compareFields", "stateMap": "email", "compareWith": "confirmEmail"}
  ]
}`

func TestParse_YAML(t *testing.T) {
	t.Parallel()

	descriptors, err := loader.Parse([]byte(yamlRules), loader.FormatYAML)
	require.NoError(t, err)
	require.Len(t, descriptors, 3)

	assert.Equal(t, "firstName", descriptors[0].Name)
	assert.Equal(t, "required", descriptors[0].Type)
	assert.Equal(t, "user.firstName", descriptors[0].StateMap)
	assert.Nil(t, descriptors[0].Message)

	assert.Equal(t, 8, descriptors[1].CompareWith)
	require.NotNil(t, descriptors[1].Message)
	assert.Equal(t, "password needs 8 characters, got abc", descriptors[1].Message("abc", "minLength", "password", 8))

	assert.Equal(t, "anon", descriptors[2].DefaultValue)
}

func TestParse_JSON(t *testing.T) {
	t.Parallel()

	descriptors, err := loader.Parse([]byte(jsonRules), loader.FormatJSON)
	require.NoError(t, err)
	require.Len(t, descriptors, 3)
	assert.Equal(t, `^\d{4}$`, descriptors[1].CompareWith)
	assert.Equal(t, "confirmEmail", descriptors[2].CompareWith)
}

func TestParse_CompilesEndToEnd(t *testing.T) {
	t.Parallel()

	descriptors, err := loader.Parse([]byte(yamlRules), loader.FormatYAML)
	require.NoError(t, err)
	set, err := rules.Compile(validator.DefaultRegistry(), descriptors)
	require.NoError(t, err)

	state, err := loader.ParseState([]byte(`{"user": {"firstName": "", "password": "abc", "nickname": ""}}`), loader.FormatJSON)
	require.NoError(t, err)

	res := rules.ValidateSet(set, state, nil)
	assert.False(t, res.Valid)
	assert.Equal(t, map[string][]rules.Entry{
		"firstName": {{Type: "required", Message: "firstName is required"}},
		"password":  {{Type: "minLength", Message: "password needs 8 characters, got abc"}},
	}, res.Errors)

	jsonDescriptors, err := loader.Parse([]byte(jsonRules), loader.FormatJSON)
	require.NoError(t, err)
	set, err = rules.Compile(validator.DefaultRegistry(), jsonDescriptors)
	require.NoError(t, err)

	state, err = loader.ParseState([]byte("email: algo@algo.com\nconfirmEmail: algo@algo.com\nzip: \"2000\"\n"), loader.FormatYAML)
	require.NoError(t, err)
	assert.True(t, rules.ValidateSet(set, state, nil).Valid)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown keys", func(t *testing.T) {
		_, err := loader.Parse([]byte("rules:\n  - name: a\n    kind: required\n"), loader.FormatYAML)
		assert.ErrorIs(t, err, loader.ErrDecode)

		_, err = loader.Parse([]byte(`{"rules": [{"name": "a", "kind": "required"}]}`), loader.FormatJSON)
		assert.ErrorIs(t, err, loader.ErrDecode)
	})

	t.Run("rejects malformed documents", func(t *testing.T) {
		_, err := loader.Parse([]byte(`{"rules": [`), loader.FormatJSON)
		assert.ErrorIs(t, err, loader.ErrDecode)

		_, err = loader.Parse([]byte("rules: [\n"), loader.FormatYAML)
		assert.ErrorIs(t, err, loader.ErrDecode)
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		_, err := loader.Parse([]byte(`rules = []`), loader.Format("toml"))
		assert.ErrorIs(t, err, loader.ErrUnknownFormat)
	})

	t.Run("empty yaml has no rules", func(t *testing.T) {
		descriptors, err := loader.Parse(nil, loader.FormatYAML)
		require.NoError(t, err)
		assert.Empty(t, descriptors)
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	descriptors, err := loader.Load(strings.NewReader(jsonRules), loader.FormatJSON)
	require.NoError(t, err)
	assert.Len(t, descriptors, 3)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	t.Run("yaml and yml", func(t *testing.T) {
		for _, name := range []string{"rules.yaml", "rules.YML"} {
			descriptors, err := loader.LoadFile(write(name, yamlRules))
			require.NoError(t, err, name)
			assert.Len(t, descriptors, 3)
		}
	})

	t.Run("json", func(t *testing.T) {
		descriptors, err := loader.LoadFile(write("rules.json", jsonRules))
		require.NoError(t, err)
		assert.Len(t, descriptors, 3)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := loader.LoadFile(write("rules.txt", yamlRules))
		assert.ErrorIs(t, err, loader.ErrUnknownFormat)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.LoadFile(filepath.Join(dir, "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("decode errors name the file", func(t *testing.T) {
		path := write("broken.json", `{`)
		_, err := loader.LoadFile(path)
		require.ErrorIs(t, err, loader.ErrDecode)
		assert.Contains(t, err.Error(), path)
	})
}

func TestLoadStateFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"email": "algo@algo.com", "tags": ["a"]}`), 0o600))

	state, err := loader.LoadStateFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"email": "algo@algo.com", "tags": []any{"a"}}, state)

	_, err = loader.LoadStateFile(filepath.Join(dir, "state.ini"))
	assert.ErrorIs(t, err, loader.ErrUnknownFormat)
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	f, err := loader.FormatFromPath("a/b/rules.Json")
	require.NoError(t, err)
	assert.Equal(t, loader.FormatJSON, f)

	f, err = loader.FormatFromPath("rules.yml")
	require.NoError(t, err)
	assert.Equal(t, loader.FormatYAML, f)

	_, err = loader.FormatFromPath("rules")
	assert.ErrorIs(t, err, loader.ErrUnknownFormat)
}

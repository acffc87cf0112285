package options

import (
	"testing"

	"github.com/arthur-debert/flatcfg/pkg/errors"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMapBooleans(t *testing.T) {
	opts, err := FromMap(map[string]any{
		"typescript": false,
		"node":       true,
		"toml":       "true",
		"yaml":       "0",
	})
	require.NoError(t, err)

	assert.Equal(t, Disable[TypeScriptOptions](), opts.TypeScript)
	assert.Equal(t, Enable[NodeOptions](), opts.Node)
	assert.Equal(t, Enable[TOMLOptions](), opts.TOML)
	assert.Equal(t, Disable[YAMLOptions](), opts.YAML)
	assert.Nil(t, opts.JSONC, "absent keys keep their default")
	assert.Nil(t, opts.Stylistic)
}

func TestFromMapMappingsEnable(t *testing.T) {
	opts, err := FromMap(map[string]any{
		"stylistic": map[string]any{"quotes": "double", "semi": "false", "indent": "4"},
		"yaml": map[string]any{
			"overrides": map[string]any{"yml/plain-scalar": []any{"error", "never"}},
			"files":     []any{"**/*.yaml"},
		},
		"typescript": map[string]any{"tsconfigPath": "./tsconfig.json", "strict": true},
		"node":       map[string]any{"security": false},
		"javascript": map[string]any{"overrides": map[string]any{"no-console": "off"}},
	})
	require.NoError(t, err)

	require.NotNil(t, opts.Stylistic)
	assert.True(t, opts.Stylistic.Enabled)
	assert.Equal(t, "double", opts.Stylistic.Options.Quotes)
	assert.Equal(t, 4, opts.Stylistic.Options.Indent)
	require.NotNil(t, opts.Stylistic.Options.Semi)
	assert.False(t, *opts.Stylistic.Options.Semi)

	require.NotNil(t, opts.YAML)
	assert.Equal(t, []any{"error", "never"}, opts.YAML.Options.Overrides["yml/plain-scalar"])
	assert.Equal(t, []string{"**/*.yaml"}, opts.YAML.Options.Files)

	assert.Equal(t, "./tsconfig.json", opts.TypeScript.Options.TSConfigPath)
	assert.True(t, opts.TypeScript.Options.Strict)

	require.NotNil(t, opts.Node.Options.Security)
	assert.False(t, *opts.Node.Options.Security)

	assert.Equal(t, fragment.Rules{"no-console": "off"}, opts.JavaScript.Overrides)
}

func TestFromMapRawFragment(t *testing.T) {
	opts, err := FromMap(map[string]any{
		"name":  "project",
		"files": []any{"src/**/*.js"},
		"rules": map[string]any{"no-alert": "off"},
		"languageOptions": map[string]any{
			"ecmaVersion": 2024,
			"globals":     map[string]any{"jQuery": "readonly"},
		},
		"unknown": "ignored",
	})
	require.NoError(t, err)

	raw, ok := opts.RawFragment()
	require.True(t, ok)
	assert.Equal(t, "project", raw.Name)
	assert.Equal(t, []string{"src/**/*.js"}, raw.Files)
	assert.Equal(t, fragment.Rules{"no-alert": "off"}, raw.Rules)
	require.NotNil(t, raw.LanguageOptions)
	assert.Equal(t, 2024, raw.LanguageOptions.EcmaVersion)
	assert.Equal(t, "readonly", raw.LanguageOptions.Globals["jQuery"])
}

func TestFromMapNoRawFragment(t *testing.T) {
	opts, err := FromMap(map[string]any{"node": true})
	require.NoError(t, err)
	_, ok := opts.RawFragment()
	assert.False(t, ok)
}

func TestFromMapRejectsWrongShapes(t *testing.T) {
	tests := []struct {
		name  string
		input map[string]any
	}{
		{"number toggle", map[string]any{"node": 3}},
		{"list toggle", map[string]any{"yaml": []any{"a"}}},
		{"not a boolean string", map[string]any{"toml": "sometimes"}},
		{"bad sub option", map[string]any{"stylistic": map[string]any{"indent": "wide"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromMap(tt.input)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "got %v", err)
		})
	}
}

func TestFragmentsFromList(t *testing.T) {
	frags, err := FragmentsFromList([]any{
		map[string]any{"files": []any{"**/*.yaml"}, "rules": map[string]any{"yml/indent": []any{"error", 4}}},
		map[string]any{"ignores": []any{"fixtures/"}},
	})
	require.NoError(t, err)
	require.Len(t, frags, 2)
	assert.Equal(t, []any{"error", 4}, frags[0].Rules["yml/indent"])
	assert.True(t, frags[1].IsGlobalIgnore())

	frags, err = FragmentsFromList(nil)
	assert.NoError(t, err)
	assert.Nil(t, frags)

	_, err = FragmentsFromList("nope")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestMalformedGlobsAreRejected(t *testing.T) {
	t.Run("raw fragment files", func(t *testing.T) {
		_, err := FromMap(map[string]any{"files": []any{"src/**/*.js", "!(x)"}})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrGlobInvalid))
		assert.Equal(t, "!(x)", errors.GetErrorDetails(err)["pattern"])
	})

	t.Run("raw fragment ignores", func(t *testing.T) {
		_, err := FromMap(map[string]any{"ignores": []any{"!(dist"}})
		assert.True(t, errors.IsErrorCode(err, errors.ErrGlobInvalid))
	})

	t.Run("configs entry", func(t *testing.T) {
		_, err := FragmentsFromList([]any{
			map[string]any{"name": "ok", "files": []any{"**/*.ts"}},
			map[string]any{"name": "bad", "ignores": []any{"!(x)"}},
		})
		assert.True(t, errors.IsErrorCode(err, errors.ErrGlobInvalid))
	})

	t.Run("valid patterns pass", func(t *testing.T) {
		opts, err := FromMap(map[string]any{"files": []any{"**/*.y?(a)ml"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"**/*.y?(a)ml"}, opts.Files)
	})
}

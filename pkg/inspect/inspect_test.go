package inspect_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/flatcfg/pkg/dialects"
	"github.com/arthur-debert/flatcfg/pkg/errors"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/inspect"
	"github.com/arthur-debert/flatcfg/pkg/options"
	"github.com/arthur-debert/flatcfg/pkg/preset"
	"github.com/arthur-debert/flatcfg/pkg/probe"
	"github.com/arthur-debert/flatcfg/pkg/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLaterFragmentsWin(t *testing.T) {
	frags := []fragment.Fragment{
		{Name: "first", Rules: fragment.Rules{"semi": "error", "eqeqeq": "error"}},
		{Name: "ts", Files: []string{"**/*.ts"}, Rules: fragment.Rules{"semi": "off"}},
		{Name: "last", Rules: fragment.Rules{"eqeqeq": "warn"}, Settings: map[string]any{"k": 1}},
	}

	tests := []struct {
		path     string
		applied  []string
		semi     string
		eqeqeq   string
		selected bool
	}{
		{"src/a.js", []string{"first", "last"}, "error", "warn", true},
		{"src/a.ts", []string{"first", "ts", "last"}, "off", "warn", true},
		{"notes.txt", nil, "off", "off", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			eff, err := inspect.File(frags, tt.path)
			require.NoError(t, err)

			assert.Equal(t, !tt.selected, eff.Ignored)
			assert.Equal(t, tt.applied, eff.Applied)
			assert.Equal(t, tt.semi, eff.Severity("semi"))
			assert.Equal(t, tt.eqeqeq, eff.Severity("eqeqeq"))
		})
	}
}

func TestFileFragmentIgnores(t *testing.T) {
	frags := []fragment.Fragment{
		{Name: "tests-excluded", Files: []string{"**/*.js"}, Ignores: []string{"test/**"}, Rules: fragment.Rules{"no-console": "error"}},
	}

	eff, err := inspect.File(frags, "test/a.js")
	require.NoError(t, err)
	assert.False(t, eff.Ignored, "default files still select it")
	_, set := eff.Rule("no-console")
	assert.False(t, set)
}

func TestFileGlobalIgnores(t *testing.T) {
	frags := []fragment.Fragment{
		{Ignores: []string{"**/dist/", "**/*.min.*"}},
		{Name: "all", Rules: fragment.Rules{"semi": "error"}},
	}

	for _, path := range []string{"dist/index.js", "pkg/dist/a/b.js", "vendor/jquery.min.js"} {
		t.Run(path, func(t *testing.T) {
			eff, err := inspect.File(frags, path)
			require.NoError(t, err)
			assert.True(t, eff.Ignored)
			assert.Contains(t, eff.Reason, "#0")
			assert.Empty(t, eff.Rules)
		})
	}
}

func TestFileMergesLanguageOptions(t *testing.T) {
	frags := []fragment.Fragment{
		{LanguageOptions: &fragment.LanguageOptions{EcmaVersion: 2022, Globals: map[string]string{"window": "readonly"}}},
		{LanguageOptions: &fragment.LanguageOptions{SourceType: "module", Globals: map[string]string{"process": "readonly"}}},
	}

	eff, err := inspect.File(frags, "index.mjs")
	require.NoError(t, err)
	require.NotNil(t, eff.LanguageOptions)
	assert.Equal(t, 2022, eff.LanguageOptions.EcmaVersion)
	assert.Equal(t, "module", eff.LanguageOptions.SourceType)
	assert.Equal(t, map[string]string{"window": "readonly", "process": "readonly"}, eff.LanguageOptions.Globals)
	assert.NotContains(t, frags[0].LanguageOptions.Globals, "process", "inputs are not modified")
}

func TestFileInvalidGlob(t *testing.T) {
	frags := []fragment.Fragment{{Name: "bad", Files: []string{"**/!(a).js"}}}

	_, err := inspect.File(frags, "a.js")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrGlobInvalid))
}

func TestFileWithComposedConfig(t *testing.T) {
	p := preset.New(preset.WithProbe(probe.Installed()))
	frags, err := p.Build(context.Background(), options.Options{
		Stylistic: options.On(options.StylisticOptions{Quotes: "double"}),
	})
	require.NoError(t, err)

	t.Run("script", func(t *testing.T) {
		eff, err := inspect.File(frags, "src/index.js")
		require.NoError(t, err)

		assert.False(t, eff.Ignored)
		assert.Contains(t, eff.Applied, dialects.NameJavaScript)
		assert.NotContains(t, eff.Applied, dialects.NameYAML)
		assert.Equal(t, "double", eff.Rules["@stylistic/quotes"].([]any)[1])
	})

	t.Run("yaml", func(t *testing.T) {
		eff, err := inspect.File(frags, ".github/workflows/ci.yml")
		require.NoError(t, err)

		assert.Contains(t, eff.Applied, dialects.NameYAML)
		assert.Equal(t, providers.YAMLParser, eff.LanguageOptions.Parser)
		assert.Equal(t, "error", eff.Severity("yml/quotes"))
	})

	t.Run("package_json", func(t *testing.T) {
		eff, err := inspect.File(frags, "package.json")
		require.NoError(t, err)

		assert.Contains(t, eff.Applied, dialects.NameJSONC)
		assert.Contains(t, eff.Applied, dialects.NameSortPackageJSON)
		assert.NotContains(t, eff.Applied, dialects.NameSortTSConfig)
	})

	t.Run("ignored", func(t *testing.T) {
		eff, err := inspect.File(frags, "node_modules/left-pad/index.js")
		require.NoError(t, err)
		assert.True(t, eff.Ignored)
	})
}

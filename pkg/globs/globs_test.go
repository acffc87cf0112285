package globs

import (
	"testing"

	"github.com/arthur-debert/flatcfg/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIgnoreListIsACopy(t *testing.T) {
	list := IgnoreList()
	require.Len(t, list, 22)
	list[0] = "changed"
	assert.Equal(t, ".git/", Ignores[0])
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
	}{
		{YAML, "**/*.y{,a}ml"},
		{JSON, "**/*.json{,c}"},
		{"**/*.@(js|mjs|cjs)", "**/*.{js,mjs,cjs}"},
		{"**/node_modules/", "**/node_modules/**"},
		{TOML, TOML},
		{`\?(x)`, `\?(x)`},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, err := Translate(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTranslateRejectsUnsupportedGroups(t *testing.T) {
	for _, pattern := range []string{"!(a)", "**/*.+(js)", "*(x)", "?(unterminated"} {
		t.Run(pattern, func(t *testing.T) {
			_, err := Translate(pattern)
			assert.True(t, errors.IsErrorCode(err, errors.ErrGlobInvalid))
			assert.Equal(t, pattern, errors.GetErrorDetails(err)["pattern"])
		})
	}
}

func TestMatchDialectGlobs(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		path    string
		want    bool
	}{
		{"yml", YAML, "ci/workflow.yml", true},
		{"yaml", YAML, "docker-compose.yaml", true},
		{"not yaml", YAML, "notes.yxml", false},
		{"json", JSON, "data/a.json", true},
		{"jsonc", JSON, ".vscode/settings.jsonc", true},
		{"json5 is not json", JSON, "a.json5", false},
		{"toml", TOML, "pyproject.toml", true},
		{"package.json nested", PackageJSON, "packages/web/package.json", true},
		{"tsconfig", TSConfig, "tsconfig.json", true},
		{"tsconfig variant", TSAnyConfig, "tsconfig.build.json", true},
		{"tsconfig variant excludes base", TSAnyConfig, "tsconfig.json", false},
		{"dot slash prefix", TOML, "./Cargo.toml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Match(tt.pattern, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchAnyIgnores(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{".git/HEAD", true},
		{"node_modules/react/index.js", true},
		{"packages/app/node_modules/x/y.js", true},
		{"dist/bundle.js", true},
		{"pnpm-lock.yaml", true},
		{"CHANGELOG.md", true},
		{"docs/CHANGELOG-2023.md", true},
		{"vendor/jquery.min.js", true},
		{"LICENSE", true},
		{"src/index.js", false},
		{"src/distance.js", false},
		{"nested/.git/HEAD", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := MatchAny(Ignores, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchAnyStopsOnInvalidPattern(t *testing.T) {
	_, err := MatchAny([]string{"!(x)", "**"}, "a.js")
	assert.True(t, errors.IsErrorCode(err, errors.ErrGlobInvalid))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(Ignores...))
	assert.NoError(t, Validate(YAML, JSON, TOML, PackageJSON, TSConfig, TSAnyConfig))
	assert.Error(t, Validate(JSON, "!(x)"))
}

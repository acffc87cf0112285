package probe

import (
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func installPackage(t *testing.T, fs afero.Fs, dir, name string) {
	t.Helper()
	pkgDir := filepath.Join(dir, "node_modules", filepath.FromSlash(name))
	require.NoError(t, fs.MkdirAll(pkgDir, 0755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(pkgDir, "package.json"), []byte(`{"name":"`+name+`"}`), 0644))
}

func TestNodeModulesProbe(t *testing.T) {
	fs := afero.NewMemMapFs()
	root := filepath.FromSlash("/work/repo/packages/app")

	installPackage(t, fs, root, "typescript")
	installPackage(t, fs, filepath.FromSlash("/work/repo"), "@stylistic/eslint-plugin")
	require.NoError(t, fs.MkdirAll(filepath.Join(root, "node_modules", "broken"), 0755))

	p := NewNodeModulesProbe(fs, root)

	tests := []struct {
		name string
		want bool
	}{
		{"typescript", true},
		{"@stylistic/eslint-plugin", true},
		{"broken", false},
		{"eslint-plugin-toml", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.PackageExists(tt.name))
		})
	}

	dir, ok := p.PackageDir("@stylistic/eslint-plugin")
	require.True(t, ok)
	assert.Equal(t, filepath.FromSlash("/work/repo/node_modules/@stylistic/eslint-plugin"), dir)
}

func TestNodeModulesProbeDoesNotLookBelowRoot(t *testing.T) {
	fs := afero.NewMemMapFs()
	installPackage(t, fs, filepath.FromSlash("/work/repo/packages/app"), "typescript")

	p := NewNodeModulesProbe(fs, filepath.FromSlash("/work/repo"))
	assert.False(t, p.PackageExists("typescript"))
}

func TestStaticProbe(t *testing.T) {
	p := Installed("typescript", "eslint-plugin-n")
	assert.True(t, p.PackageExists("typescript"))
	assert.False(t, p.PackageExists("eslint-plugin-yml"))

	assert.False(t, StaticProbe(nil).PackageExists("typescript"))
	assert.True(t, Everything{}.PackageExists("anything"))
}

type countingProbe struct {
	calls atomic.Int32
}

func (c *countingProbe) PackageExists(name string) bool {
	c.calls.Add(1)
	return name == "typescript"
}

func TestMemoize(t *testing.T) {
	inner := &countingProbe{}
	p := Memoize(inner)

	for i := 0; i < 3; i++ {
		assert.True(t, p.PackageExists("typescript"))
		assert.False(t, p.PackageExists("other"))
	}
	assert.Equal(t, int32(2), inner.calls.Load())
	assert.Same(t, p, Memoize(p))
}

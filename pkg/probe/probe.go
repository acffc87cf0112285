// Package probe answers "is package X installed" for the project being
// configured. Feature defaults and provider resolution both consult it.
package probe

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"

	"github.com/arthur-debert/flatcfg/pkg/logging"
)

// Probe reports whether a package can be found from the project root
type Probe interface {
	PackageExists(name string) bool
}

// NodeModulesProbe looks for node_modules/<name>/package.json in the root
// directory and then in each parent, the way the host runtime resolves
// packages.
type NodeModulesProbe struct {
	fs   afero.Fs
	root string
}

// NewNodeModulesProbe creates a probe rooted at root on the given filesystem
func NewNodeModulesProbe(fs afero.Fs, root string) *NodeModulesProbe {
	return &NodeModulesProbe{fs: fs, root: filepath.Clean(root)}
}

// NewOSProbe creates a probe over the real filesystem, rooted at the working
// directory.
func NewOSProbe() *NodeModulesProbe {
	root, err := os.Getwd()
	if err != nil {
		root = "."
	}
	return NewNodeModulesProbe(afero.NewOsFs(), root)
}

// PackageDir returns the directory the package was found in
func (p *NodeModulesProbe) PackageDir(name string) (string, bool) {
	if name == "" {
		return "", false
	}

	dir := p.root
	for {
		candidate := filepath.Join(dir, "node_modules", filepath.FromSlash(name))
		info, err := p.fs.Stat(filepath.Join(candidate, "package.json"))
		if err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func (p *NodeModulesProbe) PackageExists(name string) bool {
	dir, ok := p.PackageDir(name)
	logger := logging.GetLogger("probe")
	logger.Trace().
		Str("package", name).
		Bool("found", ok).
		Str("dir", dir).
		Msg("Probed package")
	return ok
}

// StaticProbe answers from a fixed set of package names
type StaticProbe map[string]bool

// Installed builds a StaticProbe reporting the named packages as present
func Installed(names ...string) StaticProbe {
	p := make(StaticProbe, len(names))
	for _, n := range names {
		p[n] = true
	}
	return p
}

func (p StaticProbe) PackageExists(name string) bool {
	return p[name]
}

// Everything reports every package as installed
type Everything struct{}

func (Everything) PackageExists(string) bool { return true }

type memo struct {
	inner Probe
	seen  sync.Map
}

// Memoize caches the answers of p. The returned probe is safe for
// concurrent use if p is.
func Memoize(p Probe) Probe {
	if _, ok := p.(*memo); ok {
		return p
	}
	return &memo{inner: p}
}

func (m *memo) PackageExists(name string) bool {
	if v, ok := m.seen.Load(name); ok {
		return v.(bool)
	}
	found := m.inner.PackageExists(name)
	m.seen.Store(name, found)
	return found
}

package providers

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/flatcfg/pkg/errors"
	"github.com/arthur-debert/flatcfg/pkg/registry"
)

//go:embed baselines/*.yaml
var baselineFS embed.FS

var builtin registry.Registry[*Package]

func init() {
	builtin = registry.New[*Package]()
	pkgs, err := LoadBaselines(baselineFS, "baselines")
	if err != nil {
		panic(fmt.Sprintf("loading built-in provider baselines: %v", err))
	}
	for _, p := range pkgs {
		registry.MustRegister(builtin, p.Name, p)
	}
}

// Builtin returns the registry of providers shipped with flatcfg
func Builtin() registry.Registry[*Package] {
	return builtin
}

// ParseBaseline decodes one YAML provider document
func ParseBaseline(data []byte) (*Package, error) {
	var p Package
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, errors.ErrProviderInvalid, "failed to parse provider baseline")
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadBaselines parses every .yaml file in dir of fsys
func LoadBaselines(fsys fs.FS, dir string) ([]*Package, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrProviderInvalid, "failed to list baselines in %s", dir)
	}

	var pkgs []*Package
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yaml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrProviderInvalid, "failed to read %s", entry.Name())
		}
		p, err := ParseBaseline(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, nil
}

package providers

import (
	"maps"
	"slices"

	"github.com/arthur-debert/flatcfg/pkg/errors"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
)

// Kind classifies what a provider package contributes
type Kind string

const (
	// KindRules is a package of rule definitions (core rules or a plugin)
	KindRules Kind = "plugin"
	// KindParser is a custom parser for a non-script dialect
	KindParser Kind = "parser"
	// KindData is a package that only ships data, such as global tables
	KindData Kind = "data"
)

// Package describes one third-party rule provider and the baseline
// configurations it publishes.
type Package struct {
	Name        string `yaml:"name"`
	Kind        Kind   `yaml:"kind"`
	Namespace   string `yaml:"namespace"`
	Description string `yaml:"description"`
	Homepage    string `yaml:"homepage"`

	// Configs are the named baseline configurations, each a list of fragments
	Configs map[string][]fragment.Fragment `yaml:"configs"`

	// Sets are named tables of global variables (readonly, writable, off)
	Sets map[string]map[string]string `yaml:"sets"`

	// List is a plain list of names, for data packages that export one
	List []string `yaml:"list"`
}

// Config returns copies of the fragments of the named baseline
func (p *Package) Config(name string) ([]fragment.Fragment, error) {
	frags, ok := p.Configs[name]
	if !ok {
		return nil, errors.Newf(errors.ErrBaselineNotFound, "package %s has no config %q", p.Name, name).
			WithDetail("package", p.Name).
			WithDetail("config", name)
	}
	return fragment.CloneAll(frags), nil
}

// ConfigRules merges the rules of every fragment of the named baseline
func (p *Package) ConfigRules(name string) (fragment.Rules, error) {
	frags, err := p.Config(name)
	if err != nil {
		return nil, err
	}
	layers := make([]fragment.Rules, 0, len(frags))
	for _, f := range frags {
		layers = append(layers, f.Rules)
	}
	return fragment.MergeRules(layers...), nil
}

// Set returns a copy of the named globals table
func (p *Package) Set(name string) (map[string]string, error) {
	set, ok := p.Sets[name]
	if !ok {
		return nil, errors.Newf(errors.ErrBaselineNotFound, "package %s has no set %q", p.Name, name).
			WithDetail("package", p.Name).
			WithDetail("set", name)
	}
	return maps.Clone(set), nil
}

// ConfigNames lists the baseline names, sorted
func (p *Package) ConfigNames() []string {
	names := slices.Collect(maps.Keys(p.Configs))
	names = append(names, slices.Collect(maps.Keys(p.Sets))...)
	slices.Sort(names)
	return names
}

// Plugins returns the plugin mapping a fragment needs to use this
// package's rules.
func (p *Package) Plugins() map[string]string {
	if p.Kind != KindRules || p.Namespace == "" {
		return nil
	}
	return map[string]string{p.Namespace: p.Name}
}

func (p *Package) validate() error {
	if p.Name == "" {
		return errors.New(errors.ErrProviderInvalid, "provider package has no name")
	}
	switch p.Kind {
	case KindRules, KindParser, KindData:
	default:
		return errors.Newf(errors.ErrProviderInvalid, "provider %s has unknown kind %q", p.Name, p.Kind).
			WithDetail("package", p.Name)
	}
	return nil
}

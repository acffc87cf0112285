// Package view holds the display records shared by the renderers
package view

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/arthur-debert/flatcfg/pkg/fragment"
)

// Plan lists the builder steps for a set of options, in output order
type Plan struct {
	Steps []string `json:"steps" yaml:"steps" toml:"steps"`

	// Enabled records the resolved toggles
	Enabled map[string]bool `json:"enabled" yaml:"enabled" toml:"enabled"`

	// Sources are the configuration files that were read
	Sources []string `json:"sources,omitempty" yaml:"sources,omitempty" toml:"sources,omitempty"`
}

// Provider describes one entry of the provider registry
type Provider struct {
	Name        string   `json:"name" yaml:"name" toml:"name"`
	Kind        string   `json:"kind" yaml:"kind" toml:"kind"`
	Namespace   string   `json:"namespace,omitempty" yaml:"namespace,omitempty" toml:"namespace,omitempty"`
	Installed   *bool    `json:"installed,omitempty" yaml:"installed,omitempty" toml:"installed,omitempty"`
	Configs     []string `json:"configs,omitempty" yaml:"configs,omitempty" toml:"configs,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
}

// Providers is the provider listing
type Providers struct {
	Providers []Provider `json:"providers" yaml:"providers" toml:"providers"`
}

// Setting splits a rule setting into its severity and its options rendered
// as compact JSON ("" when there are none).
func Setting(v any) (string, string) {
	sev := fragment.Severity(v)
	if sev == "" {
		sev = "?"
	}
	items, ok := v.([]any)
	if !ok || len(items) < 2 {
		return sev, ""
	}
	b, err := json.Marshal(items[1:])
	if err != nil {
		return sev, fmt.Sprint(items[1:]...)
	}
	return sev, string(b)
}

// RuleNames returns the rule identifiers of rules, sorted
func RuleNames(rules fragment.Rules) []string {
	return slices.Sorted(maps.Keys(rules))
}

// Label names a fragment for display; unnamed fragments use their index
func Label(f fragment.Fragment, i int) string {
	switch {
	case f.Name != "":
		return f.Name
	case f.IsGlobalIgnore():
		return fmt.Sprintf("#%d (global ignores)", i)
	default:
		return fmt.Sprintf("#%d", i)
	}
}

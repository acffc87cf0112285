package options

import (
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/probe"
)

// Stylistic defaults
const (
	DefaultIndent = 2
	DefaultQuotes = "single"
	DefaultSemi   = true
)

// StylisticConfig is the resolved stylistic block handed to the builders.
// A nil *StylisticConfig means stylistic rules are off.
type StylisticConfig struct {
	Indent    int
	Quotes    string
	Semi      bool
	Overrides fragment.Rules
}

// NodeConfig is the resolved Node.js block
type NodeConfig struct {
	Overrides fragment.Rules
	Security  bool
}

// Resolved has every toggle decided. A nil pointer means the feature is off.
type Resolved struct {
	JavaScript OverridesOptions
	TypeScript *TypeScriptOptions
	JSONC      *JSONCOptions
	YAML       *YAMLOptions
	TOML       *TOMLOptions
	Node       *NodeConfig
	Stylistic  *StylisticConfig
	Raw        *fragment.Fragment
}

// Normalize decides every toggle of opts. TypeScript defaults to whether
// the probe finds the typescript package; a nil probe counts as not found.
// Normalize does not validate option values.
func Normalize(opts Options, p probe.Probe) Resolved {
	r := Resolved{JavaScript: opts.JavaScript}

	tsDefault := p != nil && p.PackageExists("typescript")
	if ts, on := opts.TypeScript.enabled(tsDefault); on {
		r.TypeScript = &ts
	}
	if o, on := opts.JSONC.enabled(true); on {
		r.JSONC = &o
	}
	if o, on := opts.YAML.enabled(true); on {
		r.YAML = &o
	}
	if o, on := opts.TOML.enabled(false); on {
		r.TOML = &o
	}
	if o, on := opts.Node.enabled(false); on {
		security := true
		if o.Security != nil {
			security = *o.Security
		}
		r.Node = &NodeConfig{Overrides: o.Overrides, Security: security}
	}
	if o, on := opts.Stylistic.enabled(true); on {
		r.Stylistic = resolveStylistic(o)
	}
	if raw, ok := opts.RawFragment(); ok {
		r.Raw = &raw
	}
	return r
}

func resolveStylistic(o StylisticOptions) *StylisticConfig {
	cfg := &StylisticConfig{
		Indent:    DefaultIndent,
		Quotes:    DefaultQuotes,
		Semi:      DefaultSemi,
		Overrides: o.Overrides,
	}
	if o.Indent != 0 {
		cfg.Indent = o.Indent
	}
	if o.Quotes != "" {
		cfg.Quotes = o.Quotes
	}
	if o.Semi != nil {
		cfg.Semi = *o.Semi
	}
	return cfg
}

// TypeScriptEnabled reports whether the TypeScript dialect is on
func (r Resolved) TypeScriptEnabled() bool { return r.TypeScript != nil }

// NodeEnabled reports whether the Node.js dialect is on
func (r Resolved) NodeEnabled() bool { return r.Node != nil }

// StylisticEnabled reports whether stylistic rules are on
func (r Resolved) StylisticEnabled() bool { return r.Stylistic != nil }

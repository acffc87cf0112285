// Package inspect computes the configuration the host engine would apply to
// one file, given a composed fragment list.
package inspect

import (
	"maps"
	"strconv"

	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/globs"
	"github.com/arthur-debert/flatcfg/pkg/logging"
)

// DefaultFiles are linted even when no fragment lists them
var DefaultFiles = []string{"**/*.js", "**/*.mjs", "**/*.cjs"}

// Effective is the merged configuration for one path
type Effective struct {
	Path string `json:"path" yaml:"path" toml:"path"`

	// Ignored is set when a global ignore matches, or when no fragment
	// with files (nor DefaultFiles) selects the path
	Ignored bool   `json:"ignored" yaml:"ignored" toml:"ignored"`
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty" toml:"reason,omitempty"`

	// Applied names the fragments that apply, in order. Unnamed fragments
	// are listed by index.
	Applied []string `json:"applied,omitempty" yaml:"applied,omitempty" toml:"applied,omitempty"`

	LanguageOptions *fragment.LanguageOptions `json:"languageOptions,omitempty" yaml:"languageOptions,omitempty" toml:"languageOptions,omitempty"`
	LinterOptions   *fragment.LinterOptions   `json:"linterOptions,omitempty" yaml:"linterOptions,omitempty" toml:"linterOptions,omitempty"`
	Processor       string                    `json:"processor,omitempty" yaml:"processor,omitempty" toml:"processor,omitempty"`
	Plugins         map[string]string         `json:"plugins,omitempty" yaml:"plugins,omitempty" toml:"plugins,omitempty"`
	Rules           fragment.Rules            `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty"`
	Settings        map[string]any            `json:"settings,omitempty" yaml:"settings,omitempty" toml:"settings,omitempty"`
}

// File computes the effective configuration for path, which is relative to
// the project root. Fragments apply in list order and later fragments win.
// A malformed glob in any fragment is reported as ErrGlobInvalid.
func File(frags []fragment.Fragment, path string) (*Effective, error) {
	logger := logging.GetLogger("inspect")
	eff := &Effective{Path: path}

	for i, f := range frags {
		if !f.IsGlobalIgnore() {
			continue
		}
		ignored, err := globs.MatchAny(f.Ignores, path)
		if err != nil {
			return nil, err
		}
		if ignored {
			eff.Ignored = true
			eff.Reason = "matched global ignores of " + label(f, i)
			logger.Debug().Str("path", path).Str("fragment", label(f, i)).Msg("Path globally ignored")
			return eff, nil
		}
	}

	selected, err := globs.MatchAny(DefaultFiles, path)
	if err != nil {
		return nil, err
	}

	for i, f := range frags {
		if f.IsGlobalIgnore() {
			continue
		}
		applies, err := appliesTo(f, path)
		if err != nil {
			return nil, err
		}
		if !applies {
			continue
		}
		if len(f.Files) > 0 {
			selected = true
		}
		eff.apply(f, label(f, i))
	}

	if !selected {
		eff.Ignored = true
		eff.Reason = "no fragment selects this file"
		eff.Applied = nil
		eff.LanguageOptions = nil
		eff.LinterOptions = nil
		eff.Processor = ""
		eff.Plugins = nil
		eff.Rules = nil
		eff.Settings = nil
	}

	logger.Trace().
		Str("path", path).
		Bool("ignored", eff.Ignored).
		Int("fragments", len(eff.Applied)).
		Int("rules", len(eff.Rules)).
		Msg("Inspected path")
	return eff, nil
}

func appliesTo(f fragment.Fragment, path string) (bool, error) {
	if len(f.Files) > 0 {
		matched, err := globs.MatchAny(f.Files, path)
		if err != nil || !matched {
			return false, err
		}
	}
	if len(f.Ignores) > 0 {
		ignored, err := globs.MatchAny(f.Ignores, path)
		if err != nil || ignored {
			return false, err
		}
	}
	return true, nil
}

func (e *Effective) apply(f fragment.Fragment, name string) {
	e.Applied = append(e.Applied, name)
	if len(f.Rules) > 0 {
		e.Rules = fragment.MergeRules(e.Rules, f.Rules)
	}
	if len(f.Plugins) > 0 {
		if e.Plugins == nil {
			e.Plugins = map[string]string{}
		}
		maps.Copy(e.Plugins, f.Plugins)
	}
	if len(f.Settings) > 0 {
		if e.Settings == nil {
			e.Settings = map[string]any{}
		}
		maps.Copy(e.Settings, f.Settings)
	}
	if f.Processor != "" {
		e.Processor = f.Processor
	}
	if f.LinterOptions != nil {
		lo := *f.LinterOptions
		e.LinterOptions = &lo
	}
	if f.LanguageOptions != nil {
		e.LanguageOptions = mergeLanguageOptions(e.LanguageOptions, f.LanguageOptions)
	}
}

func mergeLanguageOptions(base, top *fragment.LanguageOptions) *fragment.LanguageOptions {
	out := fragment.LanguageOptions{}
	if base != nil {
		out = *base
	}
	if top.EcmaVersion != 0 {
		out.EcmaVersion = top.EcmaVersion
	}
	if top.SourceType != "" {
		out.SourceType = top.SourceType
	}
	if top.Parser != "" {
		out.Parser = top.Parser
	}
	if len(top.ParserOptions) > 0 {
		merged := maps.Clone(out.ParserOptions)
		if merged == nil {
			merged = map[string]any{}
		}
		maps.Copy(merged, top.ParserOptions)
		out.ParserOptions = merged
	}
	if len(top.Globals) > 0 {
		merged := maps.Clone(out.Globals)
		if merged == nil {
			merged = map[string]string{}
		}
		maps.Copy(merged, top.Globals)
		out.Globals = merged
	}
	return &out
}

func label(f fragment.Fragment, i int) string {
	if f.Name != "" {
		return f.Name
	}
	return "#" + strconv.Itoa(i)
}

// Rule reports the effective setting of one rule, and whether any applied
// fragment set it.
func (e *Effective) Rule(name string) (any, bool) {
	v, ok := e.Rules[name]
	return v, ok
}

// Severity is the severity of the named rule, "off" when unset
func (e *Effective) Severity(name string) string {
	v, ok := e.Rules[name]
	if !ok {
		return fragment.Off
	}
	if sev := fragment.Severity(v); sev != "" {
		return sev
	}
	return fragment.Off
}

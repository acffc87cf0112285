// Package fragment defines the configuration fragment handed to the host lint
// engine, and the shallow override-wins merge used for rule mappings.
package fragment

import (
	"maps"
	"slices"

	"gopkg.in/yaml.v3"
)

// Severity levels accepted by the host engine
const (
	Off   = "off"
	Warn  = "warn"
	Error = "error"
)

// Rules maps a rule identifier to its setting: a severity string, or a list
// whose first element is the severity followed by rule options.
type Rules map[string]any

// UnmarshalYAML decodes through a plain map so that nested rule options come
// back as map[string]any, not as Rules.
func (r *Rules) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]any
	if err := value.Decode(&m); err != nil {
		return err
	}
	*r = Rules(m)
	return nil
}

// LanguageOptions mirrors the host engine's languageOptions block
type LanguageOptions struct {
	EcmaVersion   int               `json:"ecmaVersion,omitempty" yaml:"ecmaVersion,omitempty" toml:"ecmaVersion,omitempty" mapstructure:"ecmaVersion"`
	SourceType    string            `json:"sourceType,omitempty" yaml:"sourceType,omitempty" toml:"sourceType,omitempty" mapstructure:"sourceType"`
	Parser        string            `json:"parser,omitempty" yaml:"parser,omitempty" toml:"parser,omitempty" mapstructure:"parser"`
	ParserOptions map[string]any    `json:"parserOptions,omitempty" yaml:"parserOptions,omitempty" toml:"parserOptions,omitempty" mapstructure:"parserOptions"`
	Globals       map[string]string `json:"globals,omitempty" yaml:"globals,omitempty" toml:"globals,omitempty" mapstructure:"globals"`
}

// LinterOptions mirrors the host engine's linterOptions block
type LinterOptions struct {
	NoInlineConfig                bool   `json:"noInlineConfig,omitempty" yaml:"noInlineConfig,omitempty" toml:"noInlineConfig,omitempty" mapstructure:"noInlineConfig"`
	ReportUnusedDisableDirectives string `json:"reportUnusedDisableDirectives,omitempty" yaml:"reportUnusedDisableDirectives,omitempty" toml:"reportUnusedDisableDirectives,omitempty" mapstructure:"reportUnusedDisableDirectives"`
}

// Fragment is one entry of a flat config list. A fragment without Files
// applies to every file; a fragment carrying only Ignores is a global ignore.
type Fragment struct {
	Name            string            `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty" mapstructure:"name"`
	Files           []string          `json:"files,omitempty" yaml:"files,omitempty" toml:"files,omitempty" mapstructure:"files"`
	Ignores         []string          `json:"ignores,omitempty" yaml:"ignores,omitempty" toml:"ignores,omitempty" mapstructure:"ignores"`
	LanguageOptions *LanguageOptions  `json:"languageOptions,omitempty" yaml:"languageOptions,omitempty" toml:"languageOptions,omitempty" mapstructure:"languageOptions"`
	LinterOptions   *LinterOptions    `json:"linterOptions,omitempty" yaml:"linterOptions,omitempty" toml:"linterOptions,omitempty" mapstructure:"linterOptions"`
	Processor       string            `json:"processor,omitempty" yaml:"processor,omitempty" toml:"processor,omitempty" mapstructure:"processor"`
	Plugins         map[string]string `json:"plugins,omitempty" yaml:"plugins,omitempty" toml:"plugins,omitempty" mapstructure:"plugins"`
	Rules           Rules             `json:"rules,omitempty" yaml:"rules,omitempty" toml:"rules,omitempty" mapstructure:"rules"`
	Settings        map[string]any    `json:"settings,omitempty" yaml:"settings,omitempty" toml:"settings,omitempty" mapstructure:"settings"`
}

// Rule builds a rule setting. Without options it is the bare severity.
func Rule(severity string, options ...any) any {
	if len(options) == 0 {
		return severity
	}
	setting := make([]any, 0, len(options)+1)
	setting = append(setting, severity)
	return append(setting, options...)
}

// Severity extracts the severity of a rule setting, or "" when the setting
// has no recognisable shape.
func Severity(setting any) string {
	switch v := setting.(type) {
	case string:
		return v
	case []any:
		if len(v) > 0 {
			if s, ok := v[0].(string); ok {
				return s
			}
		}
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

// MergeRules returns a new mapping holding every layer's entries, later
// layers replacing earlier values for the same key. Inputs are not modified.
func MergeRules(layers ...Rules) Rules {
	size := 0
	for _, layer := range layers {
		size += len(layer)
	}

	merged := make(Rules, size)
	for _, layer := range layers {
		maps.Copy(merged, layer)
	}
	return merged
}

// Clone copies the fragment's slices and maps one level deep, so the copy
// can be modified without touching the original.
func (f Fragment) Clone() Fragment {
	out := f
	out.Files = slices.Clone(f.Files)
	out.Ignores = slices.Clone(f.Ignores)
	out.Plugins = maps.Clone(f.Plugins)
	out.Rules = maps.Clone(f.Rules)
	out.Settings = maps.Clone(f.Settings)

	if f.LanguageOptions != nil {
		lo := *f.LanguageOptions
		lo.ParserOptions = maps.Clone(f.LanguageOptions.ParserOptions)
		lo.Globals = maps.Clone(f.LanguageOptions.Globals)
		out.LanguageOptions = &lo
	}
	if f.LinterOptions != nil {
		lo := *f.LinterOptions
		out.LinterOptions = &lo
	}
	return out
}

// IsGlobalIgnore reports whether the fragment only lists ignores, which the
// host engine treats as ignoring those paths for every other fragment.
func (f Fragment) IsGlobalIgnore() bool {
	if len(f.Ignores) == 0 {
		return false
	}
	rest := f
	rest.Name = ""
	rest.Ignores = nil
	return rest.IsEmpty()
}

// IsEmpty reports whether no field is set
func (f Fragment) IsEmpty() bool {
	return f.Name == "" &&
		len(f.Files) == 0 &&
		len(f.Ignores) == 0 &&
		f.LanguageOptions == nil &&
		f.LinterOptions == nil &&
		f.Processor == "" &&
		len(f.Plugins) == 0 &&
		len(f.Rules) == 0 &&
		len(f.Settings) == 0
}

// CloneAll clones every fragment of the list
func CloneAll(frags []Fragment) []Fragment {
	if frags == nil {
		return nil
	}
	out := make([]Fragment, len(frags))
	for i, f := range frags {
		out[i] = f.Clone()
	}
	return out
}

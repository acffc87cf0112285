// Package options holds the feature toggles that drive fragment assembly,
// their defaults, and the loaders that read them from a host-style mapping
// or from configuration files.
package options

import (
	"github.com/arthur-debert/flatcfg/pkg/fragment"
)

// Feature is a toggle that may carry options. A nil *Feature means the
// feature keeps its default state.
type Feature[T any] struct {
	Enabled bool
	Options T
}

// On enables a feature with the given options
func On[T any](opts T) *Feature[T] {
	return &Feature[T]{Enabled: true, Options: opts}
}

// Enable enables a feature with zero options
func Enable[T any]() *Feature[T] {
	return &Feature[T]{Enabled: true}
}

// Disable turns a feature off
func Disable[T any]() *Feature[T] {
	return &Feature[T]{}
}

func (f *Feature[T]) enabled(def bool) (T, bool) {
	if f == nil {
		var zero T
		return zero, def
	}
	return f.Options, f.Enabled
}

// OverridesOptions carries rule settings merged last into a dialect fragment
type OverridesOptions struct {
	Overrides fragment.Rules `mapstructure:"overrides"`
}

// TypeScriptOptions configures the TypeScript dialect. Setting TSConfigPath
// turns on the type-aware rules.
type TypeScriptOptions struct {
	Overrides    fragment.Rules `mapstructure:"overrides"`
	TSConfigPath string         `mapstructure:"tsconfigPath"`
	Strict       bool           `mapstructure:"strict"`
}

// DialectOptions configures a structured-data dialect
type DialectOptions struct {
	Overrides fragment.Rules `mapstructure:"overrides"`
	Files     []string       `mapstructure:"files"`
}

type (
	JSONCOptions = DialectOptions
	YAMLOptions  = DialectOptions
	TOMLOptions  = DialectOptions
)

// NodeOptions configures the Node.js dialect. Security defaults to on.
type NodeOptions struct {
	Overrides fragment.Rules `mapstructure:"overrides"`
	Security  *bool          `mapstructure:"security"`
}

// StylisticOptions configures formatting rules. Zero values take defaults.
type StylisticOptions struct {
	Indent    int            `mapstructure:"indent"`
	Quotes    string         `mapstructure:"quotes"`
	Semi      *bool          `mapstructure:"semi"`
	Overrides fragment.Rules `mapstructure:"overrides"`
}

// Options is the record callers pass to the entry point. The embedded
// Fragment holds the raw-fragment fields (name, files, ignores,
// languageOptions, linterOptions, processor, plugins, rules, settings);
// when any is set they become one extra fragment after the built-in ones.
type Options struct {
	// JavaScript cannot be disabled; only its overrides are read
	JavaScript OverridesOptions

	TypeScript *Feature[TypeScriptOptions]
	JSONC      *Feature[JSONCOptions]
	YAML       *Feature[YAMLOptions]
	TOML       *Feature[TOMLOptions]
	Node       *Feature[NodeOptions]
	Stylistic  *Feature[StylisticOptions]

	fragment.Fragment
}

// RawFragment returns the raw-fragment fields as a fragment, and false when
// none is set.
func (o Options) RawFragment() (fragment.Fragment, bool) {
	if o.Fragment.IsEmpty() {
		return fragment.Fragment{}, false
	}
	return o.Fragment.Clone(), true
}

// Bool returns a pointer to b, for the optional boolean fields
func Bool(b bool) *bool {
	return &b
}

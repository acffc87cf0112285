package dialects

import (
	"maps"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/logging"
	"github.com/arthur-debert/flatcfg/pkg/options"
)

// NamePrefix starts the name of every fragment built here
const NamePrefix = "flatcfg:"

// Fragment names
const (
	NameJavaScript        = NamePrefix + "javascript"
	NameComments          = NamePrefix + "eslint-comments"
	NameImports           = NamePrefix + "imports"
	NameUnicorn           = NamePrefix + "unicorn"
	NamePerfectionist     = NamePrefix + "perfectionist"
	NameNode              = NamePrefix + "node"
	NameNodeSecurity      = NamePrefix + "node-security"
	NameStylistic         = NamePrefix + "stylistic"
	NameTypeScript        = NamePrefix + "typescript"
	NameTypeScriptProject = NamePrefix + "typescript/project"
	NameJSONC             = NamePrefix + "jsonc"
	NameSortPackageJSON   = NamePrefix + "sort-package-json"
	NameSortTSConfig      = NamePrefix + "sort-tsconfig"
	NameYAML              = NamePrefix + "yaml"
	NameTOML              = NamePrefix + "toml"
)

// DataOptions configures the JSONC, YAML and TOML builders. A nil Stylistic
// leaves out the formatting rules.
type DataOptions struct {
	Overrides fragment.Rules
	Files     []string
	Stylistic *options.StylisticConfig
}

// obj and list keep the policy tables readable
type (
	obj  = map[string]any
	list = []any
)

func logger() zerolog.Logger {
	return logging.GetLogger("dialects")
}

func built(f fragment.Fragment) []fragment.Fragment {
	l := logger()
	l.Trace().
		Str("fragment", f.Name).
		Int("rules", len(f.Rules)).
		Msg("Built fragment")
	return []fragment.Fragment{f}
}

// squash folds a baseline made of several fragments into one. Rules,
// plugins, settings and globals are merged with later fragments winning;
// other language options come from the last fragment that sets them.
func squash(frags []fragment.Fragment) fragment.Fragment {
	var out fragment.Fragment
	for _, f := range frags {
		out.Rules = fragment.MergeRules(out.Rules, f.Rules)
		out.Plugins = mergeMaps(out.Plugins, f.Plugins)
		out.Settings = mergeMaps(out.Settings, f.Settings)
		if len(f.Files) > 0 {
			out.Files = f.Files
		}
		if f.LanguageOptions != nil {
			out.LanguageOptions = mergeLanguageOptions(out.LanguageOptions, f.LanguageOptions)
		}
	}
	return out
}

func mergeLanguageOptions(base, top *fragment.LanguageOptions) *fragment.LanguageOptions {
	if base == nil {
		cp := *top
		cp.Globals = maps.Clone(top.Globals)
		cp.ParserOptions = maps.Clone(top.ParserOptions)
		return &cp
	}
	out := *base
	if top.EcmaVersion != 0 {
		out.EcmaVersion = top.EcmaVersion
	}
	if top.SourceType != "" {
		out.SourceType = top.SourceType
	}
	if top.Parser != "" {
		out.Parser = top.Parser
	}
	out.ParserOptions = mergeMaps(base.ParserOptions, top.ParserOptions)
	out.Globals = mergeMaps(base.Globals, top.Globals)
	return &out
}

func mergeMaps[V any](layers ...map[string]V) map[string]V {
	var out map[string]V
	for _, layer := range layers {
		if len(layer) == 0 {
			continue
		}
		if out == nil {
			out = make(map[string]V, len(layer))
		}
		maps.Copy(out, layer)
	}
	return out
}

func filesOr(files []string, def ...string) []string {
	if len(files) > 0 {
		return append([]string(nil), files...)
	}
	return def
}

// stylisticIndent returns the configured indent, or the default when the
// stylistic block is absent.
func stylisticIndent(s *options.StylisticConfig) int {
	if s == nil || s.Indent == 0 {
		return options.DefaultIndent
	}
	return s.Indent
}

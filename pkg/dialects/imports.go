package dialects

import (
	"context"

	"github.com/arthur-debert/flatcfg/pkg/compose"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/providers"
)

var (
	typescriptExtensions = []string{".ts", ".cts", ".mts", ".tsx"}
	allExtensions        = append(append([]string(nil), typescriptExtensions...), ".js", ".jsx")
)

// ImportsOptions carries the toggles the import rules depend on
type ImportsOptions struct {
	TypeScript bool
	Node       bool
	Stylistic  bool
}

// Imports builds the fragment for ES module import and export syntax. The
// TypeScript baseline of the plugin is included when TypeScript is on.
func Imports(res providers.Resolver, opts ImportsOptions) compose.Producer {
	return func(ctx context.Context) ([]fragment.Fragment, error) {
		pkg, err := res.Resolve(ctx, providers.Import)
		if err != nil {
			return nil, err
		}

		var baseline fragment.Rules
		if opts.TypeScript {
			baseline, err = pkg.ConfigRules("typescript")
			if err != nil {
				return nil, err
			}
		}

		var layout fragment.Rules
		if opts.Stylistic {
			layout = fragment.Rules{
				"import/newline-after-import": list{"error", obj{"considerComments": true, "count": 1}},
			}
		}

		return built(fragment.Fragment{
			Name:     NameImports,
			Plugins:  pkg.Plugins(),
			Rules:    fragment.MergeRules(baseline, importsPolicy(), layout),
			Settings: importsSettings(opts),
		}), nil
	}
}

func importsSettings(opts ImportsOptions) map[string]any {
	var node any = opts.Node
	if opts.TypeScript {
		node = obj{"extensions": toList(allExtensions)}
	}
	return obj{
		"import/extensions":              toList(allExtensions),
		"import/external-module-folders": list{"node_modules", "node_modules/@types"},
		"import/parsers":                 obj{"@typescript-eslint/parser": toList(typescriptExtensions)},
		"import/resolver":                obj{"node": node},
	}
}

func importsPolicy() fragment.Rules {
	return fragment.Rules{
		"import/consistent-type-specifier-style": list{"error", "prefer-inline"},
		"import/exports-last":                    "error",
		"import/extensions":                      list{"error", "never", obj{"js": "always"}},
		"import/first":                           "error",
		"import/namespace":                       "off",
		"import/no-absolute-path":                "error",
		"import/no-commonjs":                     "error",
		"import/no-cycle":                        list{"error", obj{"maxDepth": "∞"}},
		"import/no-duplicates":                   "error",
		"import/no-dynamic-require":              "error",
		"import/no-empty-named-blocks":           "error",
		"import/no-extraneous-dependencies":      list{"error"},
		"import/no-mutable-exports":              "error",
		"import/no-named-default":                "error",
		"import/no-relative-packages":            "error",
		"import/no-self-import":                  "error",
		"import/no-unresolved":                   list{"off", obj{"caseSensitive": true}},
		"import/no-unused-modules": list{"off", obj{
			"missingExports": true,
			"unusedExports":  true,
		}},
		"import/no-useless-path-segments": list{"error"},
		"import/no-webpack-loader-syntax": "error",
		"import/order": list{"error", obj{
			"alphabetize": obj{"order": "asc"},
			"groups": list{
				"builtin", "external", "internal", "parent",
				"sibling", "index", "object", "type",
			},
			"newlines-between": "always",
			"pathGroups": list{
				obj{"group": "external", "pattern": "@/**", "position": "after"},
			},
		}},
		"import/prefer-default-export": "off",
	}
}

func toList(ss []string) list {
	out := make(list, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

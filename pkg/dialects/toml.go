package dialects

import (
	"context"

	"github.com/arthur-debert/flatcfg/pkg/compose"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/globs"
	"github.com/arthur-debert/flatcfg/pkg/providers"
)

// TOML builds the fragment for TOML files
func TOML(res providers.Resolver, opts DataOptions) compose.Producer {
	return func(ctx context.Context) ([]fragment.Fragment, error) {
		var layout fragment.Rules
		if opts.Stylistic != nil {
			layout = tomlLayout(stylisticIndent(opts.Stylistic))
		}
		rules := fragment.MergeRules(tomlPolicy(), layout, opts.Overrides)

		return dataFragment(ctx, res, providers.TOML, providers.TOMLParser,
			NameTOML, filesOr(opts.Files, globs.TOML), rules)
	}
}

func tomlPolicy() fragment.Rules {
	return fragment.Rules{
		"@stylistic/spaced-comment":            "off",
		"toml/comma-style":                     "error",
		"toml/keys-order":                      "error",
		"toml/no-space-dots":                   "error",
		"toml/no-unreadable-number-separator":  "error",
		"toml/precision-of-fractional-seconds": "error",
		"toml/precision-of-integer":            "error",
		"toml/tables-order":                    "error",
	}
}

func tomlLayout(indent int) fragment.Rules {
	return fragment.Rules{
		"toml/array-bracket-newline":       "error",
		"toml/array-bracket-spacing":       "error",
		"toml/array-element-newline":       "error",
		"toml/indent":                      list{"error", indent},
		"toml/inline-table-curly-spacing":  "error",
		"toml/key-spacing":                 "error",
		"toml/padding-line-between-pairs":  "error",
		"toml/padding-line-between-tables": "error",
		"toml/quoted-keys":                 "error",
		"toml/spaced-comment":              "error",
		"toml/table-bracket-spacing":       "error",
	}
}

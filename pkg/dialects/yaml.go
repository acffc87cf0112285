package dialects

import (
	"context"

	"github.com/arthur-debert/flatcfg/pkg/compose"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/globs"
	"github.com/arthur-debert/flatcfg/pkg/options"
	"github.com/arthur-debert/flatcfg/pkg/providers"
)

// YAML builds the fragment for YAML files. With stylistic rules on, quoted
// scalars prefer the configured quote style.
func YAML(res providers.Resolver, opts DataOptions) compose.Producer {
	return func(ctx context.Context) ([]fragment.Fragment, error) {
		var layout fragment.Rules
		if opts.Stylistic != nil {
			layout = yamlLayout(opts.Stylistic)
		}
		rules := fragment.MergeRules(yamlPolicy(), layout, opts.Overrides)

		return dataFragment(ctx, res, providers.YAML, providers.YAMLParser,
			NameYAML, filesOr(opts.Files, globs.YAML), rules)
	}
}

func yamlPolicy() fragment.Rules {
	return fragment.Rules{
		"@stylistic/spaced-comment":   "off",
		"yml/block-mapping":           "error",
		"yml/block-sequence":          "error",
		"yml/no-empty-document":       "error",
		"yml/no-empty-key":            "error",
		"yml/no-empty-sequence-entry": "error",
		"yml/no-irregular-whitespace": "error",
		"yml/plain-scalar":            "error",
	}
}

func yamlLayout(s *options.StylisticConfig) fragment.Rules {
	quotes := s.Quotes
	if quotes == "" {
		quotes = options.DefaultQuotes
	}
	return fragment.Rules{
		"yml/block-mapping-question-indicator-newline": "error",
		"yml/block-sequence-hyphen-indicator-newline":  "error",
		"yml/flow-mapping-curly-newline":               "error",
		"yml/flow-mapping-curly-spacing":               "error",
		"yml/flow-sequence-bracket-newline":            "error",
		"yml/flow-sequence-bracket-spacing":            "error",
		"yml/indent":                                   list{"error", stylisticIndent(s)},
		"yml/key-spacing":                              "error",
		"yml/no-tab-indent":                            "error",
		"yml/quotes":                                   list{"error", obj{"avoidEscape": false, "prefer": quotes}},
		"yml/spaced-comment":                           "error",
	}
}

package dialects

import (
	"context"

	"github.com/arthur-debert/flatcfg/pkg/compose"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/globs"
	"github.com/arthur-debert/flatcfg/pkg/providers"
)

// JSONC builds the fragment for JSON and JSON-with-comments files
func JSONC(res providers.Resolver, opts DataOptions) compose.Producer {
	return func(ctx context.Context) ([]fragment.Fragment, error) {
		var layout fragment.Rules
		if opts.Stylistic != nil {
			layout = jsoncLayout(stylisticIndent(opts.Stylistic))
		}
		rules := fragment.MergeRules(jsoncPolicy(), layout, opts.Overrides)

		return dataFragment(ctx, res, providers.JSONC, providers.JSONCParser,
			NameJSONC, filesOr(opts.Files, globs.JSON), rules)
	}
}

func jsoncPolicy() fragment.Rules {
	rules := fragment.Rules{}
	for _, rule := range []string{
		"no-bigint-literals",
		"no-binary-expression",
		"no-binary-numeric-literals",
		"no-dupe-keys",
		"no-escape-sequence-in-identifier",
		"no-floating-decimal",
		"no-hexadecimal-numeric-literals",
		"no-infinity",
		"no-multi-str",
		"no-nan",
		"no-number-props",
		"no-numeric-separators",
		"no-octal",
		"no-octal-escape",
		"no-octal-numeric-literals",
		"no-parenthesized",
		"no-plus-sign",
		"no-regexp-literals",
		"no-sparse-arrays",
		"no-template-literals",
		"no-undefined-value",
		"no-unicode-codepoint-escapes",
		"no-useless-escape",
		"valid-json-number",
	} {
		rules["jsonc/"+rule] = "error"
	}
	return rules
}

func jsoncLayout(indent int) fragment.Rules {
	return fragment.Rules{
		"jsonc/array-bracket-newline":   list{"error", obj{"multiline": true}},
		"jsonc/array-bracket-spacing":   list{"error", "never"},
		"jsonc/comma-dangle":            list{"error", "never"},
		"jsonc/comma-style":             list{"error", "last"},
		"jsonc/indent":                  list{"error", indent},
		"jsonc/key-spacing":             list{"error", obj{"afterColon": true, "beforeColon": false}},
		"jsonc/object-curly-newline":    list{"error", obj{"consistent": true, "multiline": true}},
		"jsonc/object-curly-spacing":    list{"error", "always"},
		"jsonc/object-property-newline": list{"error", obj{"allowMultiplePropertiesPerLine": true}},
		"jsonc/quote-props":             "error",
		"jsonc/quotes":                  list{"error", "double"},
		"jsonc/space-unary-ops":         "error",
	}
}

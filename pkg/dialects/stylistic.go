package dialects

import (
	"context"

	"github.com/arthur-debert/flatcfg/pkg/compose"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/options"
	"github.com/arthur-debert/flatcfg/pkg/providers"
)

const maxLineLength = 100

// StylisticOptions configures the formatting fragment. TypeScript adds the
// member delimiter rule for interfaces and type literals.
type StylisticOptions struct {
	options.StylisticConfig
	TypeScript bool
}

// Stylistic builds the formatting fragment. The plugin's customize baseline
// is completed with the indent, quote and semicolon choices, then the
// formatting policy and the caller overrides are applied.
func Stylistic(res providers.Resolver, opts StylisticOptions) compose.Producer {
	return func(ctx context.Context) ([]fragment.Fragment, error) {
		pkg, err := res.Resolve(ctx, providers.Stylistic)
		if err != nil {
			return nil, err
		}
		baseline, err := pkg.Config("customize")
		if err != nil {
			return nil, err
		}

		cfg := opts.StylisticConfig
		f := squash(baseline)
		f.Name = NameStylistic

		var typed fragment.Rules
		if opts.TypeScript {
			typed = fragment.Rules{
				"@stylistic/member-delimiter-style": list{"error", obj{
					"multiline":  obj{"delimiter": "semi", "requireLast": true},
					"singleline": obj{"delimiter": "semi", "requireLast": false},
				}},
			}
		}

		f.Rules = fragment.MergeRules(
			f.Rules,
			customizeRules(cfg),
			stylisticPolicy(),
			typed,
			cfg.Overrides,
		)
		return built(f), nil
	}
}

// customizeRules holds the parts of the customize baseline that depend on
// the indent, quote and semicolon choices.
func customizeRules(cfg options.StylisticConfig) fragment.Rules {
	indent := stylisticIndent(&cfg)
	quotes := cfg.Quotes
	if quotes == "" {
		quotes = options.DefaultQuotes
	}

	semi := "never"
	if cfg.Semi {
		semi = "always"
	}

	return fragment.Rules{
		"@stylistic/indent": list{"error", indent, obj{
			"ArrayExpression":          1,
			"CallExpression":           obj{"arguments": 1},
			"flatTernaryExpressions":   false,
			"FunctionDeclaration":      obj{"body": 1, "parameters": 1},
			"FunctionExpression":       obj{"body": 1, "parameters": 1},
			"ignoreComments":           false,
			"ImportDeclaration":        1,
			"MemberExpression":         1,
			"ObjectExpression":         1,
			"offsetTernaryExpressions": true,
			"outerIIFEBody":            1,
			"SwitchCase":               1,
			"tabLength":                indent,
			"VariableDeclarator":       1,
		}},
		"@stylistic/indent-binary-ops": list{"error", indent},
		"@stylistic/quotes":            list{"error", quotes, obj{"allowTemplateLiterals": true, "avoidEscape": false}},
		"@stylistic/semi":              list{"error", semi},
	}
}

func stylisticPolicy() fragment.Rules {
	return fragment.Rules{
		"@stylistic/array-bracket-newline":          list{"error", obj{"multiline": true}},
		"@stylistic/array-bracket-spacing":          list{"error", "never"},
		"@stylistic/array-element-newline":          list{"error", obj{"minItems": 3, "multiline": true}},
		"@stylistic/arrow-parens":                   list{"error", "always"},
		"@stylistic/arrow-spacing":                  list{"error", obj{"after": true, "before": true}},
		"@stylistic/block-spacing":                  list{"error", "always"},
		"@stylistic/brace-style":                    list{"error", "1tbs", obj{"allowSingleLine": true}},
		"@stylistic/comma-dangle":                   list{"error", "always-multiline"},
		"@stylistic/comma-spacing":                  list{"error", obj{"after": true, "before": false}},
		"@stylistic/comma-style":                    list{"error", "last", obj{"exceptions": commaStyleExceptions()}},
		"@stylistic/computed-property-spacing":      list{"error", "never"},
		"@stylistic/dot-location":                   list{"error", "property"},
		"@stylistic/eol-last":                       list{"error", "always"},
		"@stylistic/func-call-spacing":              list{"error", "never"},
		"@stylistic/function-call-argument-newline": list{"error", "consistent"},
		"@stylistic/function-paren-newline":         list{"error", "multiline-arguments"},
		"@stylistic/generator-star-spacing":         list{"error", obj{"after": true, "before": false}},
		"@stylistic/implicit-arrow-linebreak":       list{"error", "beside"},
		"@stylistic/key-spacing":                    list{"error", obj{"afterColon": true, "beforeColon": false}},
		"@stylistic/keyword-spacing": list{"error", obj{
			"after":  true,
			"before": true,
			"overrides": obj{
				"case":   obj{"after": true},
				"return": obj{"after": true},
				"throw":  obj{"after": true},
			},
		}},
		"@stylistic/linebreak-style": list{"error", "unix"},
		"@stylistic/lines-around-comment": list{"error", obj{
			"afterBlockComment":    false,
			"afterHashbangComment": false,
			"allowArrayStart":      true,
			"allowBlockStart":      true,
			"allowClassStart":      true,
			"allowEnumStart":       true,
			"allowInterfaceStart":  true,
			"allowModuleStart":     true,
			"allowObjectStart":     true,
			"allowTypeStart":       true,
			"beforeBlockComment":   true,
		}},
		"@stylistic/lines-between-class-members": list{"error", "always", obj{"exceptAfterSingleLine": true}},
		"@stylistic/max-len": list{"error", maxLineLength, 2, obj{
			"ignoreComments":         false,
			"ignoreRegExpLiterals":   true,
			"ignoreStrings":          true,
			"ignoreTemplateLiterals": true,
			"ignoreUrls":             true,
		}},
		"@stylistic/max-statements-per-line":  list{"error", obj{"max": 1}},
		"@stylistic/multiline-ternary":        list{"error", "always-multiline"},
		"@stylistic/new-parens":               "error",
		"@stylistic/newline-per-chained-call": list{"error", obj{"ignoreChainWithDepth": 4}},
		"@stylistic/no-confusing-arrow":       list{"error", obj{"allowParens": true}},
		"@stylistic/no-extra-parens": list{"error", "all", obj{
			"enforceForArrowConditionals":     false,
			"nestedBinaryExpressions":         false,
			"ternaryOperandBinaryExpressions": false,
		}},
		"@stylistic/no-extra-semi":       "error",
		"@stylistic/no-floating-decimal": "error",
		"@stylistic/no-mixed-operators": list{"error", obj{
			"allowSamePrecedence": false,
			"groups": list{
				list{"%", "**"},
				list{"%", "+"},
				list{"%", "-"},
				list{"%", "*"},
				list{"%", "/"},
				list{"/", "*"},
				list{"&", "|", "<<", ">>", ">>>"},
				list{"==", "!=", "===", "!=="},
				list{"&&", "||"},
				list{"in", "instanceof"},
			},
		}},
		"@stylistic/no-mixed-spaces-and-tabs":         "error",
		"@stylistic/no-multi-spaces":                  list{"error", obj{"ignoreEOLComments": false}},
		"@stylistic/no-multiple-empty-lines":          list{"error", obj{"max": 1, "maxBOF": 0, "maxEOF": 0}},
		"@stylistic/no-tabs":                          "error",
		"@stylistic/no-trailing-spaces":               list{"error", obj{"ignoreComments": false, "skipBlankLines": false}},
		"@stylistic/no-whitespace-before-property":    "error",
		"@stylistic/nonblock-statement-body-position": list{"error", "beside"},
		"@stylistic/object-curly-newline": list{"error", obj{
			"ExportDeclaration": curlyNewline(),
			"ImportDeclaration": curlyNewline(),
			"ObjectExpression":  curlyNewline(),
			"ObjectPattern":     curlyNewline(),
		}},
		"@stylistic/object-curly-spacing":    list{"error", "always"},
		"@stylistic/object-property-newline": list{"error", obj{"allowAllPropertiesOnSameLine": true}},
		"@stylistic/operator-linebreak":      list{"error", "before", obj{"overrides": obj{"=": "none"}}},
		"@stylistic/padded-blocks": list{
			"error",
			obj{"blocks": "never", "classes": "never", "switches": "never"},
			obj{"allowSingleLineBlocks": true},
		},
		"@stylistic/quote-props":                 list{"error", "as-needed", obj{"keywords": false, "numbers": false, "unnecessary": true}},
		"@stylistic/rest-spread-spacing":         list{"error", "never"},
		"@stylistic/semi-spacing":                list{"error", obj{"after": true, "before": false}},
		"@stylistic/semi-style":                  list{"error", "last"},
		"@stylistic/space-before-blocks":         list{"error", "always"},
		"@stylistic/space-before-function-paren": list{"error", obj{"anonymous": "always", "asyncArrow": "always", "named": "never"}},
		"@stylistic/space-in-parens":             list{"error", "never"},
		"@stylistic/space-infix-ops":             "error",
		"@stylistic/space-unary-ops":             list{"error", obj{"nonwords": false, "words": true}},
		"@stylistic/spaced-comment": list{"error", "always", obj{
			"block": obj{
				"balanced":   true,
				"exceptions": list{"*", "+", "-"},
				"markers":    list{"/", "=", "!"},
			},
			"line": obj{
				"exceptions": list{"+", "-"},
				"markers":    list{"/", "=", "!"},
			},
		}},
		"@stylistic/switch-colon-spacing":   list{"error", obj{"after": true, "before": false}},
		"@stylistic/template-curly-spacing": list{"error"},
		"@stylistic/template-tag-spacing":   list{"error", "never"},
		"@stylistic/wrap-iife":              list{"error", "outside", obj{"functionPrototypeMethods": true}},
		"@stylistic/yield-star-spacing":     list{"error", obj{"after": true, "before": false}},

		"camelcase": list{"error", obj{"ignoreDestructuring": false, "properties": "never"}},
		"capitalized-comments": list{"error", "never", obj{
			"block": commentCase(),
			"line":  commentCase(),
		}},
		"curly":      list{"error", "multi-line"},
		"func-style": list{"error", "expression"},
		"max-lines": list{"off", obj{
			"max":            300,
			"skipBlankLines": true,
			"skipComments":   true,
		}},
		"max-lines-per-function": list{"off", obj{
			"IIFEs":          true,
			"max":            50,
			"skipBlankLines": true,
			"skipComments":   true,
		}},
	}
}

func commaStyleExceptions() obj {
	out := obj{}
	for _, node := range []string{
		"ArrayExpression", "ArrayPattern", "ArrowFunctionExpression",
		"CallExpression", "FunctionDeclaration", "FunctionExpression",
		"ImportDeclaration", "NewExpression", "ObjectExpression",
		"ObjectPattern", "VariableDeclaration",
	} {
		out[node] = false
	}
	return out
}

func curlyNewline() obj {
	return obj{"consistent": true, "minProperties": 4, "multiline": true}
}

func commentCase() obj {
	return obj{
		"ignoreConsecutiveComments": true,
		"ignoreInlineComments":      true,
		"ignorePattern":             ".*",
	}
}

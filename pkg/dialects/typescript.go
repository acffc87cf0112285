package dialects

import (
	"context"

	"github.com/arthur-debert/flatcfg/pkg/compose"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/options"
	"github.com/arthur-debert/flatcfg/pkg/providers"
)

// TypeScriptBaseline picks the typescript-eslint shared config for the
// strict and type-aware choices.
func TypeScriptBaseline(opts options.TypeScriptOptions) string {
	typeAware := opts.TSConfigPath != ""
	switch {
	case typeAware && opts.Strict:
		return "strictTypeChecked"
	case typeAware:
		return "recommendedTypeChecked"
	case opts.Strict:
		return "strict"
	default:
		return "recommended"
	}
}

// TypeScript builds the TypeScript fragments: the baseline's fragments,
// then a fragment pointing the parser at the project when TSConfigPath is
// set, then the policy fragment. Type-aware rules need the project, so they
// are only added with TSConfigPath.
func TypeScript(res providers.Resolver, opts options.TypeScriptOptions) compose.Producer {
	return func(ctx context.Context) ([]fragment.Fragment, error) {
		pkg, err := res.Resolve(ctx, providers.TypeScriptESLint)
		if err != nil {
			return nil, err
		}
		frags, err := pkg.Config(TypeScriptBaseline(opts))
		if err != nil {
			return nil, err
		}

		typeAware := opts.TSConfigPath != ""
		if typeAware {
			frags = append(frags, fragment.Fragment{
				Name: NameTypeScriptProject,
				LanguageOptions: &fragment.LanguageOptions{
					ParserOptions: obj{"project": opts.TSConfigPath},
				},
			})
		}

		var aware fragment.Rules
		if typeAware {
			aware = typeAwareRules()
		}
		frags = append(frags, fragment.Fragment{
			Name:  NameTypeScript,
			Rules: fragment.MergeRules(typescriptOffRules(), aware, typescriptPolicy(), opts.Overrides),
		})

		l := logger()
		l.Trace().
			Str("baseline", TypeScriptBaseline(opts)).
			Bool("typeAware", typeAware).
			Int("fragments", len(frags)).
			Msg("Built TypeScript fragments")
		return frags, nil
	}
}

// typescriptOffRules turns off core rules replaced by typed equivalents
func typescriptOffRules() fragment.Rules {
	return fragment.Rules{
		"camelcase":             "off",
		"default-param-last":    "off",
		"no-loop-func":          "off",
		"no-magic-numbers":      "off",
		"no-shadow":             "off",
		"no-unused-expressions": "off",
		"no-use-before-define":  "off",
	}
}

func typeAwareRules() fragment.Rules {
	return fragment.Rules{
		"@typescript-eslint/await-thenable":          "error",
		"@typescript-eslint/consistent-type-exports": list{"error", obj{"fixMixedExportsWithInlineTypeSpecifier": true}},
		"@typescript-eslint/dot-notation":            list{"error", obj{"allowKeywords": true}},
		"@typescript-eslint/naming-convention": list{
			"error",
			obj{"format": list{"camelCase"}, "selector": "default"},
			obj{"format": list{"camelCase", "UPPER_CASE"}, "selector": "variable"},
			obj{"format": list{"camelCase"}, "leadingUnderscore": "allow", "selector": "parameter"},
			obj{"format": list{"PascalCase"}, "selector": "typeLike"},
			obj{
				"custom":   obj{"match": false, "regex": "^I[A-Z]"},
				"format":   list{"PascalCase"},
				"selector": "interface",
			},
		},
		"@typescript-eslint/prefer-find":                 "error",
		"@typescript-eslint/prefer-regexp-exec":          "error",
		"@typescript-eslint/promise-function-async":      "error",
		"@typescript-eslint/require-array-sort-compare":  "error",
		"@typescript-eslint/strict-boolean-expressions":  "error",
		"@typescript-eslint/switch-exhaustiveness-check": "error",
		"dot-notation": "off",
	}
}

func typescriptPolicy() fragment.Rules {
	return fragment.Rules{
		"@typescript-eslint/consistent-type-imports": list{"error", obj{
			"fixStyle": "inline-type-imports",
			"prefer":   "type-imports",
		}},
		"@typescript-eslint/default-param-last":     "error",
		"@typescript-eslint/method-signature-style": list{"error", "property"},
		"@typescript-eslint/no-extraneous-class":    list{"error", obj{"allowEmpty": true}},
		"@typescript-eslint/no-loop-func":           "error",
		"@typescript-eslint/no-magic-numbers": list{"error", obj{
			"detectObjects":      false,
			"enforceConst":       true,
			"ignore":             list{-1, 0, 1, 2},
			"ignoreArrayIndexes": true,
		}},
		"@typescript-eslint/no-shadow": "error",
		"@typescript-eslint/no-unused-expressions": list{"error", obj{
			"allowShortCircuit":    false,
			"allowTaggedTemplates": false,
			"allowTernary":         false,
		}},
		"@typescript-eslint/no-use-before-define": list{"error", obj{
			"classes":   true,
			"enums":     true,
			"functions": true,
			"typedefs":  true,
			"variables": true,
		}},
		"@typescript-eslint/no-useless-empty-export": "error",
	}
}

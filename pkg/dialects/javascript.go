package dialects

import (
	"context"

	"github.com/arthur-debert/flatcfg/pkg/compose"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/providers"
)

const (
	ecmaVersion   = 2022
	maxComplexity = 20
)

// JavaScriptOptions configures the core rules fragment
type JavaScriptOptions struct {
	Overrides fragment.Rules
	// Node selects Node.js globals instead of browser globals
	Node bool
}

// JavaScript builds the core rules fragment from the engine's recommended
// set, with ES2021 globals plus the runtime globals picked by opts.Node.
func JavaScript(res providers.Resolver, opts JavaScriptOptions) compose.Producer {
	return func(ctx context.Context) ([]fragment.Fragment, error) {
		pkgs, err := providers.ResolveAll(ctx, res,
			providers.ESLintJS, providers.Globals, providers.ConfusingBrowserGlobals)
		if err != nil {
			return nil, err
		}
		js, globals, confusing := pkgs[0], pkgs[1], pkgs[2]

		recommended, err := js.ConfigRules("recommended")
		if err != nil {
			return nil, err
		}

		runtime := "browser"
		if opts.Node {
			runtime = "nodeBuiltin"
		}
		es, err := globals.Set("es2021")
		if err != nil {
			return nil, err
		}
		env, err := globals.Set(runtime)
		if err != nil {
			return nil, err
		}

		return built(fragment.Fragment{
			Name: NameJavaScript,
			LanguageOptions: &fragment.LanguageOptions{
				EcmaVersion: ecmaVersion,
				SourceType:  "module",
				ParserOptions: obj{
					"ecmaVersion": ecmaVersion,
					"sourceType":  "module",
				},
				Globals: mergeMaps(es, env),
			},
			Rules: fragment.MergeRules(recommended, javascriptPolicy(confusing.List), opts.Overrides),
		}), nil
	}
}

func restrictedGlobals(confusing []string) list {
	out := list{
		"error",
		obj{"message": "Use `Number.isFinite` instead https://github.com/airbnb/javascript#standard-library--isfinite", "name": "isFinite"},
		obj{"message": "Use `Number.isNaN` instead https://github.com/airbnb/javascript#standard-library--isnan", "name": "isNaN"},
		obj{"message": "Use `globalThis` instead.", "name": "global"},
		obj{"message": "Use `globalThis` instead.", "name": "self"},
	}
	for _, name := range confusing {
		out = append(out, obj{"message": "Use window." + name + " instead", "name": name})
	}
	return out
}

func javascriptPolicy(confusing []string) fragment.Rules {
	return fragment.Rules{
		"accessor-pairs":         list{"error", obj{"enforceForClassMembers": true, "setWithoutGet": true}},
		"array-callback-return":  list{"error", obj{"allowImplicit": true}},
		"arrow-body-style":       list{"error", "as-needed", obj{"requireReturnForObjectLiteral": false}},
		"class-methods-use-this": "error",
		"complexity":             list{"error", maxComplexity},
		"consistent-return":      "error",
		"default-case":           list{"error", obj{"commentPattern": "^no default$"}},
		"default-case-last":      "error",
		"default-param-last":     "error",
		"dot-notation":           list{"error", obj{"allowKeywords": true}},
		"eqeqeq":                 list{"error", "always", obj{"null": "ignore"}},
		"grouped-accessor-pairs": "error",
		"guard-for-in":           "error",
		"line-comment-position": list{"error", obj{
			"applyDefaultPatterns": true,
			"ignorePattern":        "",
			"position":             "above",
		}},
		"logical-assignment-operators":  list{"error", "always", obj{"enforceForIfStatements": true}},
		"max-classes-per-file":          list{"error", 1},
		"new-cap":                       list{"error", obj{"capIsNew": false, "newIsCap": true}},
		"no-alert":                      "error",
		"no-array-constructor":          "error",
		"no-await-in-loop":              "error",
		"no-bitwise":                    "error",
		"no-caller":                     "error",
		"no-console":                    list{"error", obj{"allow": list{"warn", "error"}}},
		"no-constant-binary-expression": "error",
		"no-constructor-return":         "error",
		"no-div-regex":                  "error",
		"no-else-return":                list{"error", obj{"allowElseIf": false}},
		"no-empty-function": list{"error", obj{
			"allow": list{"arrowFunctions", "functions", "methods", "constructors"},
		}},
		"no-empty-static-block": "error",
		"no-eval":               "error",
		"no-extend-native":      "error",
		"no-extra-bind":         "error",
		"no-extra-label":        "error",
		"no-extra-semi":         "off",
		"no-implicit-coercion": list{"error", obj{
			"allow":   list{},
			"boolean": false,
			"number":  true,
			"string":  true,
		}},
		"no-implied-eval":              "error",
		"no-invalid-this":              "error",
		"no-label-var":                 "error",
		"no-labels":                    list{"error", obj{"allowLoop": false, "allowSwitch": false}},
		"no-lone-blocks":               "error",
		"no-lonely-if":                 "error",
		"no-loop-func":                 "error",
		"no-magic-numbers":             magicNumbers(),
		"no-mixed-spaces-and-tabs":     "off",
		"no-multi-assign":              "error",
		"no-multi-str":                 "error",
		"no-nested-ternary":            "error",
		"no-new":                       "error",
		"no-new-func":                  "error",
		"no-new-native-nonconstructor": "error",
		"no-new-wrappers":              "error",
		"no-object-constructor":        "error",
		"no-octal-escape":              "error",
		"no-param-reassign": list{"error", obj{
			"ignorePropertyModificationsFor": list{"acc"},
			"props":                          true,
		}},
		"no-plusplus":                "error",
		"no-promise-executor-return": "error",
		"no-proto":                   "error",
		"no-restricted-exports": list{"error", obj{
			"restrictedNamedExports": list{"default", "then"},
		}},
		"no-restricted-globals":    restrictedGlobals(confusing),
		"no-restricted-properties": restrictedProperties(),
		"no-restricted-syntax": list{
			"error",
			obj{
				"message":  "for..in loops iterate over the entire prototype chain, which is virtually never what you want. Use Object.{keys,values,entries}, and iterate over the resulting array.",
				"selector": "ForInStatement",
			},
			obj{
				"message":  "Labels are a form of GOTO; using them makes code confusing and hard to maintain and understand.",
				"selector": "LabeledStatement",
			},
			obj{
				"message":  "`with` is disallowed in strict mode because it makes code impossible to predict and optimize.",
				"selector": "WithStatement",
			},
			obj{
				"message":  "`debugger` statement use is discouraged.",
				"selector": "DebuggerStatement",
			},
		},
		"no-return-assign":            list{"error", "always"},
		"no-script-url":               "error",
		"no-self-compare":             "error",
		"no-sequences":                "error",
		"no-shadow":                   "error",
		"no-template-curly-in-string": "error",
		"no-throw-literal":            "error",
		"no-undef-init":               "error",
		"no-undefined":                "off",
		"no-underscore-dangle": list{"error", obj{
			"allow":                list{},
			"allowAfterSuper":      false,
			"allowAfterThis":       false,
			"enforceInMethodNames": true,
		}},
		"no-unmodified-loop-condition": "error",
		"no-unneeded-ternary":          list{"error", obj{"defaultAssignment": false}},
		"no-unreachable-loop":          list{"error"},
		"no-unused-expressions": list{"error", obj{
			"allowShortCircuit":    false,
			"allowTaggedTemplates": false,
			"allowTernary":         false,
		}},
		"no-unused-private-class-members": "error",
		"no-unused-vars":                  list{"error", obj{"args": "after-used", "ignoreRestSiblings": true, "vars": "all"}},
		"no-use-before-define":            list{"error", obj{"classes": true, "functions": true, "variables": true}},
		"no-useless-call":                 "off",
		"no-useless-computed-key":         "error",
		"no-useless-concat":               "error",
		"no-useless-constructor":          "error",
		"no-useless-escape":               "error",
		"no-useless-rename": list{"error", obj{
			"ignoreDestructuring": false,
			"ignoreExport":        false,
			"ignoreImport":        false,
		}},
		"no-useless-return":   "error",
		"no-var":              "error",
		"no-void":             "error",
		"object-shorthand":    list{"error", "always", obj{"avoidQuotes": true, "ignoreConstructors": false}},
		"one-var":             list{"error", "never"},
		"operator-assignment": list{"error", "always"},
		"prefer-arrow-callback": list{"error", obj{
			"allowNamedFunctions": false,
			"allowUnboundThis":    true,
		}},
		"prefer-const": list{"error", obj{
			"destructuring":          "all",
			"ignoreReadBeforeAssign": true,
		}},
		"prefer-destructuring": list{
			"error",
			obj{
				"AssignmentExpression": obj{"array": true, "object": false},
				"VariableDeclarator":   obj{"array": false, "object": true},
			},
			obj{"enforceForRenamedProperties": false},
		},
		"prefer-exponentiation-operator": "error",
		"prefer-numeric-literals":        "error",
		"prefer-object-has-own":          "error",
		"prefer-object-spread":           "error",
		"prefer-promise-reject-errors":   list{"error", obj{"allowEmptyReject": true}},
		"prefer-regex-literals":          list{"error", obj{"disallowRedundantWrapping": true}},
		"prefer-rest-params":             "error",
		"prefer-spread":                  "error",
		"prefer-template":                "error",
		"radix":                          "error",
		"require-atomic-updates":         "error",
		"require-await":                  "off",
		"symbol-description":             "error",
		"unicode-bom":                    list{"error", "never"},
		"yoda":                           "error",
	}
}

func magicNumbers() list {
	return list{"error", obj{
		"detectObjects":      false,
		"enforceConst":       true,
		"ignore":             list{1, 0, -1, 2},
		"ignoreArrayIndexes": true,
	}}
}

func restrictedProperties() list {
	numberIsFinite := "Please use `Number.isFinite` instead"
	numberIsNaN := "Please use `Number.isNaN` instead"
	defineProperty := "Please use `Object.defineProperty` instead."

	return list{
		"error",
		obj{"message": "Use `Object.getPrototypeOf` or `Object.setPrototypeOf` instead.", "property": "__proto__"},
		obj{"message": "`arguments.callee` is deprecated", "object": "arguments", "property": "callee"},
		obj{"message": numberIsFinite, "object": "global", "property": "isFinite"},
		obj{"message": numberIsFinite, "object": "self", "property": "isFinite"},
		obj{"message": numberIsFinite, "object": "window", "property": "isFinite"},
		obj{"message": numberIsNaN, "object": "global", "property": "isNaN"},
		obj{"message": numberIsNaN, "object": "self", "property": "isNaN"},
		obj{"message": numberIsNaN, "object": "window", "property": "isNaN"},
		obj{"message": defineProperty, "property": "__defineGetter__"},
		obj{"message": defineProperty, "property": "__defineSetter__"},
		obj{"message": "Use the exponentiation operator (**) instead.", "object": "Math", "property": "pow"},
	}
}

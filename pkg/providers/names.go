package providers

// Published names of the packages the dialect builders depend on
const (
	ESLintJS                = "@eslint/js"
	Globals                 = "globals"
	ConfusingBrowserGlobals = "confusing-browser-globals"
	ESLintComments          = "eslint-plugin-eslint-comments"
	Import                  = "eslint-plugin-import"
	Unicorn                 = "eslint-plugin-unicorn"
	Perfectionist           = "eslint-plugin-perfectionist"
	Node                    = "eslint-plugin-n"
	Security                = "eslint-plugin-security"
	Stylistic               = "@stylistic/eslint-plugin"
	TypeScriptESLint        = "typescript-eslint"
	JSONC                   = "eslint-plugin-jsonc"
	JSONCParser             = "jsonc-eslint-parser"
	YAML                    = "eslint-plugin-yml"
	YAMLParser              = "yaml-eslint-parser"
	TOML                    = "eslint-plugin-toml"
	TOMLParser              = "toml-eslint-parser"

	// TypeScript is the compiler itself; only probed, never resolved
	TypeScript = "typescript"
)

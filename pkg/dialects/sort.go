package dialects

import (
	"context"

	"github.com/arthur-debert/flatcfg/pkg/compose"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/globs"
)

// SortPackageJSON builds the fragment ordering the keys of package.json
// manifests. It relies on the JSONC fragment for the parser and plugin.
func SortPackageJSON() compose.Producer {
	return func(ctx context.Context) ([]fragment.Fragment, error) {
		return built(fragment.Fragment{
			Name:  NameSortPackageJSON,
			Files: []string{globs.PackageJSON},
			Rules: fragment.Rules{
				"jsonc/sort-array-values": list{
					"error",
					obj{"order": obj{"type": "asc"}, "pathPattern": "^files$"},
				},
				"jsonc/sort-keys": list{
					"error",
					obj{"order": toList(packageJSONOrder), "pathPattern": "^$"},
					obj{
						"order":       obj{"type": "asc"},
						"pathPattern": "^(?:dev|peer|optional|bundled)?[Dd]ependencies(Meta)?$",
					},
					obj{"order": obj{"type": "asc"}, "pathPattern": "^(?:resolutions|overrides|pnpm.overrides)$"},
					obj{"order": toList([]string{"types", "import", "require", "default"}), "pathPattern": "^exports.*$"},
					obj{"order": toList(gitHooksOrder), "pathPattern": "^(?:gitHooks|husky|simple-git-hooks)$"},
				},
			},
		}), nil
	}
}

// SortTSConfig builds the fragment ordering the keys of tsconfig files
func SortTSConfig() compose.Producer {
	return func(ctx context.Context) ([]fragment.Fragment, error) {
		return built(fragment.Fragment{
			Name:  NameSortTSConfig,
			Files: []string{globs.TSConfig, globs.TSAnyConfig},
			Rules: fragment.Rules{
				"jsonc/sort-keys": list{
					"error",
					obj{
						"order":       toList([]string{"extends", "compilerOptions", "references", "files", "include", "exclude"}),
						"pathPattern": "^$",
					},
					obj{"order": toList(compilerOptionsOrder), "pathPattern": "^compilerOptions$"},
				},
			},
		}), nil
	}
}

var packageJSONOrder = []string{
	"publisher",
	"name",
	"displayName",
	"type",
	"version",
	"private",
	"packageManager",
	"description",
	"author",
	"contributors",
	"license",
	"funding",
	"homepage",
	"repository",
	"bugs",
	"keywords",
	"categories",
	"sideEffects",
	"exports",
	"main",
	"module",
	"unpkg",
	"jsdelivr",
	"types",
	"typesVersions",
	"bin",
	"icon",
	"files",
	"engines",
	"activationEvents",
	"contributes",
	"scripts",
	"peerDependencies",
	"peerDependenciesMeta",
	"dependencies",
	"optionalDependencies",
	"devDependencies",
	"pnpm",
	"overrides",
	"resolutions",
	"husky",
	"simple-git-hooks",
	"lint-staged",
	"eslintConfig",
}

var gitHooksOrder = []string{
	"pre-commit",
	"prepare-commit-msg",
	"commit-msg",
	"post-commit",
	"pre-rebase",
	"post-rewrite",
	"post-checkout",
	"post-merge",
	"pre-push",
	"pre-auto-gc",
}

var compilerOptionsOrder = []string{
	// projects
	"incremental",
	"composite",
	"tsBuildInfoFile",
	"disableSourceOfProjectReferenceRedirect",
	"disableSolutionSearching",
	"disableReferencedProjectLoad",
	// language and environment
	"target",
	"jsx",
	"jsxFactory",
	"jsxFragmentFactory",
	"jsxImportSource",
	"lib",
	"moduleDetection",
	"noLib",
	"reactNamespace",
	"useDefineForClassFields",
	"emitDecoratorMetadata",
	"experimentalDecorators",
	// modules
	"baseUrl",
	"rootDir",
	"rootDirs",
	"customConditions",
	"module",
	"moduleResolution",
	"moduleSuffixes",
	"noResolve",
	"paths",
	"resolveJsonModule",
	"resolvePackageJsonExports",
	"resolvePackageJsonImports",
	"typeRoots",
	"types",
	"allowArbitraryExtensions",
	"allowImportingTsExtensions",
	"allowUmdGlobalAccess",
	// javascript support
	"allowJs",
	"checkJs",
	"maxNodeModuleJsDepth",
	// type checking
	"strict",
	"strictBindCallApply",
	"strictFunctionTypes",
	"strictNullChecks",
	"strictPropertyInitialization",
	"allowUnreachableCode",
	"allowUnusedLabels",
	"alwaysStrict",
	"exactOptionalPropertyTypes",
	"noFallthroughCasesInSwitch",
	"noImplicitAny",
	"noImplicitOverride",
	"noImplicitReturns",
	"noImplicitThis",
	"noPropertyAccessFromIndexSignature",
	"noUncheckedIndexedAccess",
	"noUnusedLocals",
	"noUnusedParameters",
	"useUnknownInCatchVariables",
	// emit
	"declaration",
	"declarationDir",
	"declarationMap",
	"downlevelIteration",
	"emitBOM",
	"emitDeclarationOnly",
	"importHelpers",
	"importsNotUsedAsValues",
	"inlineSourceMap",
	"inlineSources",
	"mapRoot",
	"newLine",
	"noEmit",
	"noEmitHelpers",
	"noEmitOnError",
	"outDir",
	"outFile",
	"preserveConstEnums",
	"preserveValueImports",
	"removeComments",
	"sourceMap",
	"sourceRoot",
	"stripInternal",
	// interop constraints
	"allowSyntheticDefaultImports",
	"esModuleInterop",
	"forceConsistentCasingInFileNames",
	"isolatedModules",
	"preserveSymlinks",
	"verbatimModuleSyntax",
	// completeness
	"skipDefaultLibCheck",
	"skipLibCheck",
}

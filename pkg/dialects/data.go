package dialects

import (
	"context"

	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/providers"
)

// dataFragment resolves a plugin and its parser together and builds the
// fragment that lints one structured-data dialect.
func dataFragment(ctx context.Context, res providers.Resolver, plugin, parser, name string, files []string, rules fragment.Rules) ([]fragment.Fragment, error) {
	pkgs, err := providers.ResolveAll(ctx, res, plugin, parser)
	if err != nil {
		return nil, err
	}

	return built(fragment.Fragment{
		Name:            name,
		Files:           files,
		LanguageOptions: &fragment.LanguageOptions{Parser: pkgs[1].Name},
		Plugins:         pkgs[0].Plugins(),
		Rules:           rules,
	}), nil
}

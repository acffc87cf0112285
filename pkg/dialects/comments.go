package dialects

import (
	"context"

	"github.com/arthur-debert/flatcfg/pkg/compose"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/providers"
)

// Comments builds the fragment checking eslint-disable style directive
// comments.
func Comments(res providers.Resolver) compose.Producer {
	return func(ctx context.Context) ([]fragment.Fragment, error) {
		pkg, err := res.Resolve(ctx, providers.ESLintComments)
		if err != nil {
			return nil, err
		}

		return built(fragment.Fragment{
			Name:    NameComments,
			Plugins: pkg.Plugins(),
			Rules: fragment.Rules{
				"eslint-comments/disable-enable-pair":   "error",
				"eslint-comments/no-aggregating-enable": "error",
				"eslint-comments/no-duplicate-disable":  "error",
				"eslint-comments/no-unlimited-disable":  "error",
				"eslint-comments/no-unused-disable":     "error",
				"eslint-comments/no-unused-enable":      "error",
			},
		}), nil
	}
}

package dialects

import (
	"context"

	"github.com/arthur-debert/flatcfg/pkg/compose"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/providers"
)

// Unicorn builds the fragment from the plugin's recommended config, with
// Error subclassing and buffer JSON parsing enforced on top.
func Unicorn(res providers.Resolver) compose.Producer {
	return func(ctx context.Context) ([]fragment.Fragment, error) {
		pkg, err := res.Resolve(ctx, providers.Unicorn)
		if err != nil {
			return nil, err
		}
		recommended, err := pkg.Config("flat/recommended")
		if err != nil {
			return nil, err
		}

		f := squash(recommended)
		f.Name = NameUnicorn
		f.Rules = fragment.MergeRules(f.Rules, fragment.Rules{
			"unicorn/custom-error-definition":  "error",
			"unicorn/prefer-json-parse-buffer": "error",
		})
		return built(f), nil
	}
}

package dialects

import (
	"context"

	"github.com/arthur-debert/flatcfg/pkg/compose"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/providers"
)

// Perfectionist registers the sorting plugin without enabling any rule, so
// that callers can turn on the sort rules they want.
func Perfectionist(res providers.Resolver) compose.Producer {
	return func(ctx context.Context) ([]fragment.Fragment, error) {
		pkg, err := res.Resolve(ctx, providers.Perfectionist)
		if err != nil {
			return nil, err
		}
		return built(fragment.Fragment{
			Name:    NamePerfectionist,
			Plugins: pkg.Plugins(),
		}), nil
	}
}

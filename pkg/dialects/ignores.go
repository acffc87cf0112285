package dialects

import (
	"context"

	"github.com/arthur-debert/flatcfg/pkg/compose"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/globs"
)

// Ignores builds the global ignore fragment. It has no name so that the host
// engine treats it as ignoring the listed paths for every other fragment.
func Ignores() compose.Producer {
	return func(ctx context.Context) ([]fragment.Fragment, error) {
		return built(fragment.Fragment{Ignores: globs.IgnoreList()}), nil
	}
}

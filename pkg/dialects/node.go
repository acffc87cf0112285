package dialects

import (
	"context"

	"github.com/arthur-debert/flatcfg/pkg/compose"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/providers"
)

// NodeOptions configures the Node.js fragment
type NodeOptions struct {
	Overrides fragment.Rules
}

// Node builds the Node.js fragment on top of the plugin's ES module
// baseline. The baseline's plugins and language options are kept.
func Node(res providers.Resolver, opts NodeOptions) compose.Producer {
	return func(ctx context.Context) ([]fragment.Fragment, error) {
		pkg, err := res.Resolve(ctx, providers.Node)
		if err != nil {
			return nil, err
		}
		recommended, err := pkg.Config("flat/recommended-module")
		if err != nil {
			return nil, err
		}

		f := squash(recommended)
		f.Name = NameNode
		f.Rules = fragment.MergeRules(f.Rules, nodePolicy(), opts.Overrides)
		return built(f), nil
	}
}

func nodePolicy() fragment.Rules {
	return fragment.Rules{
		"n/handle-callback-err":             list{"error", "^(err|error)$"},
		"n/no-missing-import":               "off",
		"n/no-path-concat":                  "error",
		"n/no-process-env":                  "error",
		"n/no-sync":                         list{"error", obj{"allowAtRootLevel": true}},
		"n/prefer-global/buffer":            list{"error", "never"},
		"n/prefer-global/console":           list{"error", "always"},
		"n/prefer-global/process":           list{"error", "never"},
		"n/prefer-global/url":               list{"error", "always"},
		"n/prefer-global/url-search-params": list{"error", "always"},
		"n/prefer-promises/dns":             "error",
		"n/prefer-promises/fs":              "error",
	}
}

// NodeSecurity builds the security fragment from the plugin's recommended
// config. Object injection detection is off; it reports nearly every
// computed member access.
func NodeSecurity(res providers.Resolver) compose.Producer {
	return func(ctx context.Context) ([]fragment.Fragment, error) {
		pkg, err := res.Resolve(ctx, providers.Security)
		if err != nil {
			return nil, err
		}
		recommended, err := pkg.Config("recommended")
		if err != nil {
			return nil, err
		}

		f := squash(recommended)
		f.Name = NameNodeSecurity
		f.Rules = fragment.MergeRules(f.Rules, fragment.Rules{
			"security/detect-object-injection": "off",
		})
		return built(f), nil
	}
}

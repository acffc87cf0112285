// Package preset is the entry point: it turns an options record into the
// ordered list of configuration fragments handed to the host lint engine.
package preset

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/flatcfg/pkg/compose"
	"github.com/arthur-debert/flatcfg/pkg/dialects"
	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/logging"
	"github.com/arthur-debert/flatcfg/pkg/options"
	"github.com/arthur-debert/flatcfg/pkg/probe"
	"github.com/arthur-debert/flatcfg/pkg/providers"
)

// Preset assembles fragments with a fixed resolver and probe
type Preset struct {
	resolver providers.Resolver
	probe    probe.Probe
	logger   zerolog.Logger
}

// Option configures a Preset
type Option func(*Preset)

// WithResolver sets where rule providers are loaded from
func WithResolver(r providers.Resolver) Option {
	return func(p *Preset) {
		p.resolver = r
	}
}

// WithProbe sets the probe that decides the TypeScript default
func WithProbe(pr probe.Probe) Option {
	return func(p *Preset) {
		p.probe = pr
	}
}

// WithLogger sets the logger used for build events
func WithLogger(l zerolog.Logger) Option {
	return func(p *Preset) {
		p.logger = l
	}
}

// New creates a Preset. Without options it serves the built-in provider
// tables and probes node_modules from the working directory.
func New(opts ...Option) *Preset {
	p := &Preset{
		resolver: providers.NewRegistryResolver(nil),
		probe:    probe.Memoize(probe.NewOSProbe()),
		logger:   logging.GetLogger("preset"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Step is one entry of the assembly plan
type Step struct {
	Name    string
	Produce compose.Producer
}

// Steps returns the plan for opts, in output order: ignores, javascript,
// comments, imports, unicorn, perfectionist, then node and node-security,
// stylistic, typescript, jsonc with the two sort fragments, yaml, toml and
// the raw fragment, each only when enabled.
func (p *Preset) Steps(opts options.Options) []Step {
	r := options.Normalize(opts, p.probe)
	res := p.resolver

	steps := []Step{
		{"ignores", dialects.Ignores()},
		{"javascript", dialects.JavaScript(res, dialects.JavaScriptOptions{
			Overrides: r.JavaScript.Overrides,
			Node:      r.NodeEnabled(),
		})},
		{"comments", dialects.Comments(res)},
		{"imports", dialects.Imports(res, dialects.ImportsOptions{
			TypeScript: r.TypeScriptEnabled(),
			Node:       r.NodeEnabled(),
			Stylistic:  r.StylisticEnabled(),
		})},
		{"unicorn", dialects.Unicorn(res)},
		{"perfectionist", dialects.Perfectionist(res)},
	}

	if r.Node != nil {
		steps = append(steps, Step{"node", dialects.Node(res, dialects.NodeOptions{Overrides: r.Node.Overrides})})
		if r.Node.Security {
			steps = append(steps, Step{"node-security", dialects.NodeSecurity(res)})
		}
	}

	if r.Stylistic != nil {
		steps = append(steps, Step{"stylistic", dialects.Stylistic(res, dialects.StylisticOptions{
			StylisticConfig: *r.Stylistic,
			TypeScript:      r.TypeScriptEnabled(),
		})})
	}

	if r.TypeScript != nil {
		steps = append(steps, Step{"typescript", dialects.TypeScript(res, *r.TypeScript)})
	}

	if r.JSONC != nil {
		steps = append(steps,
			Step{"jsonc", dialects.JSONC(res, dataOptions(*r.JSONC, r.Stylistic))},
			Step{"sort-package-json", dialects.SortPackageJSON()},
			Step{"sort-tsconfig", dialects.SortTSConfig()},
		)
	}

	if r.YAML != nil {
		steps = append(steps, Step{"yaml", dialects.YAML(res, dataOptions(*r.YAML, r.Stylistic))})
	}

	if r.TOML != nil {
		steps = append(steps, Step{"toml", dialects.TOML(res, dataOptions(*r.TOML, r.Stylistic))})
	}

	if r.Raw != nil {
		steps = append(steps, Step{"raw", compose.Static(*r.Raw)})
	}

	return steps
}

// Producers returns the producers of Steps, without the names
func (p *Preset) Producers(opts options.Options) []compose.Producer {
	steps := p.Steps(opts)
	out := make([]compose.Producer, len(steps))
	for i, s := range steps {
		out[i] = s.Produce
	}
	return out
}

// Build assembles the fragment list for opts. User producers are appended
// after the built-in ones, in the order given. Any failure aborts the whole
// build: the error is returned unmodified and no fragments are returned.
func (p *Preset) Build(ctx context.Context, opts options.Options, user ...compose.Producer) ([]fragment.Fragment, error) {
	done := logging.LogOperationStart(p.logger, "build")
	defer done()

	producers := append(p.Producers(opts), user...)
	p.logger.Debug().
		Int("producers", len(producers)).
		Int("user", len(user)).
		Msg("Assembling configuration")

	frags, err := compose.Combine(ctx, producers...)
	if err != nil {
		p.logger.Debug().Err(err).Msg("Build failed")
		return nil, err
	}
	return frags, nil
}

// BuildConfig builds with a default Preset
func BuildConfig(ctx context.Context, opts options.Options, user ...compose.Producer) ([]fragment.Fragment, error) {
	return New().Build(ctx, opts, user...)
}

func dataOptions(o options.DialectOptions, style *options.StylisticConfig) dialects.DataOptions {
	return dialects.DataOptions{
		Overrides: o.Overrides,
		Files:     o.Files,
		Stylistic: style,
	}
}

package providers

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/flatcfg/pkg/errors"
	"github.com/arthur-debert/flatcfg/pkg/logging"
	"github.com/arthur-debert/flatcfg/pkg/probe"
	"github.com/arthur-debert/flatcfg/pkg/registry"
)

// Resolver loads a provider package by its published name
type Resolver interface {
	Resolve(ctx context.Context, name string) (*Package, error)
}

// ResolverFunc adapts a function to the Resolver interface
type ResolverFunc func(ctx context.Context, name string) (*Package, error)

func (f ResolverFunc) Resolve(ctx context.Context, name string) (*Package, error) {
	return f(ctx, name)
}

// RegistryResolver serves packages from a registry
type RegistryResolver struct {
	reg registry.Registry[*Package]
}

// NewRegistryResolver creates a resolver over reg. A nil reg means the
// built-in registry.
func NewRegistryResolver(reg registry.Registry[*Package]) *RegistryResolver {
	if reg == nil {
		reg = builtin
	}
	return &RegistryResolver{reg: reg}
}

func (r *RegistryResolver) Resolve(ctx context.Context, name string) (*Package, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := r.reg.Get(name)
	if err != nil {
		notFound := errors.Newf(errors.ErrProviderNotFound, "provider %s is not available", name).
			WithDetail("package", name)
		notFound.Wrapped = err
		return nil, notFound
	}
	logger := logging.GetLogger("providers")
	logger.Trace().Str("package", name).Msg("Resolved provider")
	return p, nil
}

// ProbedResolver only resolves packages the probe reports as installed
type ProbedResolver struct {
	inner Resolver
	probe probe.Probe
}

// NewProbedResolver wraps inner so that packages missing from the project
// fail with ErrProviderNotFound.
func NewProbedResolver(inner Resolver, p probe.Probe) *ProbedResolver {
	return &ProbedResolver{inner: inner, probe: p}
}

func (r *ProbedResolver) Resolve(ctx context.Context, name string) (*Package, error) {
	if !r.probe.PackageExists(name) {
		return nil, errors.Newf(errors.ErrProviderNotFound, "package %s is not installed", name).
			WithDetail("package", name)
	}
	return r.inner.Resolve(ctx, name)
}

// ResolveAll resolves the named packages concurrently. The result keeps the
// order of names; the first failure is returned unmodified.
func ResolveAll(ctx context.Context, res Resolver, names ...string) ([]*Package, error) {
	pkgs := make([]*Package, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			p, err := res.Resolve(gctx, name)
			if err != nil {
				return err
			}
			pkgs[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return pkgs, nil
}

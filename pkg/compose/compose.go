// Package compose joins fragment producers concurrently and flattens their
// results in the order the producers were given.
package compose

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/flatcfg/pkg/fragment"
	"github.com/arthur-debert/flatcfg/pkg/logging"
)

// Producer yields zero or more fragments. It may block, e.g. while resolving
// a rule provider.
type Producer func(ctx context.Context) ([]fragment.Fragment, error)

// Static wraps already-built fragments as a Producer. Each call hands out a
// fresh copy.
func Static(frags ...fragment.Fragment) Producer {
	return func(context.Context) ([]fragment.Fragment, error) {
		return fragment.CloneAll(frags), nil
	}
}

// Combine runs every producer concurrently, waits for all of them, and
// concatenates their results in argument order. Completion order never
// affects the output. The first error is returned as-is and cancels the
// context seen by the remaining producers; no partial list is returned.
// Nil producers are skipped.
func Combine(ctx context.Context, producers ...Producer) ([]fragment.Fragment, error) {
	logger := logging.GetLogger("compose")
	done := logging.LogOperationStart(logger, "combine")
	defer done()

	// each goroutine owns results[i], so no lock is needed
	results := make([][]fragment.Fragment, len(producers))

	g, gctx := errgroup.WithContext(ctx)
	for i, produce := range producers {
		if produce == nil {
			continue
		}
		g.Go(func() error {
			frags, err := produce(gctx)
			if err != nil {
				return err
			}
			results[i] = frags
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Debug().Err(err).Int("producers", len(producers)).Msg("Combine failed")
		return nil, err
	}

	out := Flatten(results)
	logger.Trace().Int("producers", len(producers)).Int("fragments", len(out)).Msg("Combined fragments")
	return out, nil
}

// Flatten concatenates groups one level deep, preserving order. A single
// group is returned as an equal list, so flattening flat input is a no-op.
func Flatten(groups [][]fragment.Fragment) []fragment.Fragment {
	total := 0
	for _, group := range groups {
		total += len(group)
	}

	out := make([]fragment.Fragment, 0, total)
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}

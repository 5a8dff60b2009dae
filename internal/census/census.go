// Package census advances many independently seeded boards and reports how
// each one ends up: still running, settled into a still life, or cycling.
package census

import (
	"context"
	"runtime"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifeboard/internal/core"
	rng "lifeboard/pkg/core"
	"lifeboard/pkg/life"
)

// Options controls a census run.
type Options struct {
	Span        int
	Density     float64
	Generations int
	Seeds       []int64
	Workers     int

	// Window is how many past generations are checked for repeats.
	Window int
}

// Result summarizes one seeded board.
type Result struct {
	Seed       int64
	Initial    int
	Population int

	// Generation is the last generation examined.
	Generation int

	// Period is 1 for a still life, >1 for an oscillator, 0 if no repeat was seen.
	Period int
}

// Settled reports whether the board reached a repeating state.
func (r Result) Settled() bool { return r.Period > 0 }

// Run evaluates every seed, at most Workers at a time, and returns results
// ordered by seed.
func Run(ctx context.Context, opts Options) ([]Result, error) {
	if opts.Span <= 0 {
		return nil, errors.Wrapf(life.ErrInvalidSpan, "census span %d", opts.Span)
	}
	if opts.Generations < 0 {
		return nil, errors.Wrapf(core.ErrInvalidConfiguration, "generations %d", opts.Generations)
	}
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, len(opts.Seeds))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, seed := range opts.Seeds {
		g.Go(func() error {
			res, err := runSeed(ctx, opts, seed)
			if err != nil {
				return errors.Wrapf(err, "seed %d", seed)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	sort.Slice(results, func(a, b int) bool { return results[a].Seed < results[b].Seed })
	return results, nil
}

func runSeed(ctx context.Context, opts Options, seed int64) (Result, error) {
	board, err := life.Random(opts.Span, opts.Density, rng.NewRNG(seed))
	if err != nil {
		return Result{}, err
	}
	res := Result{Seed: seed, Initial: board.Population()}
	history := life.NewHistory(max(opts.Window, 1))
	for gen := 0; ; gen++ {
		if gen%64 == 0 {
			if err := ctx.Err(); err != nil {
				return Result{}, err
			}
		}
		res.Generation = gen
		res.Population = board.Population()
		if p := history.Period(board); p > 0 {
			res.Period = p
			break
		}
		if gen == opts.Generations {
			break
		}
		history.Push(board)
		board = board.NextGeneration()
	}
	return res, nil
}

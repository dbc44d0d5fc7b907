// Package batch computes statistics over many hands in parallel. Per-hand
// results merge associatively, so hands are partitioned across workers and
// worker-local aggregates are folded at the end.
package batch

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Andres-Briones/OpenPokerTracker/internal/ohh"
	"github.com/Andres-Briones/OpenPokerTracker/internal/stats"
)

// HandError pairs a failed hand's identity with its error.
type HandError struct {
	GameID string
	Err    error
}

func (e HandError) Error() string {
	return "hand " + e.GameID + ": " + e.Err.Error()
}

func (e HandError) Unwrap() error { return e.Err }

// Result is the outcome of a corpus run. One hand's failure never aborts
// the batch; failures are collected alongside the partial aggregate.
type Result struct {
	Aggregate *stats.Aggregator
	Ranges    map[string]*stats.RangeMatrix
	Processed int
	Skipped   int // anonymous hands, excluded by design
	Failures  []HandError
}

// Options configures a batch run.
type Options struct {
	Workers      int            // defaults to min(NumCPU, 8)
	RangePlayers []string       // players to build range matrices for
	Aggregator   []stats.Option // passed through to each worker's aggregator
}

type workerResult struct {
	agg       *stats.Aggregator
	ranges    map[string]*stats.RangeMatrix
	processed int
	skipped   int
	failures  []HandError
}

// Process computes and aggregates statistics for every hand.
func Process(ctx context.Context, hands []*ohh.Hand, opts Options) (*Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
		if workers > 8 {
			workers = 8
		}
	}
	if workers > len(hands) {
		workers = len(hands)
	}
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan workerResult, workers)

	chunk := len(hands) / workers
	remainder := len(hands) % workers
	start := 0
	for w := 0; w < workers; w++ {
		size := chunk
		if w < remainder {
			size++
		}
		part := hands[start : start+size]
		start += size

		g.Go(func() error {
			res := processChunk(part, opts)
			select {
			case results <- res:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	go func() {
		g.Wait()
		close(results)
	}()

	out := &Result{
		Aggregate: stats.NewAggregator(opts.Aggregator...),
		Ranges:    make(map[string]*stats.RangeMatrix, len(opts.RangePlayers)),
	}
	for _, name := range opts.RangePlayers {
		out.Ranges[name] = stats.NewRangeMatrix(name)
	}
	for res := range results {
		out.Aggregate.Merge(res.agg)
		for name, m := range res.ranges {
			out.Ranges[name].Merge(m)
		}
		out.Processed += res.processed
		out.Skipped += res.skipped
		out.Failures = append(out.Failures, res.failures...)
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func processChunk(hands []*ohh.Hand, opts Options) workerResult {
	res := workerResult{
		agg:    stats.NewAggregator(opts.Aggregator...),
		ranges: make(map[string]*stats.RangeMatrix, len(opts.RangePlayers)),
	}
	for _, name := range opts.RangePlayers {
		res.ranges[name] = stats.NewRangeMatrix(name)
	}

	for _, hand := range hands {
		hs, err := stats.Compute(hand)
		if err != nil {
			if errors.Is(err, stats.ErrAnonymousHand) {
				res.skipped++
				continue
			}
			res.failures = append(res.failures, HandError{GameID: hand.GameNumber, Err: err})
			continue
		}
		res.agg.Add(hs)
		for _, m := range res.ranges {
			m.Add(hs)
		}
		res.processed++
	}
	return res
}

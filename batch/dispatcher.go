// Package batch implements bounded-concurrency fan-out of many queries
// across worker goroutines, with results joined by query string.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/tcrtrie/tcrtrie/engine"
	"github.com/tcrtrie/tcrtrie/search"
)

// Query is one entry of a batch: a query string plus the budget and filter
// to search it with.
type Query struct {
	Query  string
	Budget search.Budget
	Filter search.Filter
}

// Outcome is one query's result: either a list of matches, or the error
// that query alone produced. An error on one query contributes no results
// and does not abort the rest of the batch.
type Outcome struct {
	Matches []engine.Result
	Err     error
}

// concurrencyCap returns the dispatcher's in-flight query limit: multiplier
// x hardware_parallelism. A non-positive multiplier is treated as 10.
func concurrencyCap(multiplier int) int {
	if multiplier <= 0 {
		multiplier = 10
	}
	cap := multiplier * runtime.GOMAXPROCS(0)
	if cap < 1 {
		cap = 1
	}
	return cap
}

// Run executes every query in queries against e, bounded to at most
// multiplier x hardware_parallelism in-flight queries at once. The trie and
// corpus are read-only during search, so no synchronization beyond the
// engine's own matrix-swap lock is required. If the same query string
// appears more than once, the returned map holds the result of one of them
// — duplicates are not merged.
func Run(ctx context.Context, e *engine.Engine, queries []Query, multiplier int) map[string]Outcome {
	results := make([]Outcome, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrencyCap(multiplier))

	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			select {
			case <-gctx.Done():
				results[i] = Outcome{Err: gctx.Err()}
				return nil
			default:
			}
			matches, err := e.Search(q.Query, q.Budget, q.Filter)
			results[i] = Outcome{Matches: matches, Err: err}
			// Never return a non-nil error here: errgroup would cancel
			// gctx and short-circuit queries still in flight over a
			// single query's failure.
			return nil
		})
	}
	_ = g.Wait()

	joined := make(map[string]Outcome, len(queries))
	for i, q := range queries {
		joined[q.Query] = results[i]
	}
	return joined
}

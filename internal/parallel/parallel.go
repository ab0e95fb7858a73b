// Package parallel provides utilities for parallel execution of operations.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit is the default concurrency limit for parallel operations.
const DefaultLimit = 8

// Result holds the result of a parallel operation.
type Result[T any] struct {
	Value T
	Err   error
}

// Execute runs fn for each item concurrently with DefaultLimit.
// Results are returned in the same order as items.
func Execute[T any, R any](
	ctx context.Context,
	items []T,
	fn func(ctx context.Context, item T) (R, error),
) []Result[R] {
	return ExecuteWithLimit(ctx, items, DefaultLimit, fn)
}

// ExecuteWithLimit is like Execute but with a custom concurrency limit.
// Individual errors are captured in Result.Err rather than failing the entire operation.
// Items not started before ctx is canceled report ctx.Err().
func ExecuteWithLimit[T any, R any](
	ctx context.Context,
	items []T,
	limit int,
	fn func(ctx context.Context, item T) (R, error),
) []Result[R] {
	results := make([]Result[R], len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(limit, 1))

	for i, item := range items {
		if err := gctx.Err(); err != nil {
			results[i].Err = err

			continue
		}

		g.Go(func() error {
			// Each goroutine owns results[i]; no locking needed.
			value, err := fn(gctx, item)
			results[i] = Result[R]{Value: value, Err: err}

			return nil
		})
	}

	_ = g.Wait()

	return results
}

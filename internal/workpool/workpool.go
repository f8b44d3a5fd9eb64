// Package workpool provides a small goroutine pool for fanning independent
// jobs out across workers and gathering their results deterministically.
// It is a generalization of the worker-pool pattern this codebase already
// uses for CPU-bound fan-out, trimmed to a fixed job slice instead of an
// open-ended queue and parameterized over the job type; results are written
// by the job function itself.
package workpool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Run executes fn(i, jobs[i]) for every index of jobs across at most n
// concurrent goroutines (n<=0 defaults to GOMAXPROCS), then returns. It
// blocks until every job has been dispatched and every dispatched job has
// returned, or until ctx is cancelled -- in which case Run stops dispatching
// new jobs but still waits for in-flight ones, and returns ctx.Err() once
// those finish (or the first job error, if one occurred first).
//
// fn is responsible for writing its own result wherever the caller wants it
// (e.g. into a pre-sized slice indexed by i), so job order and result order
// are always the caller's index order, never goroutine completion order.
func Run[T any](ctx context.Context, n int, jobs []T, fn func(i int, job T) error) error {
	if len(jobs) == 0 {
		return nil
	}
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > len(jobs) {
		n = len(jobs)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(n)

	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		i, job := i, job
		g.Go(func() error {
			return fn(i, job)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

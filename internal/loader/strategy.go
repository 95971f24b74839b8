// internal/loader/strategy.go
package loader

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// ErrDispatch marks a failure of the parallel execution machinery itself,
// as opposed to a task failing. It selects the sequential fallback.
var ErrDispatch = errors.New("parallel dispatch failed")

// runner executes n independent tasks and returns the first task error.
type runner interface {
	Name() string
	Run(ctx context.Context, n int, task func(ctx context.Context, i int) error) error
}

// parallelRunner fans tasks out over a bounded worker group. A task error
// cancels the group and is returned as-is; only setup problems are reported
// as ErrDispatch.
type parallelRunner struct {
	workers int
}

func (r parallelRunner) Name() string { return "parallel" }

func (r parallelRunner) Run(ctx context.Context, n int, task func(ctx context.Context, i int) error) error {
	if r.workers < 1 {
		return fmt.Errorf("%w: invalid worker count %d", ErrDispatch, r.workers)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error { return task(gctx, i) })
	}
	return g.Wait()
}

// sequentialRunner is the recovery strategy: a plain loop, first error wins.
type sequentialRunner struct{}

func (sequentialRunner) Name() string { return "sequential" }

func (sequentialRunner) Run(ctx context.Context, n int, task func(ctx context.Context, i int) error) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := task(ctx, i); err != nil {
			return err
		}
	}
	return nil
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/matt-FFFFFF/grpr/internal/ctxlog"
	"github.com/matt-FFFFFF/grpr/internal/discovery"
	"github.com/matt-FFFFFF/grpr/internal/progress"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

// ErrInterrupted is returned by Dispatch when it stopped before every repository was
// started.
var ErrInterrupted = errors.New("interrupted before all repositories were processed")

// ErrPanic is wrapped into the failure reported for a repository whose run panicked.
var ErrPanic = errors.New("panic while running command")

// Runner runs something in a single repository.
type Runner interface {
	Run(ctx context.Context, path string) error
}

// DefaultWorkers is the worker count used when none is given.
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// Dispatcher finds repositories below a root and runs a Runner in each of them using
// a bounded number of workers.
type Dispatcher struct {
	fs       afero.Fs
	runner   Runner
	reporter progress.Reporter
	workers  int

	drain     chan struct{}
	drainOnce sync.Once
}

// NewDispatcher creates a Dispatcher. A workers value of zero or less selects
// DefaultWorkers. A nil reporter discards events.
func NewDispatcher(fs afero.Fs, runner Runner, reporter progress.Reporter, workers int) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	if reporter == nil {
		reporter = progress.NewNullReporter()
	}

	return &Dispatcher{
		fs:       fs,
		runner:   runner,
		reporter: reporter,
		workers:  workers,
		drain:    make(chan struct{}),
	}
}

// Workers returns the size of the worker pool.
func (d *Dispatcher) Workers() int {
	return d.workers
}

// Drain stops Dispatch from starting any more repositories. Runs already in progress
// are left alone. It is safe to call more than once and from any goroutine.
func (d *Dispatcher) Drain() {
	d.drainOnce.Do(func() {
		close(d.drain)
	})
}

func (d *Dispatcher) draining() bool {
	select {
	case <-d.drain:
		return true
	default:
		return false
	}
}

// Dispatch walks root and runs the Runner once in every repository found. It returns
// when all started runs have finished.
//
// Failures of individual repositories are reported, not returned. The only error is
// ErrInterrupted, when ctx was cancelled, or when Drain left a repository unstarted.
func (d *Dispatcher) Dispatch(ctx context.Context, root string) error {
	log := ctxlog.Logger(ctx).With("root", root)
	log.Debug("dispatching", "workers", d.workers)

	var g errgroup.Group

	g.SetLimit(d.workers)

	var skipped atomic.Bool

	scheduled := 0
	stopped := false

	for path := range discovery.Repositories(ctx, d.fs, root) {
		if d.draining() {
			stopped = true
			break
		}

		scheduled++

		// Go blocks while every worker is busy, so the walk is consumed lazily.
		g.Go(func() error {
			if d.draining() || ctx.Err() != nil {
				log.Debug("skipping repository", "path", path)
				skipped.Store(true)

				return nil
			}

			d.process(ctx, path)

			return nil
		})
	}

	_ = g.Wait()

	log.Debug("dispatch finished", "scheduled", scheduled)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInterrupted, context.Cause(ctx))
	}

	if stopped || skipped.Load() {
		return ErrInterrupted
	}

	return nil
}

func (d *Dispatcher) process(ctx context.Context, path string) {
	d.reporter.Report(progress.Event{Type: progress.EventStarted, Path: path})

	start := time.Now()
	err := d.run(ctx, path)
	elapsed := time.Since(start)

	if err != nil {
		ctxlog.Debug(ctx, "repository failed", "path", path, "error", err)
		d.reporter.Report(progress.Event{Type: progress.EventFailed, Path: path, Err: err, Elapsed: elapsed})

		return
	}

	d.reporter.Report(progress.Event{Type: progress.EventCompleted, Path: path, Elapsed: elapsed})
}

func (d *Dispatcher) run(ctx context.Context, path string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &RepositoryError{Path: path, Err: fmt.Errorf("%w: %v", ErrPanic, r)}
		}
	}()

	err = d.runner.Run(ctx, path)
	if err == nil {
		return nil
	}

	var repoErr *RepositoryError
	if !errors.As(err, &repoErr) {
		err = &RepositoryError{Path: path, Err: err}
	}

	return err
}

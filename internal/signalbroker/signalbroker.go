// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker turns termination signals into a two-stage shutdown.
//
// The first signal of a kind asks the run to stop scheduling new work while in-flight
// commands finish. A second signal of the same kind cancels the run outright, which
// interrupts and then kills the child processes still running.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/grpr/internal/ctxlog"
)

var termSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
}

// New registers a buffered channel for sigs, or for SIGINT and SIGTERM when none are given.
// Call Stop when the channel is no longer read.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	if len(sigs) == 0 {
		sigs = termSignals
	}

	ch := make(chan os.Signal, 2)

	ctxlog.Debug(ctx, "signalbroker", "detail", "registering signal channel", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Stop undoes New. The channel is not closed.
func Stop(ch chan os.Signal) {
	signal.Stop(ch)
}

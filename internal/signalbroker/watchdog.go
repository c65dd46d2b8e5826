// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/grpr/internal/ctxlog"
)

// Watch reads sigCh until ctx is done or sigCh is closed.
// The first signal of a kind calls drain; the second of the same kind calls cancel and returns.
func Watch(ctx context.Context, sigCh <-chan os.Signal, drain, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return

		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, dup := seen[sig]; dup {
				ctxlog.Warn(ctx, "watchdog",
					"detail", "second signal received, cancelling running commands",
					"signal", sig.String())
				cancel()

				return
			}

			seen[sig] = struct{}{}

			ctxlog.Warn(ctx, "watchdog",
				"detail", "signal received, finishing running commands; repeat to abort",
				"signal", sig.String())
			drain()
		}
	}
}

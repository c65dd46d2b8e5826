// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the grpr command-line application.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/matt-FFFFFF/grpr/cmd"
	"github.com/matt-FFFFFF/grpr/internal/ctxlog"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	err := cmd.RootCmd.Run(ctx, os.Args)

	cancel()

	if err != nil {
		// exit errors have already been printed
		var exitErr cli.ExitCoder
		if !errors.As(err, &exitErr) {
			ctxlog.Logger(ctx).Error("command failed", "error", err)
		}

		os.Exit(cmd.ExitCode(err))
	}

	ctxlog.Logger(ctx).Debug("command completed successfully")
	os.Exit(0)
}

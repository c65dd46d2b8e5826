// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/matt-FFFFFF/grpr/internal/config"
	"github.com/matt-FFFFFF/grpr/internal/ctxlog"
	"github.com/matt-FFFFFF/grpr/internal/discovery"
	"github.com/matt-FFFFFF/grpr/internal/progress"
	"github.com/matt-FFFFFF/grpr/internal/runbatch"
	"github.com/matt-FFFFFF/grpr/internal/signalbroker"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

var (
	// FsFactory returns the filesystem that is searched and that config files are read from.
	FsFactory = func() afero.Fs { return afero.NewOsFs() }

	// NewExecutor creates the executor that runs git in each repository.
	NewExecutor = func(ctx context.Context, git string, stdout, stderr io.Writer) runbatch.Executor {
		exec := runbatch.NewOSExecutor(ctx, git)
		exec.Stdout = stdout
		exec.Stderr = stderr

		return exec
	}

	// SignalSource returns the channel that termination signals are delivered on, and a
	// function to stop delivery.
	SignalSource = func(ctx context.Context) (<-chan os.Signal, func()) {
		ch := signalbroker.New(ctx)
		return ch, func() { signalbroker.Stop(ch) }
	}
)

// ErrRepositoriesFailed is returned when at least one repository failed.
var ErrRepositoriesFailed = errors.New("repositories failed")

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	fs := FsFactory()

	cfg, err := buildConfig(fs, cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	root, err := resolveRoot(cmd.String(rootFlag))
	if err != nil {
		return cli.Exit(fmt.Sprintf("could not resolve root directory: %s", err.Error()), 1)
	}

	printer := progress.NewPrinter(cmd.Writer, cmd.ErrWriter)
	printer.SetVerbose(cmd.Bool(verboseFlag))

	if cmd.Bool(listFlag) {
		for path := range discovery.Repositories(ctx, fs, root) {
			printer.PrintRepository(path)
		}

		return nil
	}

	command := runbatch.CommandSpec(cfg.Command)
	if len(command) == 0 {
		command = runbatch.DefaultCommand
	}

	action, err := runbatch.NewAction(command, NewExecutor(ctx, cfg.Git, cmd.Writer, cmd.ErrWriter))
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	tally := &progress.Tally{}
	d := runbatch.NewDispatcher(fs, action, progress.Multi(printer, tally), cfg.Workers)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh, stop := SignalSource(runCtx)
	defer stop()

	go signalbroker.Watch(runCtx, sigCh, d.Drain, cancel)

	ctxlog.Info(ctx, "starting",
		"root", root,
		"command", command.String(),
		"git", cfg.Git,
		"workers", d.Workers())

	dispatchErr := d.Dispatch(runCtx, root)

	if cfg.Summary {
		printer.PrintSummary(tally)
	}

	ctxlog.Info(ctx, "finished",
		"repositories", tally.Total(),
		"succeeded", tally.Succeeded(),
		"failed", tally.Failed())

	if dispatchErr != nil {
		return cli.Exit(dispatchErr.Error(), 1)
	}

	if tally.Failed() > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d %s", tally.Failed(), tally.Total(), ErrRepositoriesFailed), 1)
	}

	return nil
}

func buildConfig(fs afero.Fs, cmd *cli.Command) (*config.Config, error) {
	cfg := config.Default()

	if path := cmd.String(configFlag); path != "" {
		loaded, err := config.Load(fs, path)
		if err != nil {
			return nil, err
		}

		cfg = loaded
	}

	var o config.Overrides

	if cmd.IsSet(workersFlag) {
		n := cmd.Int(workersFlag)
		o.Workers = &n
	}

	if cmd.IsSet(gitFlag) {
		git := cmd.String(gitFlag)
		o.Git = &git
	}

	if cmd.IsSet(summaryFlag) {
		summary := cmd.Bool(summaryFlag)
		o.Summary = &summary
	}

	o.Command = cmd.Args().Slice()

	cfg = cfg.Merge(o)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func resolveRoot(root string) (string, error) {
	if root == "" {
		return os.Getwd()
	}

	return filepath.Abs(root)
}

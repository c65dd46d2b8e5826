// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for the module.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = NewRootCmd(os.Stdout, os.Stderr)

// NewRootCmd builds the grpr command writing to the given streams.
func NewRootCmd(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:    "grpr",
		Version: versionString(),
		Usage:   "run a git command in every repository below a directory",
		UsageText: `grpr [flags] [--] [git-subcommand [args...]]

   grpr                       # git status in every repository below the current directory
   grpr -C ~/src fetch        # git fetch in every repository below ~/src
   grpr -j 4 -- log --oneline -1`,
		Description: `grpr walks a directory tree, finds every Git repository in it and runs the
same git subcommand in each of them concurrently. A failure in one repository
is reported and does not stop the others. Git flags must follow "--".`,
		Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
		Authors: []any{
			"Matt White (matt-FFFFFF)",
		},
		Writer:         stdout,
		ErrWriter:      stderr,
		Flags:          flags(),
		Action:         actionFunc,
		ExitErrHandler: exitErrHandler,

		// positional tokens are git arguments, so "grpr help" must reach git
		HideHelpCommand: true,
	}
}

// exitErrHandler prints the message of exit errors and leaves exiting to main.
func exitErrHandler(_ context.Context, cmd *cli.Command, err error) {
	var exitErr cli.ExitCoder
	if !errors.As(err, &exitErr) {
		return
	}

	if msg := exitErr.Error(); msg != "" {
		fmt.Fprintln(cmd.ErrWriter, msg) //nolint:errcheck
	}
}

// ExitCode returns the process exit code for an error returned by RootCmd.Run.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) && exitErr.ExitCode() != 0 {
		return exitErr.ExitCode()
	}

	return 1
}

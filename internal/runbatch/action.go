// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package runbatch

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// DefaultCommand is used when no subcommand is given anywhere.
var DefaultCommand = CommandSpec{"status"}

// ErrEmptyCommand is returned by NewAction when the command has no tokens.
var ErrEmptyCommand = errors.New("command must contain at least one token")

// CommandSpec is a git subcommand followed by its arguments.
type CommandSpec []string

// ParseCommandSpec splits a command line on whitespace. Quoting is not interpreted.
func ParseCommandSpec(s string) CommandSpec {
	return CommandSpec(strings.Fields(s))
}

// String implements fmt.Stringer.
func (c CommandSpec) String() string {
	return strings.Join(c, " ")
}

// RepositoryError is an error tied to a single repository.
type RepositoryError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// Action runs the same command in any repository it is given.
// It is safe for concurrent use.
type Action struct {
	command  CommandSpec
	executor Executor
}

// NewAction binds command to executor. The command is copied, so later changes to the
// caller's slice have no effect.
func NewAction(command CommandSpec, executor Executor) (*Action, error) {
	if len(command) == 0 {
		return nil, ErrEmptyCommand
	}

	if executor == nil {
		return nil, errors.New("executor must not be nil")
	}

	return &Action{
		command:  slices.Clone(command),
		executor: executor,
	}, nil
}

// Command returns a copy of the bound command.
func (a *Action) Command() CommandSpec {
	return slices.Clone(a.command)
}

// Run executes the command with path as the working directory.
// Any failure is returned as a *RepositoryError.
func (a *Action) Run(ctx context.Context, path string) error {
	if err := a.executor.Execute(ctx, path, slices.Clone(a.command)); err != nil {
		return &RepositoryError{Path: path, Err: err}
	}

	return nil
}

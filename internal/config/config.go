// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// DefaultGit is the git executable used when none is configured.
const DefaultGit = "git"

var (
	// ErrInvalidWorkers is returned when the worker count is negative.
	ErrInvalidWorkers = errors.New("workers must not be negative")
	// ErrEmptyGit is returned when the git executable is set to an empty string.
	ErrEmptyGit = errors.New("git executable must not be empty")
	// ErrBlankCommandToken is returned when a command contains an empty token.
	ErrBlankCommandToken = errors.New("command tokens must not be blank")
)

// Config holds the settings for a run. Zero Workers means one worker per CPU.
// An empty Command means the built-in default.
type Config struct {
	Workers int      `yaml:"workers" toml:"workers"`
	Command []string `yaml:"command" toml:"command"`
	Git     string   `yaml:"git" toml:"git"`
	Summary bool     `yaml:"summary" toml:"summary"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Git: DefaultGit,
	}
}

// Validate checks the configuration for values that cannot be run.
func (c *Config) Validate() error {
	var errs []error

	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers))
	}

	if strings.TrimSpace(c.Git) == "" {
		errs = append(errs, ErrEmptyGit)
	}

	if slices.ContainsFunc(c.Command, func(s string) bool { return strings.TrimSpace(s) == "" }) {
		errs = append(errs, ErrBlankCommandToken)
	}

	return errors.Join(errs...)
}

// Overrides are values given on the command line. Nil fields leave the configuration
// unchanged.
type Overrides struct {
	Workers *int
	Command []string
	Git     *string
	Summary *bool
}

// Merge returns a copy of c with every set override applied.
func (c *Config) Merge(o Overrides) *Config {
	out := *c
	out.Command = slices.Clone(c.Command)

	if o.Workers != nil {
		out.Workers = *o.Workers
	}

	if len(o.Command) > 0 {
		out.Command = slices.Clone(o.Command)
	}

	if o.Git != nil {
		out.Git = *o.Git
	}

	if o.Summary != nil {
		out.Summary = *o.Summary
	}

	return &out
}

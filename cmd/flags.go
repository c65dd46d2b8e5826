// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/matt-FFFFFF/grpr/internal/config"
	"github.com/urfave/cli/v3"
)

const (
	workersFlag = "workers"
	rootFlag    = "root"
	gitFlag     = "git"
	configFlag  = "config"
	summaryFlag = "summary"
	listFlag    = "list"
	verboseFlag = "verbose"
)

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:        workersFlag,
			Aliases:     []string{"j"},
			Usage:       "number of repositories processed at the same time, 0 for one per CPU",
			Sources:     cli.EnvVars("GRPR_WORKERS"),
			DefaultText: "number of CPUs",
			Validator: func(n int) error {
				if n < 0 {
					return fmt.Errorf("%w: %d", config.ErrInvalidWorkers, n)
				}

				return nil
			},
		},
		&cli.StringFlag{
			Name:        rootFlag,
			Aliases:     []string{"C"},
			Usage:       "directory to search for repositories",
			DefaultText: "current directory",
			TakesFile:   true,
		},
		&cli.StringFlag{
			Name:        gitFlag,
			Usage:       "git executable name or path",
			Sources:     cli.EnvVars("GRPR_GIT"),
			DefaultText: config.DefaultGit,
		},
		&cli.StringFlag{
			Name:      configFlag,
			Aliases:   []string{"c"},
			Usage:     "YAML or TOML file with default settings",
			Sources:   cli.EnvVars("GRPR_CONFIG"),
			TakesFile: true,
		},
		&cli.BoolFlag{
			Name:    summaryFlag,
			Aliases: []string{"s"},
			Usage:   "print a summary when all repositories are done",
		},
		&cli.BoolFlag{
			Name:    listFlag,
			Aliases: []string{"l"},
			Usage:   "list repositories without running anything",
		},
		&cli.BoolFlag{
			Name:  verboseFlag,
			Usage: "also report successful repositories",
		},
	}
}

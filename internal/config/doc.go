// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads grpr settings from an optional YAML or TOML file and merges
// them with command line overrides.
//
// Example YAML:
//
//	workers: 8
//	command: ["fetch", "--prune"]
//	git: /usr/bin/git
//	summary: true
//
// The same keys are used in TOML. Unknown keys are rejected.
package config

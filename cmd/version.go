// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package cmd

// Version and Commit are set at build time with -ldflags.
var (
	Version = "dev"
	Commit  = ""
)

func versionString() string {
	if Commit == "" {
		return Version
	}

	return Version + " (" + Commit + ")"
}

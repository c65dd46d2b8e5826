// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package discovery finds git repositories beneath a directory.
//
// Walk lazily enumerates every filesystem object under a root, IsRepository decides
// whether a directory is a repository root, and Repositories combines the two.
// All filesystem access goes through an afero.Fs so trees can be built in memory.
//
// Walking does not stop at a repository root: repositories nested inside the working
// tree of another repository are found and reported independently.
package discovery

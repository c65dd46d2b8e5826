// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package runbatch runs one git command in many repositories.
//
// An Executor starts a single process in a working directory. An Action binds an
// immutable CommandSpec to an Executor so it can be run against any repository path.
// The Dispatcher walks a tree, hands every repository it finds to a bounded pool of
// workers and reports each outcome through a progress.Reporter.
//
// A failing repository never affects the others: its error is reported and the
// dispatcher moves on.
package runbatch

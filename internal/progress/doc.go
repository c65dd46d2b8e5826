// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress carries per-repository events from the dispatcher to whoever is
// listening.
//
// Every repository produces exactly one EventStarted followed by exactly one
// EventCompleted or EventFailed. Printer writes those events to the terminal, Tally
// counts them and keeps the failures, and Multi fans one event stream out to several
// reporters.
package progress

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape sequences for the log handler.
//
// Colour is decided once, at package initialisation, from the NO_COLOR and FORCE_COLOR
// environment variables and whether standard error is a terminal
// (via golang.org/x/term). Log output goes to standard error, so that is the stream
// that is checked.
package color

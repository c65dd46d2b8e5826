// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context.
//
// The default logger writes human-readable lines to standard error using PrettyHandler.
// Its level comes from the GRPR_LOG_LEVEL environment variable and may be changed at
// runtime through LevelVar.
package ctxlog

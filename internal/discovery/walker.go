// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package discovery

import (
	"context"
	"errors"
	"iter"
	"os"

	"github.com/matt-FFFFFF/grpr/internal/ctxlog"
	"github.com/spf13/afero"
)

// Entry is one filesystem object met during a walk.
type Entry struct {
	Path  string
	IsDir bool
}

// errStopWalk unwinds afero.Walk when the consumer stops early.
var errStopWalk = errors.New("walk stopped")

// Walk returns a single-pass sequence of every object under root, root included.
//
// Symbolic links are not followed; a link to a directory is yielded with IsDir false.
// A directory that cannot be read is yielded but its contents are skipped. The sequence
// ends early when ctx is done.
func Walk(ctx context.Context, fs afero.Fs, root string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
			if ctx.Err() != nil {
				return errStopWalk
			}

			if err != nil {
				ctxlog.Debug(ctx, "skipping unreadable path", "path", path, "error", err)
				return nil
			}

			if !yield(Entry{Path: path, IsDir: info.IsDir()}) {
				return errStopWalk
			}

			return nil
		})
		if err != nil && !errors.Is(err, errStopWalk) {
			ctxlog.Debug(ctx, "walk ended with error", "root", root, "error", err)
		}
	}
}

// Repositories yields the directories under root, root included, that are repository roots.
func Repositories(ctx context.Context, fs afero.Fs, root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for e := range Walk(ctx, fs, root) {
			if !e.IsDir || !IsRepository(fs, e.Path) {
				continue
			}

			if !yield(e.Path) {
				return
			}
		}
	}
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package discovery

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// MarkerName is the directory whose presence marks a repository root.
const MarkerName = ".git"

// IsRepository reports whether path contains a MarkerName directory.
//
// It performs a single Stat and never fails: any error, including permission errors,
// means "not a repository". A .git regular file (linked worktree, submodule) does not count.
func IsRepository(fs afero.Fs, path string) bool {
	info, err := fs.Stat(filepath.Join(path, MarkerName))

	return err == nil && info.IsDir()
}

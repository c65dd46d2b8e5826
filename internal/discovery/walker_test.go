// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package discovery

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memTree(t *testing.T, dirs ...string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, d := range dirs {
		require.NoError(t, fs.MkdirAll(d, 0o755))
	}

	return fs
}

func TestWalkYieldsEverything(t *testing.T) {
	fs := memTree(t, "/root/a/.git", "/root/b")
	require.NoError(t, afero.WriteFile(fs, "/root/b/readme", []byte("x"), 0o644))

	var got []Entry
	for e := range Walk(context.Background(), fs, "/root") {
		got = append(got, e)
	}

	assert.ElementsMatch(t, []Entry{
		{Path: "/root", IsDir: true},
		{Path: "/root/a", IsDir: true},
		{Path: "/root/a/.git", IsDir: true},
		{Path: "/root/b", IsDir: true},
		{Path: "/root/b/readme", IsDir: false},
	}, got)
}

func TestWalkMissingRoot(t *testing.T) {
	fs := afero.NewMemMapFs()

	count := 0
	for range Walk(context.Background(), fs, "/nowhere") {
		count++
	}

	assert.Zero(t, count)
}

func TestWalkStopsWhenConsumerStops(t *testing.T) {
	fs := memTree(t, "/r/a", "/r/b", "/r/c", "/r/d")

	var got []string
	for e := range Walk(context.Background(), fs, "/r") {
		got = append(got, e.Path)
		if len(got) == 2 {
			break
		}
	}

	assert.Len(t, got, 2)
}

func TestWalkStopsOnCancelledContext(t *testing.T) {
	fs := memTree(t, "/r/a", "/r/b", "/r/c")
	ctx, cancel := context.WithCancel(context.Background())

	var got []string
	for e := range Walk(ctx, fs, "/r") {
		got = append(got, e.Path)
		cancel()
	}

	assert.Equal(t, []string{"/r"}, got)
}

func TestWalkSkipsUnreadableDirectories(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("needs unix permissions and a non-root user")
	}

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "open", ".git"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "locked", "inner", ".git"), 0o755))
	require.NoError(t, os.Chmod(filepath.Join(root, "locked"), 0o000))
	t.Cleanup(func() { _ = os.Chmod(filepath.Join(root, "locked"), 0o755) })

	var paths []string
	for e := range Walk(context.Background(), afero.NewOsFs(), root) {
		paths = append(paths, e.Path)
	}

	assert.Contains(t, paths, filepath.Join(root, "locked"), "the unreadable directory itself is still yielded")
	assert.NotContains(t, paths, filepath.Join(root, "locked", "inner"))
	assert.Contains(t, paths, filepath.Join(root, "open", ".git"), "the rest of the tree is walked")
}

func TestWalkDoesNotFollowSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "loop"), 0o755))
	require.NoError(t, os.Symlink(root, filepath.Join(root, "loop", "back")))

	var entries []Entry
	for e := range Walk(context.Background(), afero.NewOsFs(), root) {
		entries = append(entries, e)
	}

	assert.Contains(t, entries, Entry{Path: filepath.Join(root, "loop", "back"), IsDir: false})
	assert.Len(t, entries, 3)
}

func TestRepositories(t *testing.T) {
	fs := memTree(t,
		"/ws/a/.git",
		"/ws/b",
		"/ws/c/.git",
		"/ws/c/vendor/nested/.git",
		"/ws/d/e/f/.git",
	)
	require.NoError(t, afero.WriteFile(fs, "/ws/b/.git", []byte("gitdir: x"), 0o644))

	got := slices.Collect(Repositories(context.Background(), fs, "/ws"))

	assert.ElementsMatch(t, []string{
		"/ws/a",
		"/ws/c",
		"/ws/c/vendor/nested",
		"/ws/d/e/f",
	}, got)
}

func TestRepositoriesRootIsRepository(t *testing.T) {
	fs := memTree(t, "/only/.git")

	got := slices.Collect(Repositories(context.Background(), fs, "/only"))

	assert.Equal(t, []string{"/only"}, got)
}

func TestRepositoriesEachPathOnce(t *testing.T) {
	fs := memTree(t, "/ws/x/.git", "/ws/x/y/.git")

	got := slices.Collect(Repositories(context.Background(), fs, "/ws"))
	slices.Sort(got)

	assert.Equal(t, []string{"/ws/x", "/ws/x/y"}, slices.Compact(slices.Clone(got)))
	assert.Len(t, got, 2)
}

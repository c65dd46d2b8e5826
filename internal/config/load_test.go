// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))

	return fs
}

func TestLoadYAML(t *testing.T) {
	fs := writeFile(t, "/cfg/grpr.yaml", `
workers: 8
command: ["fetch", "--prune"]
git: /usr/bin/git
summary: true
`)

	cfg, err := Load(fs, "/cfg/grpr.yaml")
	require.NoError(t, err)
	assert.Equal(t, &Config{Workers: 8, Command: []string{"fetch", "--prune"}, Git: "/usr/bin/git", Summary: true}, cfg)
}

func TestLoadYAMLPartialKeepsDefaults(t *testing.T) {
	fs := writeFile(t, "/grpr.yml", "summary: true\n")

	cfg, err := Load(fs, "/grpr.yml")
	require.NoError(t, err)
	assert.Equal(t, DefaultGit, cfg.Git)
	assert.True(t, cfg.Summary)
}

func TestLoadEmptyYAML(t *testing.T) {
	fs := writeFile(t, "/grpr.yaml", "\n")

	cfg, err := Load(fs, "/grpr.yaml")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadTOML(t *testing.T) {
	fs := writeFile(t, "/grpr.toml", `
workers = 3
command = ["pull", "--ff-only"]
summary = true
`)

	cfg, err := Load(fs, "/grpr.toml")
	require.NoError(t, err)
	assert.Equal(t, &Config{Workers: 3, Command: []string{"pull", "--ff-only"}, Git: DefaultGit, Summary: true}, cfg)
}

func TestLoadErrors(t *testing.T) {
	tcs := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{name: "unknown yaml key", file: "/c.yaml", content: "wrokers: 2\n", wantErr: ErrInvalidYaml},
		{name: "bad yaml", file: "/c.yaml", content: "workers: [\n", wantErr: ErrInvalidYaml},
		{name: "wrong yaml type", file: "/c.yaml", content: "workers: many\n", wantErr: ErrInvalidYaml},
		{name: "unknown toml key", file: "/c.toml", content: "wrokers = 2\n", wantErr: ErrInvalidToml},
		{name: "bad toml", file: "/c.toml", content: "workers = \n", wantErr: ErrInvalidToml},
		{name: "unsupported extension", file: "/c.json", content: "{}", wantErr: ErrUnsupportedFormat},
		{name: "negative workers", file: "/c.yaml", content: "workers: -1\n", wantErr: ErrInvalidWorkers},
		{name: "empty git", file: "/c.toml", content: "git = \"\"\n", wantErr: ErrEmptyGit},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			fs := writeFile(t, tc.file, tc.content)

			_, err := Load(fs, tc.file)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Contains(t, err.Error(), tc.file)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nope.yaml")
	require.ErrorIs(t, err, ErrReadFile)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

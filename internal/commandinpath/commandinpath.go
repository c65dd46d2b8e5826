// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package commandinpath locates executables by searching the PATH environment variable.
package commandinpath

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNotFound is returned when no executable matches the command.
var ErrNotFound = errors.New("executable not found in PATH")

// Find returns the full path of command.
//
// A command containing a path separator is not searched for; it is made absolute so it
// does not depend on the working directory of the process that later runs it.
// On Windows each PATHEXT extension is tried when command has no extension.
func Find(command string) (string, error) {
	if command == "" {
		return "", fmt.Errorf("%w: empty command", ErrNotFound)
	}

	if strings.ContainsRune(command, os.PathSeparator) || strings.ContainsRune(command, '/') {
		p, ok := executable(command)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrNotFound, command)
		}

		abs, err := filepath.Abs(p)
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrNotFound, command, err)
		}

		return abs, nil
	}

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			// An empty PATH element means the current directory; exec refuses those too.
			continue
		}

		if p, ok := executable(filepath.Join(dir, command)); ok {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, command)
}

func executable(path string) (string, bool) {
	for _, candidate := range candidates(path) {
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}

		if runtime.GOOS != "windows" && info.Mode()&0o111 == 0 {
			continue
		}

		return candidate, true
	}

	return "", false
}

func candidates(path string) []string {
	if runtime.GOOS != "windows" || filepath.Ext(path) != "" {
		return []string{path}
	}

	exts := os.Getenv("PATHEXT")
	if exts == "" {
		exts = ".com;.exe;.bat;.cmd"
	}

	out := []string{path}
	for _, ext := range strings.Split(strings.ToLower(exts), ";") {
		if ext != "" {
			out = append(out, path+ext)
		}
	}

	return out
}

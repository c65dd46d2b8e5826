// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Code is an ANSI SGR parameter.
type Code int

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"

	prefix = "\033["
	suffix = "m"
	reset  = "\033[0m"
)

// Foreground colors used by the log handler.
const (
	FgRed     Code = 31
	FgYellow  Code = 33
	FgCyan    Code = 36
	FgWhite   Code = 37
	FgHiWhite Code = 97
)

var enabled = detect(os.Getenv, os.Stderr)

// Enabled reports whether stderr should receive escape sequences.
func Enabled() bool {
	return enabled
}

// Wrap wraps str in the given codes followed by a reset. Callers decide whether color
// is wanted, see Enabled.
func Wrap(str string, codes ...Code) string {
	if len(codes) == 0 {
		return str
	}

	params := make([]string, len(codes))
	for i, c := range codes {
		params[i] = strconv.Itoa(int(c))
	}

	var sb strings.Builder

	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + 4*len(codes))
	sb.WriteString(prefix)
	sb.WriteString(strings.Join(params, ";"))
	sb.WriteString(suffix)
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

func detect(getenv func(string) string, f *os.File) bool {
	if getenv(NoColor) != "" {
		return false
	}

	if getenv(ForceColor) != "" {
		return true
	}

	return f != nil && term.IsTerminal(int(f.Fd()))
}

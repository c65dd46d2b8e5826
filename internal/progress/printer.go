// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes events as single lines: announcements to out, failures to errOut.
// Each line is written with one Write call under a mutex, so lines from different
// repositories never tear, though output of the commands themselves may interleave.
type Printer struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	verbose bool

	pathStyle lipgloss.Style
	errStyle  lipgloss.Style
	okStyle   lipgloss.Style
}

// NewPrinter returns a Printer. Colour is decided per writer by lipgloss, so plain
// buffers and pipes get no escape sequences.
func NewPrinter(out, errOut io.Writer) *Printer {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)

	return &Printer{
		out:       out,
		errOut:    errOut,
		pathStyle: outR.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		okStyle:   outR.NewStyle().Foreground(lipgloss.Color("10")),
		errStyle:  errR.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// SetVerbose makes the printer also announce successful completions.
func (p *Printer) SetVerbose(v bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.verbose = v
}

// Report implements Reporter.
func (p *Printer) Report(e Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch e.Type {
	case EventStarted:
		fmt.Fprintf(p.out, "Processing Git repository: %s\n", p.pathStyle.Render(e.Path)) //nolint:errcheck
	case EventCompleted:
		if p.verbose {
			fmt.Fprintf(p.out, "%s %s (%s)\n", p.okStyle.Render("Done"), e.Path, e.Elapsed.Round(1e6)) //nolint:errcheck
		}
	case EventFailed:
		fmt.Fprintf(p.errOut, "%s %v\n", p.errStyle.Render("Error processing"), e.Err) //nolint:errcheck
	}
}

// PrintRepository writes a bare repository path, used when listing without running.
func (p *Printer) PrintRepository(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintln(p.out, path) //nolint:errcheck
}

// PrintSummary writes the totals from t followed by one line per failure.
func (p *Printer) PrintSummary(t *Tally) {
	p.mu.Lock()
	defer p.mu.Unlock()

	failed := fmt.Sprintf("%d failed", t.Failed())
	if t.Failed() > 0 {
		failed = p.errStyle.Render(failed)
	}

	fmt.Fprintf(p.out, "%d repositories, %s, %s\n", //nolint:errcheck
		t.Total(), p.okStyle.Render(fmt.Sprintf("%d succeeded", t.Succeeded())), failed)

	if err := t.Err(); err != nil {
		fmt.Fprint(p.out, err.Error()) //nolint:errcheck
	}
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPrinterReport(t *testing.T) {
	var out, errOut bytes.Buffer

	p := NewPrinter(&out, &errOut)

	p.Report(Event{Type: EventStarted, Path: "/ws/a"})
	p.Report(Event{Type: EventCompleted, Path: "/ws/a", Elapsed: time.Second})
	p.Report(Event{Type: EventStarted, Path: "/ws/c"})
	p.Report(Event{Type: EventFailed, Path: "/ws/c", Err: errors.New("/ws/c: git status: exit status 1")})

	assert.Equal(t, "Processing Git repository: /ws/a\nProcessing Git repository: /ws/c\n", out.String())
	assert.Equal(t, "Error processing /ws/c: git status: exit status 1\n", errOut.String())
}

func TestPrinterVerbose(t *testing.T) {
	var out, errOut bytes.Buffer

	p := NewPrinter(&out, &errOut)
	p.SetVerbose(true)

	p.Report(Event{Type: EventCompleted, Path: "/ws/a", Elapsed: 1500 * time.Millisecond})

	assert.Equal(t, "Done /ws/a (1.5s)\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestPrinterSummary(t *testing.T) {
	var out, errOut bytes.Buffer

	p := NewPrinter(&out, &errOut)

	var tally Tally
	tally.Report(Event{Type: EventCompleted, Path: "/ws/a"})
	tally.Report(Event{Type: EventFailed, Path: "/ws/c", Err: errors.New("/ws/c: boom")})

	p.PrintSummary(&tally)

	assert.Equal(t, "2 repositories, 1 succeeded, 1 failed\n  - /ws/c: boom\n", out.String())
}

func TestPrinterSummaryAllGood(t *testing.T) {
	var out bytes.Buffer

	p := NewPrinter(&out, &out)

	var tally Tally
	tally.Report(Event{Type: EventCompleted, Path: "/ws/a"})

	p.PrintSummary(&tally)

	assert.Equal(t, "1 repositories, 1 succeeded, 0 failed\n", out.String())
}

func TestPrinterPrintRepository(t *testing.T) {
	var out bytes.Buffer

	NewPrinter(&out, &out).PrintRepository("/ws/b")

	assert.Equal(t, "/ws/b\n", out.String())
}

func TestPrinterConcurrentLinesDoNotTear(t *testing.T) {
	var (
		out bytes.Buffer
		wg  sync.WaitGroup
	)

	p := NewPrinter(&out, &out)

	for range 100 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			p.Report(Event{Type: EventStarted, Path: "/ws/repo"})
		}()
	}

	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(t, lines, 100)

	for _, l := range lines {
		assert.Equal(t, "Processing Git repository: /ws/repo", l)
	}
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Tally counts outcomes and collects failure errors. The zero value is ready to use.
type Tally struct {
	mu        sync.Mutex
	started   int
	succeeded int
	errs      *multierror.Error
}

// Report implements Reporter.
func (t *Tally) Report(e Event) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch e.Type {
	case EventStarted:
		t.started++
	case EventCompleted:
		t.succeeded++
	case EventFailed:
		err := e.Err
		if err == nil {
			err = fmt.Errorf("%s: failed", e.Path)
		}

		t.errs = multierror.Append(t.errs, err)
		t.errs.ErrorFormat = listFormat
	}
}

// Total is the number of repositories that finished.
func (t *Tally) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.succeeded + len(t.errs.WrappedErrors())
}

// Started is the number of repositories announced.
func (t *Tally) Started() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.started
}

// Succeeded is the number of successful repositories.
func (t *Tally) Succeeded() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.succeeded
}

// Failed is the number of failed repositories.
func (t *Tally) Failed() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.errs.WrappedErrors())
}

// Err returns every failure as a *multierror.Error, or nil when nothing failed.
func (t *Tally) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.errs.ErrorOrNil()
}

func listFormat(errs []error) string {
	var sb strings.Builder
	for _, err := range errs {
		sb.WriteString("  - ")
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}

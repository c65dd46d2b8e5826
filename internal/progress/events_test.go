// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "started", EventStarted.String())
	assert.Equal(t, "completed", EventCompleted.String())
	assert.Equal(t, "failed", EventFailed.String())
	assert.Equal(t, "unknown", EventType(42).String())
}

func TestMulti(t *testing.T) {
	var got []string

	a := ReporterFunc(func(e Event) { got = append(got, "a:"+e.Path) })
	b := ReporterFunc(func(e Event) { got = append(got, "b:"+e.Path) })

	r := Multi(a, nil, b)
	r.Report(Event{Type: EventStarted, Path: "/x"})
	r.Report(Event{Type: EventCompleted, Path: "/y"})

	assert.Equal(t, []string{"a:/x", "b:/x", "a:/y", "b:/y"}, got)
}

func TestNullReporter(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNullReporter().Report(Event{Type: EventFailed})
	})
}

// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import "time"

// EventType says what happened to a repository.
type EventType int

const (
	// EventStarted is sent before the command runs in a repository.
	EventStarted EventType = iota
	// EventCompleted is sent when the command succeeded.
	EventCompleted
	// EventFailed is sent when the command failed; Event.Err holds the reason.
	EventFailed
)

// String implements fmt.Stringer.
func (et EventType) String() string {
	switch et {
	case EventStarted:
		return "started"
	case EventCompleted:
		return "completed"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is a single progress update for one repository.
type Event struct {
	Type    EventType
	Path    string        // repository path the event belongs to
	Err     error         // set for EventFailed
	Elapsed time.Duration // command duration, set for EventCompleted and EventFailed
}

// Reporter receives events. Implementations must be safe for concurrent use and must
// not drop events.
type Reporter interface {
	Report(Event)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(Event)

// Report calls f(e).
func (f ReporterFunc) Report(e Event) {
	f(e)
}

// NullReporter discards every event.
type NullReporter struct{}

// Report implements Reporter.
func (NullReporter) Report(Event) {}

// NewNullReporter returns a Reporter that does nothing.
func NewNullReporter() Reporter {
	return NullReporter{}
}

type multi []Reporter

func (m multi) Report(e Event) {
	for _, r := range m {
		r.Report(e)
	}
}

// Multi returns a Reporter that forwards each event to every non-nil reporter, in order.
func Multi(reporters ...Reporter) Reporter {
	out := make(multi, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			out = append(out, r)
		}
	}

	return out
}

// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package stream

// Status is the connection lifecycle state of an Aggregator.
type Status int

const (
	// Idle means no session identifier is set.
	Idle Status = iota
	// Connecting means the stream request has been issued.
	Connecting
	// Open means the stream is established and deltas may arrive.
	Open
	// ClosedDone means the backend sent the terminal "done" event.
	ClosedDone
	// ClosedError means the stream failed; no further events are applied.
	ClosedError
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Connecting:
		return "connecting"
	case Open:
		return "open"
	case ClosedDone:
		return "closed-done"
	case ClosedError:
		return "closed-error"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further events will be applied.
func (s Status) Terminal() bool { return s == ClosedDone || s == ClosedError }

// Snapshot is an immutable copy of a streaming session's state.
type Snapshot struct {
	// SessionID is the session being streamed, 0 when Idle.
	SessionID int64
	Status    Status
	// Active is the field that received the most recent delta.
	Active Field
	// Err is the user-facing error message once Status is ClosedError.
	Err string
	// Cause is the technical reason behind Err.
	Cause string

	text    [numFields]string
	loading [numFields]bool
}

func initialSnapshot() Snapshot {
	s := Snapshot{Status: Idle, Active: None}
	for i := range s.loading {
		s.loading[i] = true
	}
	return s
}

// Text returns the accumulated text of f.
func (s Snapshot) Text(f Field) string {
	if f < 0 || f >= numFields {
		return ""
	}
	return s.text[f]
}

// Loading reports whether f is still waiting for its first delta.
func (s Snapshot) Loading(f Field) bool {
	if f < 0 || f >= numFields {
		return false
	}
	return s.loading[f]
}

// AnyLoading reports whether at least one field is still waiting.
func (s Snapshot) AnyLoading() bool {
	for _, l := range s.loading {
		if l {
			return true
		}
	}
	return false
}

// Streaming reports whether the session is connecting or open.
func (s Snapshot) Streaming() bool { return s.Status == Connecting || s.Status == Open }

func (s *Snapshot) appendDelta(f Field, delta string) {
	s.text[f] += delta
	s.loading[f] = false
	s.Active = f
	if s.Status == Connecting {
		s.Status = Open
	}
}

func (s *Snapshot) finish(status Status) {
	s.Status = status
	s.Active = None
	for i := range s.loading {
		s.loading[i] = false
	}
}

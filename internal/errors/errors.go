// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errors defines typed errors with categories for user-friendly reporting.
// Callers branch on Kind (and Status for HTTP failures) rather than on message text,
// so a connectivity problem is never confused with a backend error response.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// Validation indicates a request rejected locally before anything was sent.
	Validation Kind = "validation"
	// HTTP indicates the backend answered with a non-2xx status.
	HTTP Kind = "http"
	// Decode indicates a 2xx response whose body could not be decoded.
	Decode Kind = "decode"
	// Transport indicates the request never produced a response (DNS, refused, reset).
	Transport Kind = "transport"
	// Stream indicates a terminal failure of a result stream.
	Stream Kind = "stream"
)

// E wraps an error with kind and human-friendly message.
// Status is set for HTTP and Decode kinds.
type E struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *E) Error() string {
	msg := e.Message
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, msg)
}

func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// WithStatus builds an error carrying an HTTP status code.
func WithStatus(kind Kind, status int, msg string) *E {
	return &E{Kind: kind, Status: status, Message: msg}
}

// KindOf returns the Kind of the first *E in err's chain, or "" when there is none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var e *E
	if stderrors.As(err, &e) {
		return e.Status
	}
	return 0
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

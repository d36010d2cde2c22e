// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package httperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"

	apperrors "restaurantai/cli/internal/errors"

	"github.com/stretchr/testify/assert"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	refused := &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"nil", nil, Generic},
		{"dns", &net.DNSError{Err: "no such host", Name: "api.example"}, DNS},
		{"refused", refused, Refused},
		{"refused wrapped", apperrors.Wrap(apperrors.Transport, "GET /dashboard", fmt.Errorf("do: %w", refused)), Refused},
		{"deadline", context.DeadlineExceeded, Timeout},
		{"net timeout", &net.OpError{Op: "read", Err: timeoutErr{}}, Timeout},
		{"other", errors.New("connection reset by peer"), Generic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestStatusMessage(t *testing.T) {
	tests := []struct {
		status   int
		detail   string
		notFound string
		contains string
	}{
		{http.StatusUnauthorized, "Not authenticated", "", "restaurantai login"},
		{http.StatusForbidden, "", "", "access"},
		{http.StatusNotFound, "", "Axis not found.", "Axis not found."},
		{http.StatusNotFound, "", "", "Not found."},
		{http.StatusBadGateway, "upstream", "", "backend ran into an error"},
		{http.StatusUnprocessableEntity, "answers: field required", "", "answers: field required"},
		{http.StatusBadRequest, "", "", "rejected"},
		{http.StatusConflict, "", "", "409 Conflict"},
	}
	for _, tt := range tests {
		assert.Contains(t, StatusMessage(tt.status, tt.detail, tt.notFound), tt.contains, "status %d", tt.status)
	}
}

func TestNetworkHintsNameTheHost(t *testing.T) {
	for _, c := range []Category{Generic, Timeout, DNS, Refused, TLS} {
		headline, hints := NetworkHints(c, "loading the dashboard", "api.example:8000")
		assert.Contains(t, headline, "loading the dashboard", c.String())
		assert.NotEmpty(t, hints)
	}
	headline, _ := NetworkHints(Refused, "x", "api.example:8000")
	assert.Contains(t, headline, "api.example:8000")
}

func TestExtractHostFromURL(t *testing.T) {
	assert.Equal(t, "localhost:8000", ExtractHostFromURL("http://localhost:8000"))
	assert.Equal(t, "the backend", ExtractHostFromURL("::"))
}

// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package api is the single choke point for outbound REST calls to the planning backend.
// It resolves URLs against the configured endpoint, injects default headers and the bearer
// token, and interprets responses into a Result without ever failing on an HTTP status.
// Only transport failures are returned as errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"

	apperrors "restaurantai/cli/internal/errors"
	"restaurantai/cli/internal/logging"

	"github.com/pterm/pterm"
)

// Method is one of the HTTP verbs the backend contract uses.
type Method string

const (
	MethodGet  Method = http.MethodGet
	MethodPost Method = http.MethodPost
	MethodPut  Method = http.MethodPut
)

// Client issues requests against a single backend endpoint.
type Client struct {
	// baseURL is the endpoint every path is appended to (e.g., "http://localhost:8000")
	baseURL string
	// tokens supplies the ambient bearer token; may be nil
	tokens TokenProvider
	// http is the underlying client; it carries a cookie jar so cookies round-trip
	http   *http.Client
	logger *pterm.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *pterm.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client for baseURL. No timeout is configured; callers bound
// requests through their context.
func New(baseURL string, tokens TokenProvider, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{Jar: jar},
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the endpoint the client resolves paths against.
func (c *Client) BaseURL() string { return c.baseURL }

// Tokens returns the token provider the client reads from.
func (c *Client) Tokens() TokenProvider { return c.tokens }

// request is the per-call descriptor; it lives only for the duration of one call.
type request struct {
	method  Method
	body    any
	hasBody bool
	token   string
}

// RequestOption customizes a single call.
type RequestOption func(*request)

// WithMethod sets the HTTP method (default GET).
func WithMethod(m Method) RequestOption {
	return func(r *request) { r.method = m }
}

// WithBody JSON-encodes v as the request body. A nil v sends no body.
func WithBody(v any) RequestOption {
	return func(r *request) {
		r.body = v
		r.hasBody = v != nil
	}
}

// WithToken overrides the ambient token for this call.
func WithToken(token string) RequestOption {
	return func(r *request) { r.token = token }
}

// Result is the outcome of a call that reached the backend.
// Data is nil when the status is not 2xx or when a 2xx body could not be decoded.
type Result[T any] struct {
	Data   *T
	Status int
	// Detail is the best-effort "detail" or "message" of a non-2xx JSON body.
	Detail string
}

// OK reports whether the response was 2xx and decoded into Data.
func (r Result[T]) OK() bool { return r.Data != nil }

// Err classifies an unsuccessful Result. It returns nil when Data is present.
func (r Result[T]) Err() error {
	switch {
	case r.Data != nil:
		return nil
	case r.Status >= 200 && r.Status < 300:
		return apperrors.WithStatus(apperrors.Decode, r.Status, "response body could not be decoded")
	default:
		msg := r.Detail
		if msg == "" {
			msg = http.StatusText(r.Status)
		}
		return apperrors.WithStatus(apperrors.HTTP, r.Status, msg)
	}
}

// Fetch performs one request and decodes a 2xx JSON body into T.
// A non-nil error is returned only when the request could not be issued (validation)
// or no response was received (transport).
func Fetch[T any](ctx context.Context, c *Client, path string, opts ...RequestOption) (Result[T], error) {
	var zero Result[T]
	req := request{method: MethodGet}
	for _, opt := range opts {
		opt(&req)
	}

	if !strings.HasPrefix(path, "/") {
		return zero, apperrors.New(apperrors.Validation, "path must begin with '/': "+path)
	}
	switch req.method {
	case MethodGet, MethodPost, MethodPut:
	default:
		return zero, apperrors.New(apperrors.Validation, "unsupported method "+string(req.method))
	}

	var body io.Reader
	if req.hasBody {
		b, err := json.Marshal(req.body)
		if err != nil {
			return zero, apperrors.Wrap(apperrors.Validation, "encode request body", err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.method), c.baseURL+path, body)
	if err != nil {
		return zero, apperrors.Wrap(apperrors.Validation, "build request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if bearer := c.bearer(req.token); bearer != "" {
		httpReq.Header.Set("Authorization", "Bearer "+bearer)
	}

	c.logger.Debug("api request", c.logger.Args("method", req.method, "path", path))
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Debug("api transport failure", c.logger.Args("path", path, "error", err.Error()))
		return zero, apperrors.Wrap(apperrors.Transport, "cannot reach backend at "+c.baseURL, err)
	}
	defer resp.Body.Close()

	res := Result[T]{Status: resp.StatusCode}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		res.Detail = extractDetail(resp.Body)
		c.logger.Debug("api non-2xx", c.logger.Args("path", path, "status", resp.StatusCode))
		return res, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Debug("api read failure", c.logger.Args("path", path, "status", resp.StatusCode, "error", err.Error()))
		return res, nil
	}
	// A JSON null body carries no data.
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		c.logger.Debug("api null body", c.logger.Args("path", path, "status", resp.StatusCode))
		return res, nil
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		c.logger.Debug("api decode failure", c.logger.Args("path", path, "status", resp.StatusCode, "error", err.Error()))
		return res, nil
	}
	res.Data = &out
	return res, nil
}

// bearer picks the explicit token when present, else the ambient one.
func (c *Client) bearer(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if c.tokens == nil {
		return ""
	}
	t, err := c.tokens.AccessToken()
	if err != nil {
		return ""
	}
	return t
}

// extractDetail reads a FastAPI-style {"detail": ...} or {"message": ...} body.
// Absent or malformed bodies yield "".
func extractDetail(r io.Reader) string {
	var raw map[string]any
	if err := json.NewDecoder(io.LimitReader(r, 64<<10)).Decode(&raw); err != nil {
		return ""
	}
	for _, key := range []string{"detail", "message"} {
		switch v := raw[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case []any:
			// FastAPI validation errors: [{"msg": "..."}]
			for _, item := range v {
				if m, ok := item.(map[string]any); ok {
					if s, ok := m["msg"].(string); ok && s != "" {
						return s
					}
				}
			}
		}
	}
	return ""
}

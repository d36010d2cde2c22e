// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "restaurantai/cli/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type message struct {
	Message string `json:"message"`
}

func TestFetchReturnsDataWhenResponseIsOK(t *testing.T) {
	var gotMethod, gotPath, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotContentType = r.Method, r.URL.Path, r.Header.Get("Content-Type")
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"message":"ok"}`)
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	res, err := Fetch[message](context.Background(), c, "/test")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.Status)
	require.NotNil(t, res.Data)
	assert.Equal(t, message{Message: "ok"}, *res.Data)
	assert.NoError(t, res.Err())
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/test", gotPath)
	assert.Equal(t, "application/json", gotContentType)
}

func TestFetchReturnsNullDataWhenResponseIsNotOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"message":"ok"}`)
	}))
	defer srv.Close()

	res, err := Fetch[message](context.Background(), New(srv.URL, nil), "/unauthorized")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, res.Status)
	assert.Nil(t, res.Data)
	assert.Equal(t, "ok", res.Detail)
	assert.Equal(t, apperrors.HTTP, apperrors.KindOf(res.Err()))
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(res.Err()))
}

func TestFetchHandlesJSONParseErrorsGracefully(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{bad json`)
	}))
	defer srv.Close()

	res, err := Fetch[message](context.Background(), New(srv.URL, nil), "/bad-json")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.Status)
	assert.Nil(t, res.Data)
	assert.Equal(t, apperrors.Decode, apperrors.KindOf(res.Err()))
	assert.Equal(t, http.StatusOK, apperrors.StatusOf(res.Err()))
}

func TestFetchEmptySuccessBodyIsDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	res, err := Fetch[message](context.Background(), New(srv.URL, nil), "/empty")
	require.NoError(t, err)
	assert.Nil(t, res.Data)
	assert.Equal(t, http.StatusOK, res.Status)
}

func TestFetchSuccessBodyWithoutData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "trailing bytes", body: `{"message":"ok"} trailing`},
		{name: "second value", body: `{"message":"ok"}{"message":"again"}`},
		{name: "null", body: `null`},
		{name: "null with whitespace", body: " null\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			res, err := Fetch[map[string]any](context.Background(), New(srv.URL, nil), "/soft")
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, res.Status)
			assert.Nil(t, res.Data)
			assert.False(t, res.OK())
		})
	}
}

func TestFetchTransportFailure(t *testing.T) {
	// Reserve a port, then close the listener so the dial is refused.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	res, err := Fetch[message](context.Background(), New("http://"+addr, nil), "/test")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.Transport))
	assert.Zero(t, res.Status)
	assert.Nil(t, res.Data)
}

func TestFetchRejectsInvalidDescriptors(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()
	c := New(srv.URL, nil)

	_, err := Fetch[message](context.Background(), c, "no-slash")
	assert.True(t, apperrors.Is(err, apperrors.Validation))

	_, err = Fetch[message](context.Background(), c, "/x", WithMethod("DELETE"))
	assert.True(t, apperrors.Is(err, apperrors.Validation))

	assert.False(t, called, "invalid requests must not be issued")
}

func TestFetchAuthorizationHeader(t *testing.T) {
	var gotAuth []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()
	ctx := context.Background()

	_, err := Fetch[message](ctx, New(srv.URL, nil), "/none")
	require.NoError(t, err)

	tokens := NewMemoryTokens("stored")
	c := New(srv.URL, tokens)
	_, err = Fetch[message](ctx, c, "/ambient")
	require.NoError(t, err)
	_, err = Fetch[message](ctx, c, "/explicit", WithToken("explicit"))
	require.NoError(t, err)

	require.NoError(t, tokens.ClearAccessToken())
	_, err = Fetch[message](ctx, c, "/cleared")
	require.NoError(t, err)

	assert.Equal(t, []string{"", "Bearer stored", "Bearer explicit", ""}, gotAuth)
}

func TestFetchBodyEncoding(t *testing.T) {
	type seen struct {
		method string
		body   string
		length int64
	}
	var got []seen
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got = append(got, seen{method: r.Method, body: string(b), length: r.ContentLength})
		_, _ = io.WriteString(w, `{"message":"saved"}`)
	}))
	defer srv.Close()
	c := New(srv.URL, nil)
	ctx := context.Background()

	_, err := Fetch[message](ctx, c, "/axes/funds/answers",
		WithMethod(MethodPut), WithBody(map[string]any{"level": 2, "answers": map[string]any{}}))
	require.NoError(t, err)
	_, err = Fetch[message](ctx, c, "/deep-dive/card/3/complete", WithMethod(MethodPost))
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, http.MethodPut, got[0].method)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(got[0].body), &decoded))
	assert.EqualValues(t, 2, decoded["level"])

	assert.Equal(t, http.MethodPost, got[1].method)
	assert.Empty(t, got[1].body)
	assert.Zero(t, got[1].length)
}

func TestFetchSendsCookiesBack(t *testing.T) {
	var cookies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err == nil {
			cookies = append(cookies, c.Value)
		}
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "s1", Path: "/"})
		_, _ = io.WriteString(w, `{}`)
	}))
	defer srv.Close()
	c := New(srv.URL, nil)

	for i := 0; i < 2; i++ {
		_, err := Fetch[message](context.Background(), c, "/dashboard")
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"s1"}, cookies)
}

func TestExtractDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "detail string", body: `{"detail":"Card not found"}`, want: "Card not found"},
		{name: "message string", body: `{"message":"bad input"}`, want: "bad input"},
		{name: "validation list", body: `{"detail":[{"loc":["body"],"msg":"field required"}]}`, want: "field required"},
		{name: "not json", body: `<html>502</html>`, want: ""},
		{name: "empty", body: ``, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDetail(strings.NewReader(tt.body)))
		})
	}
}

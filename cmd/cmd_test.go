// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"restaurantai/cli/internal/api"
	"restaurantai/cli/internal/backend"
	apperrors "restaurantai/cli/internal/errors"
	"restaurantai/cli/internal/logging"
	"restaurantai/cli/internal/stream"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useApp points the package-level runtime at endpoint for one test.
func useApp(t *testing.T, endpoint string, tokens api.TokenProvider) {
	t.Helper()
	pterm.DisableOutput()
	prev := rt
	client := api.New(endpoint, tokens)
	rt = &app{endpoint: endpoint, log: logging.Nop(), client: client, be: backend.New(client)}
	t.Cleanup(func() {
		rt = prev
		pterm.EnableOutput()
	})
}

func sseFrames(t *testing.T, frames ...string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != stream.ResultStreamPath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/event-stream")
		flusher, _ := w.(http.Flusher)
		for _, f := range frames {
			_, _ = fmt.Fprint(w, f)
			if flusher != nil {
				flusher.Flush()
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRenderStreamShowsProgressPerField(t *testing.T) {
	srv := sseFrames(t,
		"event: concept_title_delta\ndata: {\"delta\":\"駅前の\"}\n\n",
		"event: advice_location_delta\ndata: {\"delta\":\"人通りの多い\\n駅前\"}\n\n",
		"event: done\ndata: {}\n\n",
	)
	agg := stream.New(srv.URL)
	defer agg.Close()

	var mu sync.Mutex
	var midway stream.Snapshot
	cancel := agg.Subscribe(func(s stream.Snapshot) {
		if s.Active == stream.AdviceLocation && s.Streaming() {
			mu.Lock()
			midway = s
			mu.Unlock()
		}
	})
	defer cancel()

	id := int64(7)
	agg.SetSession(context.Background(), &id)
	final, err := agg.Wait(context.Background())
	require.NoError(t, err)
	require.Equal(t, stream.ClosedDone, final.Status)

	mu.Lock()
	snap := midway
	mu.Unlock()
	lines := strings.Split(renderStream(snap, "*", 80), "\n")
	require.Len(t, lines, len(stream.Fields)+1)
	assert.Equal(t, "* Generating advice", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "✓ Concept"), lines[1])
	assert.Contains(t, lines[1], "3 chars")
	assert.True(t, strings.HasPrefix(lines[4], "✎ Location advice"), lines[4])
	assert.Contains(t, lines[4], "人通りの多い 駅前")
	assert.True(t, strings.HasPrefix(lines[5], "* Staffing advice"), lines[5])

	done := strings.Split(renderStream(final, "*", 80), "\n")
	require.Len(t, done, len(stream.Fields))
	for _, l := range done {
		assert.True(t, strings.HasPrefix(l, "✓ "), l)
	}
}

func TestRenderStreamTruncatesLongText(t *testing.T) {
	srv := sseFrames(t,
		"event: store_story_delta\ndata: {\"delta\":\""+strings.Repeat("あ", 200)+"終\"}\n\n",
	)
	agg := stream.New(srv.URL)
	defer agg.Close()

	var mu sync.Mutex
	var snap stream.Snapshot
	cancel := agg.Subscribe(func(s stream.Snapshot) {
		if s.Active == stream.StoreStory {
			mu.Lock()
			snap = s
			mu.Unlock()
		}
	})
	defer cancel()
	id := int64(1)
	agg.SetSession(context.Background(), &id)
	_, _ = agg.Wait(context.Background())

	mu.Lock()
	defer mu.Unlock()
	line := strings.Split(renderStream(snap, "*", 60), "\n")[3]
	assert.True(t, strings.HasPrefix(line, "✎ Store story"), line)
	assert.True(t, strings.HasSuffix(line, "終"), "the newest text stays visible")
	assert.Contains(t, line, "…")
}

func TestStreamAdviceReportsFailure(t *testing.T) {
	srv := sseFrames(t,
		"event: advice_funds_delta\ndata: {\"delta\":\"融資\"}\n\n",
	)
	useApp(t, srv.URL, api.NewMemoryTokens(""))

	c := &cobra.Command{}
	c.SetContext(context.Background())
	err := streamAdvice(c, 3)
	require.Error(t, err)
	var shown shownError
	assert.True(t, errors.As(err, &shown))
	assert.True(t, apperrors.Is(err, apperrors.Stream))
	assert.Contains(t, err.Error(), stream.DefaultErrorMessage)
}

func TestStreamAdviceCompletes(t *testing.T) {
	srv := sseFrames(t,
		"event: concept_title_delta\ndata: {\"delta\":\"T\"}\n\n",
		"event: done\ndata: {}\n\n",
	)
	useApp(t, srv.URL, api.NewMemoryTokens(""))

	c := &cobra.Command{}
	c.SetContext(context.Background())
	assert.NoError(t, streamAdvice(c, 3))
}

func TestCheckClearsTokenOnUnauthorized(t *testing.T) {
	tokens := api.NewMemoryTokens("expired")
	useApp(t, "http://backend.test", tokens)

	_, err := check(api.Result[backend.AxisList]{Status: http.StatusUnauthorized, Detail: "Not authenticated"}, nil, "loading the axes", "")
	require.Error(t, err)
	var shown shownError
	assert.True(t, errors.As(err, &shown))
	assert.Equal(t, http.StatusUnauthorized, apperrors.StatusOf(err))

	tok, _ := tokens.AccessToken()
	assert.Empty(t, tok)
}

func TestCheckKeepsTokenOnOtherFailures(t *testing.T) {
	tokens := api.NewMemoryTokens("valid")
	useApp(t, "http://backend.test", tokens)

	_, err := check(api.Result[backend.AxisList]{Status: http.StatusNotFound}, nil, "loading the axes", axisNotFound)
	assert.Equal(t, http.StatusNotFound, apperrors.StatusOf(err))
	tok, _ := tokens.AccessToken()
	assert.Equal(t, "valid", tok)
}

func TestCheckReturnsValidationUnprinted(t *testing.T) {
	useApp(t, "http://backend.test", api.NewMemoryTokens(""))
	in := apperrors.New(apperrors.Validation, "message is required")
	_, err := check(api.Result[backend.AxisList]{}, in, "sending", "")
	var shown shownError
	assert.False(t, errors.As(err, &shown))
	assert.Equal(t, in, err)
}

func TestCheckSuccess(t *testing.T) {
	useApp(t, "http://backend.test", api.NewMemoryTokens(""))
	data := &backend.AxisList{Axes: []backend.AxisRef{{Code: "menu"}}}
	got, err := check(api.Result[backend.AxisList]{Data: data, Status: http.StatusOK}, nil, "loading the axes", "")
	require.NoError(t, err)
	assert.Same(t, data, got)
}

func TestResolveCard(t *testing.T) {
	topic, card, err := resolveCard("Interior_Exterior", "3")
	require.NoError(t, err)
	assert.Equal(t, "interior-exterior", topic.Slug)
	assert.Equal(t, "ファサード（外観）の在り方", card.Title)

	_, _, err = resolveCard("bakery", "1")
	assert.Error(t, err)

	_, _, err = resolveCard("menu", "999")
	assert.ErrorContains(t, err, "no card")
}

func TestRequireLogin(t *testing.T) {
	useApp(t, "http://backend.test", api.NewMemoryTokens(""))
	assert.Error(t, requireLogin())

	useApp(t, "http://backend.test", api.NewMemoryTokens("tok"))
	assert.NoError(t, requireLogin())
}

func TestPromptCellsCountsTerminalWidth(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		answer string
		want   int
	}{
		{name: "ascii", prompt: "Token: ", answer: "abc", want: 10},
		{name: "wide answer", prompt: "Q: ", answer: "ラーメン屋", want: 13},
		{name: "colored prompt", prompt: pterm.NewStyle(pterm.FgLightCyan, pterm.Bold).Sprint("You: "), answer: "はい", want: 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, promptCells(tt.prompt, tt.answer))
		})
	}
}

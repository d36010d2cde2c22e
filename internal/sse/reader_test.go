// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sse

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, stream string) []Event {
	t.Helper()
	r := NewReader(strings.NewReader(stream))
	var out []Event
	for {
		ev, err := r.Next()
		if err == io.EOF {
			return out
		}
		require.NoError(t, err)
		out = append(out, ev)
	}
}

func TestReaderNamedEvents(t *testing.T) {
	stream := "event: advice_location_delta\ndata: {\"delta\":\"A\"}\n\n" +
		"event: done\ndata: {}\n\n"

	events := readAll(t, stream)
	require.Len(t, events, 2)
	assert.Equal(t, "advice_location_delta", events[0].Event)
	assert.Equal(t, `{"delta":"A"}`, events[0].Data)
	assert.Equal(t, "done", events[1].Event)
}

func TestReaderFraming(t *testing.T) {
	tests := []struct {
		name   string
		stream string
		want   []Event
	}{
		{
			name:   "default event name",
			stream: "data: hello\n\n",
			want:   []Event{{Event: "message", Data: "hello"}},
		},
		{
			name:   "multi-line data joined",
			stream: "data: a\ndata: b\n\n",
			want:   []Event{{Event: "message", Data: "a\nb"}},
		},
		{
			name:   "comments and keepalives ignored",
			stream: ": ping\n\n: ping\nevent: done\n\n",
			want:   []Event{{Event: "done"}},
		},
		{
			name:   "crlf line endings",
			stream: "event: store_story_delta\r\ndata: {\"delta\":\"x\"}\r\n\r\n",
			want:   []Event{{Event: "store_story_delta", Data: `{"delta":"x"}`}},
		},
		{
			name:   "only one leading space stripped",
			stream: "data:  two\n\n",
			want:   []Event{{Event: "message", Data: " two"}},
		},
		{
			name:   "id persists and retry parsed",
			stream: "id: 7\nretry: 3000\ndata: a\n\ndata: b\n\n",
			want:   []Event{{ID: "7", Event: "message", Data: "a", Retry: 3000}, {ID: "7", Event: "message", Data: "b"}},
		},
		{
			name:   "unterminated trailing event dropped",
			stream: "data: a\n\ndata: partial",
			want:   []Event{{Event: "message", Data: "a"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, readAll(t, tt.stream))
		})
	}
}

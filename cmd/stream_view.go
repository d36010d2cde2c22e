// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// This file renders the live advice stream of a simulation.
package cmd

import (
	"strings"
	"sync"
	"time"

	"restaurantai/cli/internal/stream"
	"restaurantai/cli/internal/terminal"

	"atomicgo.dev/cursor"
	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"
)

var fieldLabels = map[stream.Field]string{
	stream.ConceptTitle:    "Concept",
	stream.ConceptDetail:   "Concept detail",
	stream.StoreStory:      "Store story",
	stream.AdviceLocation:  "Location advice",
	stream.AdviceHR:        "Staffing advice",
	stream.AdviceMenu:      "Menu advice",
	stream.AdviceMarketing: "Marketing advice",
	stream.AdviceFunds:     "Funding advice",
}

const labelWidth = 18

// renderStream draws one status line per field. The field receiving text shows
// the tail of what arrived so far, cut to width cells.
func renderStream(s stream.Snapshot, frame string, width int) string {
	lines := make([]string, 0, len(stream.Fields)+1)
	switch s.Status {
	case stream.Connecting:
		lines = append(lines, frame+" Connecting to the advice stream")
	case stream.Open:
		lines = append(lines, frame+" Generating advice")
	}
	for _, f := range stream.Fields {
		label := runewidth.FillRight(fieldLabels[f], labelWidth)
		var line string
		switch {
		case s.Loading(f):
			line = frame + " " + label + pterm.NewStyle(pterm.FgGray).Sprint("waiting")
		case f == s.Active && s.Streaming():
			tail := strings.Join(strings.Fields(s.Text(f)), " ")
			room := width - labelWidth - 3
			if room < 10 {
				room = 10
			}
			if over := runewidth.StringWidth(tail) - room; over > 0 {
				tail = runewidth.TruncateLeft(tail, over, "…")
			}
			line = "✎ " + label + tail
		default:
			line = "✓ " + label + pterm.NewStyle(pterm.FgGray).Sprintf("%d chars", len([]rune(s.Text(f))))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// liveStream keeps a pterm area in sync with an Aggregator until stopped.
type liveStream struct {
	mu   sync.Mutex
	snap stream.Snapshot

	area   *pterm.AreaPrinter
	cancel func()
	stop   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once
}

// startLiveStream subscribes to agg and redraws on a ticker so the spinner keeps
// moving between deltas. It returns nil when the terminal is not interactive.
func startLiveStream(agg *stream.Aggregator, width int) *liveStream {
	if !terminal.Interactive() {
		return nil
	}
	area, err := pterm.DefaultArea.WithRemoveWhenDone(true).Start()
	if err != nil {
		return nil
	}
	cursor.Hide()
	v := &liveStream{area: area, stop: make(chan struct{}), snap: agg.Snapshot()}
	v.cancel = agg.Subscribe(func(s stream.Snapshot) {
		v.mu.Lock()
		v.snap = s
		v.mu.Unlock()
	})
	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		t := time.NewTicker(120 * time.Millisecond)
		defer t.Stop()
		frame := 0
		last := ""
		for {
			select {
			case <-t.C:
				frame++
				v.mu.Lock()
				snap := v.snap
				v.mu.Unlock()
				text := renderStream(snap, spinnerFrames[frame%len(spinnerFrames)], width)
				if text != last {
					last = text
					v.area.Update(text)
				}
			case <-v.stop:
				return
			}
		}
	}()
	return v
}

// Stop removes the area and restores the cursor. It is safe on a nil view.
func (v *liveStream) Stop() {
	if v == nil {
		return
	}
	v.once.Do(func() {
		v.cancel()
		close(v.stop)
		v.wg.Wait()
		_ = v.area.Stop()
		cursor.Show()
	})
}

// printStreamResult prints every field that received text as its own section.
func printStreamResult(s stream.Snapshot) {
	for _, f := range stream.Fields {
		text := strings.TrimSpace(s.Text(f))
		if text == "" {
			continue
		}
		pterm.DefaultSection.WithLevel(2).Println(fieldLabels[f])
		pterm.Println(text)
	}
}

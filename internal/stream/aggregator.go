// Copyright (c) 2025 Restaurant AI
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package stream consumes the simulation result stream and folds its named delta
// events into per-field text buffers. An Aggregator owns at most one connection at a
// time; changing the session or closing the Aggregator tears that connection down and
// any event still in flight from it is dropped.
package stream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"restaurantai/cli/internal/logging"
	"restaurantai/cli/internal/sse"

	"github.com/pterm/pterm"
)

// DefaultErrorMessage is recorded when a stream fails.
const DefaultErrorMessage = "An error occurred while the AI was generating advice. Please check the backend API."

// ResultStreamPath is the stream endpoint relative to the API endpoint.
const ResultStreamPath = "/simulations/simple/result-stream"

// Aggregator is the streaming session state machine.
type Aggregator struct {
	endpoint   string
	http       *http.Client
	logger     *pterm.Logger
	errMessage string
	// connect runs one connection; replaced in tests.
	connect func(ctx context.Context, gen uint64, sessionID int64)

	// lifeMu serializes SetSession and Close, which join the connection goroutine.
	lifeMu sync.Mutex
	conns  sync.WaitGroup

	// notifyMu serializes mutations together with their observer calls so
	// observers see snapshots in mutation order.
	notifyMu sync.Mutex

	mu      sync.Mutex
	gen     uint64
	state   Snapshot
	cancel  context.CancelFunc
	closed  bool
	changed chan struct{}
	subs    map[int]func(Snapshot)
	nextSub int
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithHTTPClient sets the client used to open streams. It must not have a timeout
// shorter than the longest expected generation.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *Aggregator) { a.http = hc }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *pterm.Logger) Option {
	return func(a *Aggregator) { a.logger = l }
}

// WithErrorMessage overrides the user-facing failure message.
func WithErrorMessage(msg string) Option {
	return func(a *Aggregator) { a.errMessage = msg }
}

// New creates an idle Aggregator streaming from endpoint.
func New(endpoint string, opts ...Option) *Aggregator {
	a := &Aggregator{
		endpoint:   strings.TrimRight(endpoint, "/"),
		http:       &http.Client{},
		logger:     logging.Nop(),
		errMessage: DefaultErrorMessage,
		state:      initialSnapshot(),
		changed:    make(chan struct{}),
		subs:       make(map[int]func(Snapshot)),
	}
	a.connect = a.run
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// StreamURL returns the stream address for a session.
func (a *Aggregator) StreamURL(sessionID int64) string {
	return fmt.Sprintf("%s%s?session_id=%d", a.endpoint, ResultStreamPath, sessionID)
}

// Snapshot returns a copy of the current state.
func (a *Aggregator) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Subscribe registers fn to receive every new snapshot. fn runs synchronously on the
// mutating goroutine and must not call SetSession or Close.
func (a *Aggregator) Subscribe(fn func(Snapshot)) (cancel func()) {
	a.mu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subs[id] = fn
	a.mu.Unlock()
	return func() {
		a.mu.Lock()
		delete(a.subs, id)
		a.mu.Unlock()
	}
}

// SetSession points the Aggregator at a session. A nil or non-positive id returns it
// to Idle. Any previous connection is closed and waited for first; the same id again
// is a no-op.
func (a *Aggregator) SetSession(ctx context.Context, sessionID *int64) {
	a.lifeMu.Lock()
	defer a.lifeMu.Unlock()

	a.mu.Lock()
	if !a.closed && sameSession(a.state, sessionID) {
		a.mu.Unlock()
		return
	}
	a.teardownLocked()
	a.mu.Unlock()
	a.conns.Wait()

	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()

	a.mu.Lock()
	a.closed = false
	a.state = initialSnapshot()

	if sessionID == nil || *sessionID <= 0 {
		a.logger.Debug("stream idle: no session id")
		a.publishLocked()
		return
	}

	id := *sessionID
	a.state.SessionID = id
	a.state.Status = Connecting
	cctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel
	gen := a.gen
	a.publishLocked()

	a.logger.Debug("stream connecting", a.logger.Args("session_id", id, "url", a.StreamURL(id)))
	a.conns.Add(1)
	go func() {
		defer a.conns.Done()
		a.connect(cctx, gen, id)
	}()
}

// Close releases the connection and returns once its goroutine has exited. The last
// snapshot stays readable; nothing mutates it.
func (a *Aggregator) Close() {
	a.lifeMu.Lock()
	defer a.lifeMu.Unlock()

	a.notifyMu.Lock()
	a.mu.Lock()
	a.teardownLocked()
	a.closed = true
	a.publishLocked()
	a.notifyMu.Unlock()

	a.conns.Wait()
}

// Wait blocks until the session reaches a terminal state, the Aggregator is closed or
// idle, or ctx is done, and returns the latest snapshot.
func (a *Aggregator) Wait(ctx context.Context) (Snapshot, error) {
	for {
		a.mu.Lock()
		s, ch, closed := a.state, a.changed, a.closed
		a.mu.Unlock()
		if closed || s.Status == Idle || s.Status.Terminal() {
			return s, nil
		}
		select {
		case <-ch:
		case <-ctx.Done():
			return s, ctx.Err()
		}
	}
}

func sameSession(s Snapshot, id *int64) bool {
	if id == nil || *id <= 0 {
		return s.Status == Idle
	}
	return s.Status != Idle && s.SessionID == *id
}

// teardownLocked cancels the current connection and invalidates its generation.
func (a *Aggregator) teardownLocked() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.gen++
}

// publishLocked wakes waiters and calls observers, then releases a.mu.
// The caller must hold notifyMu and a.mu.
func (a *Aggregator) publishLocked() {
	snap := a.state
	close(a.changed)
	a.changed = make(chan struct{})
	subs := make([]func(Snapshot), 0, len(a.subs))
	for i := 0; i < a.nextSub; i++ {
		if fn, ok := a.subs[i]; ok {
			subs = append(subs, fn)
		}
	}
	a.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}

// mutate applies fn if gen is still current and the session is not terminal.
// It reports whether fn ran.
func (a *Aggregator) mutate(gen uint64, fn func(*Snapshot)) bool {
	a.notifyMu.Lock()
	defer a.notifyMu.Unlock()

	a.mu.Lock()
	if gen != a.gen || a.closed || a.state.Status.Terminal() {
		a.mu.Unlock()
		return false
	}
	fn(&a.state)
	if a.state.Status.Terminal() && a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.publishLocked()
	return true
}

type deltaPayload struct {
	Delta *string `json:"delta"`
}

// dispatch applies one stream event and reports whether the connection should keep reading.
func (a *Aggregator) dispatch(gen uint64, ev sse.Event) bool {
	switch ev.Event {
	case EventDone:
		a.logger.Debug("stream completed")
		a.mutate(gen, func(s *Snapshot) { s.finish(ClosedDone) })
		return false
	case EventError:
		a.logger.Warn("stream error event", a.logger.Args("data", logging.Mask(ev.Data)))
		a.fail(gen, errors.New("backend sent error event: "+strings.TrimSpace(ev.Data)))
		return false
	}

	f, ok := FieldForEvent(ev.Event)
	if !ok {
		a.logger.Debug("stream event ignored", a.logger.Args("event", ev.Event))
		return a.current(gen)
	}

	var p deltaPayload
	if err := json.Unmarshal([]byte(ev.Data), &p); err != nil {
		a.logger.Warn("failed to parse stream event",
			a.logger.Args("event", ev.Event, "error", err.Error(), "data", logging.Mask(ev.Data)))
		return a.current(gen)
	}
	delta := ""
	if p.Delta != nil {
		delta = *p.Delta
	}
	a.logger.Trace("stream delta", a.logger.Args("field", f.String(), "bytes", len(delta)))
	return a.mutate(gen, func(s *Snapshot) { s.appendDelta(f, delta) })
}

// markOpen records that the connection was established.
func (a *Aggregator) markOpen(gen uint64) bool {
	return a.mutate(gen, func(s *Snapshot) {
		if s.Status == Connecting {
			s.Status = Open
		}
	})
}

// fail moves the session to ClosedError. The failure is logged before waiters see it.
func (a *Aggregator) fail(gen uint64, cause error) {
	a.mutate(gen, func(s *Snapshot) {
		a.logger.Error("stream failed", a.logger.Args("error", logging.Mask(fmt.Sprint(cause))))
		s.finish(ClosedError)
		s.Err = a.errMessage
		if cause != nil {
			s.Cause = cause.Error()
		}
	})
}

// current reports whether gen still owns the Aggregator.
func (a *Aggregator) current(gen uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return gen == a.gen && !a.closed && !a.state.Status.Terminal()
}

// run opens the stream for sessionID and feeds events until a terminal state.
func (a *Aggregator) run(ctx context.Context, gen uint64, sessionID int64) {
	url := a.StreamURL(sessionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		a.fail(gen, err)
		return
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := a.http.Do(req)
	if err != nil {
		if ctx.Err() == nil {
			a.fail(gen, err)
		}
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		a.fail(gen, fmt.Errorf("stream returned status %d", resp.StatusCode))
		return
	}
	if !a.markOpen(gen) {
		return
	}
	a.logger.Debug("stream open", a.logger.Args("session_id", sessionID))

	r := sse.NewReader(resp.Body)
	for {
		ev, err := r.Next()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, io.EOF) {
				err = errors.New("stream closed by server before done")
			}
			a.fail(gen, err)
			return
		}
		if !a.dispatch(gen, ev) {
			return
		}
	}
}

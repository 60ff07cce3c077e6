// Package vlog provides opt-in structured execution tracing for the
// Executor: one JSON line per operation, written to stderr (New), thrown
// away (NewDiscard), or written to a rotating log file (NewFile).
//
// Grounded on the teacher's internal/trace/trace.go (an atomic enabled
// flag gating a lumberjack-backed sink, line-delimited JSON events,
// word/duration filters), generalized from per-word evaluation events
// to per-compile.Op execution events.
package vlog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Event is one traced operation (spec.md's Operation set, plus
// whatever the Executor observed running it).
type Event struct {
	Step      int64     `json:"step"`
	Timestamp time.Time `json:"timestamp"`
	Op        string    `json:"op"`
	Value     string    `json:"value,omitempty"`
	Duration  int64     `json:"duration_ns,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Session is an opt-in tracing sink. Its zero value is safe to use
// (disabled, no output) so an Executor can hold a *Session field that
// is nil-safe to call.
type Session struct {
	mu       sync.Mutex
	enabled  atomic.Bool
	sink     io.Writer
	logger   *lumberjack.Logger
	step     int64
	callback atomic.Value // stores func(Event)
}

// SetCallback registers a function invoked with every emitted Event, in
// addition to the usual JSON-line sink write. A nil callback clears any
// previously registered one. Lets a consumer (such as an aggregating
// profiler) observe the trace stream without parsing the JSON sink back
// out, the way the teacher's own trace.TraceSession.SetCallback lets its
// profiler attach without re-parsing its own JSON output.
func (s *Session) SetCallback(cb func(Event)) {
	if s == nil {
		return
	}
	s.callback.Store(cb)
}

// New creates a disabled Session writing to stderr by default.
func New() *Session {
	return &Session{sink: os.Stderr}
}

// NewDiscard creates a disabled Session whose JSON-line output is
// thrown away, for callers that only want the callback stream (profile
// aggregation) without the per-line trace output.
func NewDiscard() *Session {
	return &Session{sink: io.Discard}
}

// NewFile creates a disabled Session writing to a rotating log file
// (50MB segments, 5 backups retained, compressed), matching the
// teacher's own rotation defaults.
func NewFile(path string) *Session {
	logger := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    50,
		MaxBackups: 5,
		Compress:   true,
	}
	return &Session{sink: logger, logger: logger}
}

// Enable activates tracing.
func (s *Session) Enable() { s.enabled.Store(true) }

// Disable deactivates tracing.
func (s *Session) Disable() { s.enabled.Store(false) }

// Enabled reports whether tracing is active. Safe to call on a nil
// *Session (reports false).
func (s *Session) Enabled() bool {
	if s == nil {
		return false
	}
	return s.enabled.Load()
}

// Emit writes ev if tracing is enabled. Safe to call on a nil
// *Session (no-op).
func (s *Session) Emit(op string, value string, err error, duration time.Duration) {
	if s == nil || !s.enabled.Load() {
		return
	}
	ev := Event{
		Step:      atomic.AddInt64(&s.step, 1),
		Timestamp: time.Now(),
		Op:        op,
		Value:     value,
		Duration:  duration.Nanoseconds(),
	}
	if err != nil {
		ev.Error = err.Error()
	}
	if cb, ok := s.callback.Load().(func(Event)); ok && cb != nil {
		cb(ev)
	}
	data, merr := json.Marshal(ev)
	if merr != nil {
		fmt.Fprintf(os.Stderr, "vlog: serialization error: %v\n", merr)
		return
	}
	s.mu.Lock()
	fmt.Fprintf(s.sink, "%s\n", data)
	s.mu.Unlock()
}

// Close flushes and closes the underlying log file, if any.
func (s *Session) Close() error {
	if s == nil || s.logger == nil {
		return nil
	}
	return s.logger.Close()
}

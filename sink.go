/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package itemstore

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/suparena/itemstore/storagemodels"
)

// Sink receives the confirmation records a Registry emits.
type Sink interface {
	Notify(ev storagemodels.Event)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ev storagemodels.Event)

// Notify calls f(ev).
func (f SinkFunc) Notify(ev storagemodels.Event) { f(ev) }

// NopSink discards every event.
type NopSink struct{}

// Notify does nothing.
func (NopSink) Notify(storagemodels.Event) {}

// MultiSink fans each event out to every sink in order.
func MultiSink(sinks ...Sink) Sink {
	return SinkFunc(func(ev storagemodels.Event) {
		for _, s := range sinks {
			if s != nil {
				s.Notify(ev)
			}
		}
	})
}

// WriterSink writes each event's human-readable line to w.
func WriterSink(w io.Writer) Sink {
	return SinkFunc(func(ev storagemodels.Event) {
		fmt.Fprintln(w, ev.String())
	})
}

// LogSink writes events as structured log records.
type LogSink struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogSink returns a LogSink logging at level. A nil logger uses slog.Default().
func NewLogSink(logger *slog.Logger, level slog.Level) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger, level: level}
}

// Notify logs ev.
func (s *LogSink) Notify(ev storagemodels.Event) {
	s.logger.LogAttrs(context.Background(), s.level, "item "+string(ev.Action),
		slog.String("id", ev.ItemID),
		slog.String("description", ev.Description),
		slog.String("location", ev.Location),
		slog.String("at", ev.At.String()),
	)
}

// Recorder keeps every event it receives.
type Recorder struct {
	mu     sync.Mutex
	events []storagemodels.Event
}

// Notify appends ev.
func (r *Recorder) Notify(ev storagemodels.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded events in arrival order.
func (r *Recorder) Events() []storagemodels.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]storagemodels.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Actions returns the action of each recorded event.
func (r *Recorder) Actions() []storagemodels.Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]storagemodels.Action, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Action
	}
	return out
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package itemstore

import (
	"time"

	"github.com/suparena/itemstore/datastore/ordered"
)

// Option configures a Registry
type Option func(*options)

type options struct {
	sink   Sink
	clock  func() time.Time
	degree int
}

func defaultOptions() options {
	return options{
		sink:   NopSink{},
		clock:  time.Now,
		degree: ordered.DefaultDegree,
	}
}

// WithSink sets the sink that receives a confirmation Event for every
// successful operation. A nil sink discards events.
func WithSink(sink Sink) Option {
	return func(o *options) {
		if sink == nil {
			sink = NopSink{}
		}
		o.sink = sink
	}
}

// WithClock sets the time source used to stamp events
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithIndexDegree sets the B-tree degree of the description index.
// Values below 2 are ignored.
func WithIndexDegree(degree int) Option {
	return func(o *options) {
		if degree >= 2 {
			o.degree = degree
		}
	}
}

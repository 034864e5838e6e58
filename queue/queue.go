/*
Copyright (c) The acdp Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package queue implements the multi-producer, single-consumer message
// queue that sits between the analyzer and its client (spec §4.4): a
// FIFO of typed envelopes, plus the perishable-message expiry policy
// that keeps a slow consumer from piling up stale spectra.
//
// Grounded on _examples/facebook-time/ptp4u/server/worker.go's
// `queue chan *SubscriptionClient` consumer loop, generalized from a
// fixed packet type to a typed envelope.
package queue

import (
	"context"
	"errors"
	"sync"

	"github.com/suscan/acdp/message"
)

// Envelope is the typed unit carried on a Queue.
type Envelope struct {
	Type  message.Type
	Value message.Value
}

// ErrFull is returned by Write when the queue's buffer is saturated; the
// caller retains ownership of the message and is expected to dispose it
// (spec §4.4 "On failure the caller retains ownership").
var ErrFull = errors.New("queue: full")

// ErrClosed is returned by Write once the queue has been closed.
var ErrClosed = errors.New("queue: closed")

// Queue is a bounded FIFO of Envelopes. FIFO order is preserved across
// all producers; there is a single consumer (spec §5 "Ordering").
type Queue struct {
	ch chan Envelope

	closeOnce sync.Once
	closed    chan struct{}

	metrics *Metrics
}

// New returns a Queue with the given buffer capacity. A capacity of 0
// yields a fully synchronous (unbuffered) queue.
func New(capacity int, metrics *Metrics) *Queue {
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	return &Queue{
		ch:      make(chan Envelope, capacity),
		closed:  make(chan struct{}),
		metrics: metrics,
	}
}

// Write enqueues an envelope, taking ownership of it. It never blocks:
// if the queue is saturated it returns ErrFull immediately, matching
// spec §4.4's "write(type, ptr) — takes ownership; returns
// success/failure" where failure must not contend with a stuck
// consumer.
func (q *Queue) Write(e Envelope) error {
	select {
	case <-q.closed:
		return ErrClosed
	default:
	}
	select {
	case q.ch <- e:
		q.metrics.incWrite(e.Type)
		return nil
	default:
		q.metrics.incDrop(e.Type, "full")
		return ErrFull
	}
}

// Read blocks until a message is available or ctx is done (spec §4.4
// "read() — blocks until a message is available"; the Context parameter
// is this module's idiomatic stand-in for spec §5's "cancellation is
// achieved by sending a sentinel and draining" — both mechanisms are
// supported).
func (q *Queue) Read(ctx context.Context) (Envelope, error) {
	select {
	case e := <-q.ch:
		q.metrics.incRead(e.Type)
		return e, nil
	case <-q.closed:
		// Drain whatever is still buffered before reporting closed, so
		// a Close immediately followed by a final Read still observes
		// in-flight envelopes in order.
		select {
		case e := <-q.ch:
			q.metrics.incRead(e.Type)
			return e, nil
		default:
			return Envelope{}, ErrClosed
		}
	case <-ctx.Done():
		return Envelope{}, ctx.Err()
	}
}

// Close stops further writes; buffered envelopes already written remain
// readable via Read until drained, and Drain disposes whatever is left
// (spec §5 "cancellation is achieved by sending a sentinel and
// draining"). Close is idempotent and never closes the data channel
// itself, so a Write racing a Close cannot panic on a closed channel.
func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		close(q.closed)
	})
}

// Drain reads and disposes every envelope currently buffered, without
// blocking.
func (q *Queue) Drain() {
	for {
		select {
		case e := <-q.ch:
			message.Dispose(e.Value)
		default:
			return
		}
	}
}

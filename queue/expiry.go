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

package queue

import (
	"sync"
	"time"

	"github.com/suscan/acdp/message"
)

// DefaultExpiryThreshold is the tuned constant spec §4.4/§9 describes:
// perishable messages arriving later than this many milliseconds past
// the steady-state implementation/real-time delta are expired. Kept
// configurable per spec §9 ("keep as a configurable parameter with that
// default").
const DefaultExpiryThreshold = 50 * time.Millisecond

// ExpiryTracker implements spec §4.4's expiry policy for perishable
// messages (Psd and Inspector/SPECTRUM): the first timely message
// observed seeds impl_rt_delta = now - rt_time; thereafter a message is
// expired iff (now - rt_time) - impl_rt_delta > Threshold.
type ExpiryTracker struct {
	Threshold time.Duration

	// Metrics, if set, receives an IncExpired call for every message
	// ShouldDispatch drops for expiry. Left nil in tests that don't
	// care about counters.
	Metrics *Metrics

	mu      sync.Mutex
	seeded  bool
	delta   time.Duration
	nowFunc func() time.Time
}

// NewExpiryTracker returns a tracker using DefaultExpiryThreshold.
func NewExpiryTracker() *ExpiryTracker {
	return &ExpiryTracker{Threshold: DefaultExpiryThreshold, nowFunc: time.Now}
}

// IsExpired reports whether a message stamped rt should be dropped. The
// first call seeds impl_rt_delta and never reports expiry for that
// message, matching spec's "the first timely message observed seeds
// impl_rt_delta" (spec §8 property 4: expiry is monotone in rt_time
// within a burst once the delta is seeded).
func (t *ExpiryTracker) IsExpired(rt message.Stamp) bool {
	now := t.now()
	delay := now.Sub(rt.Time())

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.seeded {
		t.delta = delay
		t.seeded = true
		return false
	}

	return delay-t.delta > t.Threshold
}

// Reset clears the seeded delta, so the next message reseeds it.
func (t *ExpiryTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seeded = false
	t.delta = 0
}

func (t *ExpiryTracker) now() time.Time {
	if t.nowFunc != nil {
		return t.nowFunc()
	}
	return time.Now()
}

// ShouldDispatch checks a Realtime value against the tracker and, when
// expired, disposes it and reports false — the one-call idiom the queue
// consumer loop uses to drop stale spectra before dispatch (spec §4.4).
// Non-Realtime values (everything but Psd and Inspector/SPECTRUM) are
// never expired.
func (t *ExpiryTracker) ShouldDispatch(v message.Value) bool {
	rt, ok := v.(message.Realtime)
	if !ok {
		return true
	}
	if spectrum, ok2 := v.(*message.Inspector); ok2 && spectrum.Kind != message.InspectorSpectrum {
		return true
	}
	if t.IsExpired(rt.RTTime()) {
		t.Metrics.IncExpired(v.Type())
		message.Dispose(v)
		return false
	}
	return true
}

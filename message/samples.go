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

package message

// Samples is a per-inspector batch of interleaved-IQ complex samples.
//
// Grounded on original_source/analyzer/msg.h's
// suscan_analyzer_sample_batch_msg. Unlike the original's malloc'd
// buffer, Data is recycled through a sync.Pool (see sender/pool.go,
// SPEC_FULL.md §9): Dispose returns the slice to that pool instead of
// merely dropping the reference, so this is where the wire-contract
// Dispose entry point earns its keep in a garbage-collected runtime.
type Samples struct {
	InspectorID uint32
	Data        []complex64

	release func([]complex64)
}

// NewSamples builds a Samples message. release, if non-nil, is invoked by
// Dispose with the owned slice once it has been detached from the
// message (used by sender.Pool to recycle buffers); callers outside the
// sender façade may pass nil.
func NewSamples(inspectorID uint32, data []complex64, release func([]complex64)) *Samples {
	return &Samples{InspectorID: inspectorID, Data: data, release: release}
}

// Type implements Value.
func (s *Samples) Type() Type { return TypeSamples }

// Take transfers ownership of Data to the caller; the message's own
// release hook is dropped since the caller now decides the buffer's
// fate.
func (s *Samples) Take() []complex64 {
	d := s.Data
	s.Data = nil
	s.release = nil
	return d
}

func (s *Samples) dispose() {
	d := s.Data
	s.Data = nil
	if s.release != nil && d != nil {
		s.release(d)
	}
	s.release = nil
}

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

// Psd is a Power Spectral Density frame: a fixed-frequency header plus an
// owned array of real power samples. It is one of the two variants that
// participate in expiry (spec §3.3, §4.4).
//
// Grounded on original_source/analyzer/msg.h's suscan_analyzer_psd_msg.
type Psd struct {
	FC                int64 // fixed center frequency of the full-spectrum capture
	InspectorID        uint32
	Timestamp         Stamp // source-side wall-clock timestamp
	RTTimeValue       Stamp // monotonic-wall stamp assigned at construction
	Looped            bool
	HistorySize       uint64
	SampRate          float32
	MeasuredSampRate  float32
	N0                float32
	PsdData           []float32
}

// NewPsd builds a Psd message, stamping RTTimeValue to now (spec §3.3:
// real-time timestamps are assigned at construction, never from the
// source's own clock).
func NewPsd(fc int64, inspectorID uint32, timestamp Stamp, data []float32, sampRate, n0 float32) *Psd {
	return &Psd{
		FC:          fc,
		InspectorID: inspectorID,
		Timestamp:   timestamp,
		RTTimeValue: Now(),
		PsdData:     data,
		SampRate:    sampRate,
		N0:          n0,
	}
}

// Type implements Value.
func (p *Psd) Type() Type { return TypePsd }

// RTTime implements Realtime.
func (p *Psd) RTTime() Stamp { return p.RTTimeValue }

// Take transfers ownership of PsdData to the caller (spec §8 property 3):
// after Take, PsdData is nil and len is 0.
func (p *Psd) Take() []float32 {
	d := p.PsdData
	p.PsdData = nil
	return d
}

func (p *Psd) dispose() {
	p.PsdData = nil
}

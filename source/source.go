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

// Package source defines the narrow interface the analyzer core expects
// of a DSP/hardware signal source. No concrete driver lives here: SDR
// hardware and file sources are external collaborators (spec §1, §6)
// that this module only interfaces with through the operations below.
package source

import "context"

// DetectorMode reports whether a DSP detector is operating on raw power
// (the default) or on an autocorrelation estimate, which changes how the
// sender façade must reduce its output into a PSD (spec §4.5).
type DetectorMode int

const (
	ModePower DetectorMode = iota
	ModeAutocorrelation
)

// ChannelDetection is one DSP channel-detector output, the shape the
// sender façade turns into a message.ChannelInfo.
type ChannelDetection struct {
	FC, FLo, FHi     int64
	Bandwidth        float32
	SNR, S0, N0      float32
	FT               int64
	Age, PresentCnt  uint32
}

// SpectrumFrame is one capture's worth of raw spectral data as produced
// by a DSP detector, before the sender façade's PSD reduction.
type SpectrumFrame struct {
	FC               int64
	InspectorID      uint32
	Timestamp        int64 // unix seconds
	TimestampUsec    uint32
	Looped           bool
	HistorySize      uint64
	SampRate         float32
	MeasuredSampRate float32
	N0               float32
	Mode             DetectorMode
	// Magnitude holds FFT bin magnitudes (power mode) or the real part
	// of an autocorrelation estimate (autocorrelation mode); the sender
	// façade reduces either into PSD.PsdData per spec §4.5.
	Magnitude []float32
	WindowSize int
}

// SampleBatch is one inspector's worth of demodulated IQ samples.
type SampleBatch struct {
	InspectorID uint32
	Samples     []complex64
}

// Info describes a source's static capabilities (spec §3.2 SourceInfo).
type Info struct {
	Driver         string
	Antennas       []string
	GainStages     []string
	SampRateMin    float64
	SampRateMax    float64
	CurrentAntenna string
}

// Source is the operation set the sender façade polls to materialize
// ACDP messages. Implementations (SDR hardware drivers, file replay
// sources) live outside this module.
type Source interface {
	// NextChannel blocks until the next channel-detector update is
	// available, or ctx is done.
	NextChannel(ctx context.Context) ([]ChannelDetection, error)
	// NextSpectrum blocks until the next full-spectrum capture is
	// available, or ctx is done.
	NextSpectrum(ctx context.Context) (SpectrumFrame, error)
	// NextSamples blocks until the next inspector sample batch is
	// available, or ctx is done.
	NextSamples(ctx context.Context) (SampleBatch, error)
	// Info returns the source's static capability description.
	Info() Info
	// Close releases the source's resources.
	Close() error
}

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

// Package sender is the façade between a source.Source and a queue.Queue:
// it builds each ACDP message variant from the source's raw output and
// enqueues it, reporting an Internal status message if the enqueue
// itself fails (spec §4.5).
//
// Grounded on _examples/facebook-time/ptp4u/server/worker.go's per-type
// send switch for the "build, emit, handle failure" idiom, and on
// original_source/analyzer/msg.c's suscan_analyzer_send_psd/
// suscan_analyzer_send_status for the specific allocate-then-enqueue-
// or-report-failure pattern.
package sender

import (
	"github.com/suscan/acdp/message"
	"github.com/suscan/acdp/queue"
	"github.com/suscan/acdp/source"
)

// Sender owns the sample buffer pool and noise-floor smoother shared
// across a source's lifetime and writes every message it builds onto a
// single outbound queue.Queue.
type Sender struct {
	q     *queue.Queue
	pool  *samplePool
	noise *noiseFloor
}

// New returns a Sender writing onto q.
func New(q *queue.Queue) *Sender {
	return &Sender{
		q:     q,
		pool:  newSamplePool(),
		noise: newNoiseFloor(),
	}
}

// enqueue takes ownership of v and writes it to the queue. If the write
// fails, v is disposed and an Internal status is sent in its place
// (original_source/analyzer/msg.c: "on failure, send an internal error
// and bail"); a failure to send that Internal status itself is not
// retried, to avoid looping.
func (s *Sender) enqueue(v message.Value) error {
	err := s.q.Write(queue.Envelope{Type: v.Type(), Value: v})
	if err == nil {
		return nil
	}
	message.Dispose(v)
	if v.Type() != message.TypeInternal {
		s.reportFailure(err)
	}
	return err
}

func (s *Sender) reportFailure(cause error) {
	status := message.NewInternal(-1, cause.Error())
	if err := s.q.Write(queue.Envelope{Type: status.Type(), Value: status}); err != nil {
		message.Dispose(status)
	}
}

// SendSourceInfo announces a source's static capabilities.
func (s *Sender) SendSourceInfo(info source.Info) error {
	msg := message.NewSourceInfo(info.Driver, info.Antennas, info.GainStages, info.SampRateMin, info.SampRateMax)
	msg.CurrentAntenna = info.CurrentAntenna
	return s.enqueue(msg)
}

// SendSourceInit reports init progress, success, or failure.
func (s *Sender) SendSourceInit(code int32, msg string) error {
	return s.enqueue(message.NewStatus(message.TypeSourceInit, code, msg))
}

// SendEos reports end of stream.
func (s *Sender) SendEos(msg string) error {
	return s.enqueue(message.NewStatus(message.TypeEos, 0, msg))
}

// SendReadError reports a source read error.
func (s *Sender) SendReadError(code int32, msg string) error {
	return s.enqueue(message.NewStatus(message.TypeReadError, code, msg))
}

// SendSamplesLost reports a dropped-sample-count event; code carries the
// count, matching how Status overloads Code across its wire types.
func (s *Sender) SendSamplesLost(count int32) error {
	return s.enqueue(message.NewStatus(message.TypeSamplesLost, count, ""))
}

// SendInternal reports an internal error directly, bypassing the
// enqueue-failure path (used when the caller already knows the failure
// reason rather than having it surfaced by a failed Write).
func (s *Sender) SendInternal(code int32, msg string) error {
	return s.enqueue(message.NewInternal(code, msg))
}

// SendChannel converts a detector's channel list and enqueues it.
func (s *Sender) SendChannel(dets []source.ChannelDetection) error {
	infos := make([]message.ChannelInfo, len(dets))
	for i, d := range dets {
		infos[i] = message.ChannelInfo{
			FC:         d.FC,
			FLo:        d.FLo,
			FHi:        d.FHi,
			Bandwidth:  d.Bandwidth,
			SNR:        d.SNR,
			S0:         d.S0,
			N0:         d.N0,
			FT:         d.FT,
			Age:        d.Age,
			PresentCnt: d.PresentCnt,
		}
	}
	return s.enqueue(message.NewChannel(infos))
}

// SendPsd reduces a capture into its PSD form, smooths its noise floor,
// and enqueues it (spec §4.5).
func (s *Sender) SendPsd(frame source.SpectrumFrame) error {
	data := reducePsd(frame)
	n0 := s.noise.Smooth(frame.N0)
	timestamp := message.Stamp{Sec: uint64(frame.Timestamp), Usec: frame.TimestampUsec}
	msg := message.NewPsd(frame.FC, frame.InspectorID, timestamp, data, frame.SampRate, n0)
	msg.MeasuredSampRate = frame.MeasuredSampRate
	msg.Looped = frame.Looped
	msg.HistorySize = frame.HistorySize
	return s.enqueue(msg)
}

// SendSamples hands a batch of demodulated IQ samples to the queue. The
// underlying buffer is recycled through the Sender's pool once the
// message is disposed.
func (s *Sender) SendSamples(batch source.SampleBatch) error {
	buf := s.pool.get(len(batch.Samples))
	copy(buf, batch.Samples)
	msg := message.NewSamples(batch.InspectorID, buf, s.pool.put)
	return s.enqueue(msg)
}

// SendInspector enqueues a pre-built inspector control/report message.
func (s *Sender) SendInspector(insp *message.Inspector) error {
	return s.enqueue(insp)
}

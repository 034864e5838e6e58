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

package sender

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suscan/acdp/message"
	"github.com/suscan/acdp/queue"
	"github.com/suscan/acdp/source"
)

func TestReducePsdPowerMode(t *testing.T) {
	frame := source.SpectrumFrame{
		Mode:       source.ModePower,
		Magnitude:  []float32{2, 4},
		WindowSize: 2,
	}
	out := reducePsd(frame)
	assert.Equal(t, []float32{2, 8}, out) // (2*2)/2, (4*4)/2
}

func TestReducePsdAutocorrelationMode(t *testing.T) {
	frame := source.SpectrumFrame{
		Mode:      source.ModeAutocorrelation,
		Magnitude: []float32{1, -2, 3},
	}
	out := reducePsd(frame)
	assert.Equal(t, frame.Magnitude, out)
}

func TestNoiseFloorSmooths(t *testing.T) {
	n := newNoiseFloor()
	a := n.Smooth(-90)
	b := n.Smooth(-80)
	assert.Equal(t, float32(-90), a)
	assert.InDelta(t, -85, b, 0.001)
}

func TestSamplePoolReusesCapacity(t *testing.T) {
	p := newSamplePool()
	buf := p.get(4)
	require.Len(t, buf, 4)
	p.put(buf)
	buf2 := p.get(3)
	assert.Equal(t, 3, len(buf2))
}

func TestSendPsdEnqueuesReducedFrame(t *testing.T) {
	q := queue.New(4, nil)
	s := New(q)

	frame := source.SpectrumFrame{
		FC:         1e9,
		InspectorID: 1,
		SampRate:   48000,
		N0:         -90,
		Mode:       source.ModePower,
		Magnitude:  []float32{1, 2},
		WindowSize: 1,
	}
	require.NoError(t, s.SendPsd(frame))

	env, err := q.Read(context.Background())
	require.NoError(t, err)
	psd, ok := env.Value.(*message.Psd)
	require.True(t, ok)
	assert.Equal(t, frame.FC, psd.FC)
	assert.Equal(t, []float32{1, 4}, psd.PsdData)
}

func TestEnqueueFailureGivesUpWhenReportCannotBeQueued(t *testing.T) {
	q := queue.New(1, nil) // capacity 1: first write fills it, second must fail
	s := New(q)

	require.NoError(t, s.SendSourceInit(message.InitProgress, "starting"))
	err := s.SendSourceInit(message.InitSuccess, "ready")
	require.Error(t, err, "queue is saturated so the second enqueue must fail")

	// The queue now holds the first message; the failure report for the
	// second couldn't be enqueued either (still full), so nothing more to
	// drain. This exercises the non-recursive give-up path.
	env, err := q.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, message.TypeSourceInit, env.Type)
}

func TestSendSamplesRecyclesBuffer(t *testing.T) {
	q := queue.New(2, nil)
	s := New(q)

	require.NoError(t, s.SendSamples(source.SampleBatch{InspectorID: 1, Samples: []complex64{1 + 1i, 2 + 2i}}))
	env, err := q.Read(context.Background())
	require.NoError(t, err)
	samples := env.Value.(*message.Samples)
	assert.Equal(t, []complex64{1 + 1i, 2 + 2i}, samples.Data)

	message.Dispose(samples)
	assert.Nil(t, samples.Data)
}

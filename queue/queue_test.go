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
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suscan/acdp/message"
)

func TestWriteReadFIFOOrder(t *testing.T) {
	q := New(4, nil)
	for i := 0; i < 3; i++ {
		require.NoError(t, q.Write(Envelope{Type: message.TypeEos, Value: message.NewStatus(message.TypeEos, int32(i), "")}))
	}
	for i := 0; i < 3; i++ {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		e, err := q.Read(ctx)
		cancel()
		require.NoError(t, err)
		assert.Equal(t, int32(i), e.Value.(*message.Status).Code)
	}
}

func TestWriteReturnsErrFullWhenSaturated(t *testing.T) {
	q := New(1, nil)
	require.NoError(t, q.Write(Envelope{Type: message.TypeEos, Value: message.NewStatus(message.TypeEos, 0, "")}))
	err := q.Write(Envelope{Type: message.TypeEos, Value: message.NewStatus(message.TypeEos, 1, "")})
	assert.ErrorIs(t, err, ErrFull)
}

func TestCloseDrainsThenReportsClosed(t *testing.T) {
	q := New(2, nil)
	require.NoError(t, q.Write(Envelope{Type: message.TypeEos, Value: message.NewStatus(message.TypeEos, 1, "")}))
	q.Close()

	ctx := context.Background()
	e, err := q.Read(ctx)
	require.NoError(t, err, "buffered envelope should still be delivered after Close")
	assert.Equal(t, int32(1), e.Value.(*message.Status).Code)

	_, err = q.Read(ctx)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestWriteAfterCloseFails(t *testing.T) {
	q := New(1, nil)
	q.Close()
	err := q.Write(Envelope{Type: message.TypeEos, Value: message.NewStatus(message.TypeEos, 0, "")})
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCloseIsIdempotent(t *testing.T) {
	q := New(1, nil)
	assert.NotPanics(t, func() {
		q.Close()
		q.Close()
	})
}

func TestReadRespectsContextCancellation(t *testing.T) {
	q := New(1, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := q.Read(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDrainDisposesBufferedEnvelopes(t *testing.T) {
	q := New(2, nil)
	s := message.NewSamples(1, []complex64{1 + 1i}, nil)
	require.NoError(t, q.Write(Envelope{Type: message.TypeSamples, Value: s}))
	q.Drain()
	assert.Nil(t, s.Data)
}

func TestExpiryFirstMessageSeedsDelta(t *testing.T) {
	tr := NewExpiryTracker()
	assert.False(t, tr.IsExpired(message.Now()))
}

func TestExpiryRejectsMessageBeyondThreshold(t *testing.T) {
	base := time.Now()
	tick := base
	tr := &ExpiryTracker{Threshold: 10 * time.Millisecond, nowFunc: func() time.Time { return tick }}

	rt := message.FromTime(base)
	assert.False(t, tr.IsExpired(rt), "first message seeds the delta")

	tick = base.Add(50 * time.Millisecond)
	assert.True(t, tr.IsExpired(rt), "second message stamped the same rt but arriving late should expire")
}

func TestShouldDispatchExemptsNonSpectrumInspectorKinds(t *testing.T) {
	tr := NewExpiryTracker()
	insp := message.NewInspector(message.InspectorOpen, 1, 1)
	assert.True(t, tr.ShouldDispatch(insp))
}

func TestShouldDispatchAppliesToSpectrumInspector(t *testing.T) {
	base := time.Now()
	tick := base
	tr := &ExpiryTracker{Threshold: 5 * time.Millisecond, nowFunc: func() time.Time { return tick }}

	insp := message.NewInspector(message.InspectorSpectrum, 1, 1)
	insp.RTTimeValue = message.FromTime(base)
	insp.Spectrum = &message.SpectrumTail{Data: []float32{1}}

	assert.True(t, tr.ShouldDispatch(insp), "first message is never expired")

	tick = base.Add(100 * time.Millisecond)
	insp2 := message.NewInspector(message.InspectorSpectrum, 1, 2)
	insp2.RTTimeValue = message.FromTime(base)
	insp2.Spectrum = &message.SpectrumTail{Data: []float32{1}}
	assert.False(t, tr.ShouldDispatch(insp2))
	assert.Nil(t, insp2.Spectrum, "ShouldDispatch must dispose an expired message")
}

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

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 123000, time.UTC)
	s := FromTime(now)
	assert.Equal(t, now.Unix(), int64(s.Sec))
	assert.Equal(t, now.UTC(), s.Time())
}

func TestStampSub(t *testing.T) {
	a := Stamp{Sec: 10, Usec: 500000}
	b := Stamp{Sec: 10, Usec: 0}
	assert.Equal(t, 500*time.Millisecond, a.Sub(b))
}

func TestPsdTakeClearsOwnership(t *testing.T) {
	p := NewPsd(100.0, 1, Now(), []float32{1, 2, 3}, 48000, -90)
	data := p.Take()
	require.Len(t, data, 3)
	assert.Nil(t, p.PsdData)
	assert.Equal(t, 0, len(p.Take()))
}

func TestSamplesDisposeInvokesRelease(t *testing.T) {
	var released []complex64
	s := NewSamples(1, []complex64{1 + 1i}, func(b []complex64) { released = b })
	Dispose(s)
	require.Len(t, released, 1)
	assert.Nil(t, s.Data)
}

func TestSamplesTakeDropsReleaseHook(t *testing.T) {
	called := false
	s := NewSamples(1, []complex64{1 + 1i}, func(b []complex64) { called = true })
	_ = s.Take()
	Dispose(s)
	assert.False(t, called, "Take should transfer ownership away from the release hook")
}

func TestDisposeIsIdempotent(t *testing.T) {
	c := NewChannel([]ChannelInfo{{FC: 1}})
	Dispose(c)
	assert.NotPanics(t, func() { Dispose(c) })
	assert.Nil(t, c.Channels)
}

func TestDisposeOnNilIsNoop(t *testing.T) {
	assert.NotPanics(t, func() { Dispose(nil) })
}

func TestInspectorDisposeClearsAllTails(t *testing.T) {
	insp := NewInspector(InspectorSpectrum, 1, 1)
	insp.Spectrum = &SpectrumTail{Data: []float32{1, 2}}
	insp.Open = &OpenTail{EstimatorList: []string{"a"}}
	Dispose(insp)
	assert.Nil(t, insp.Spectrum)
	assert.Nil(t, insp.Open)
}

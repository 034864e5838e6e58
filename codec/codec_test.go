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

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suscan/acdp/message"
)

func TestPackerUnpackerRoundTrip(t *testing.T) {
	p := NewPacker()
	p.PackUint(42)
	p.PackInt(-7)
	p.PackFloat32(1.5)
	p.PackStr("hello")
	p.PackBool(true)
	require.NoError(t, p.Err())

	u := NewUnpacker(p.Bytes())
	assert.Equal(t, uint64(42), u.UnpackUint())
	assert.Equal(t, int64(-7), u.UnpackInt())
	assert.Equal(t, float32(1.5), u.UnpackFloat32())
	assert.Equal(t, "hello", u.UnpackStr())
	assert.Equal(t, true, u.UnpackBool())
	require.NoError(t, u.Err())
}

func TestUnpackerFirstErrorLatches(t *testing.T) {
	u := NewUnpacker([]byte{})
	_ = u.UnpackUint()
	require.Error(t, u.Err())
	// subsequent calls are no-ops, not panics
	assert.Equal(t, int64(0), u.UnpackInt())
	assert.Equal(t, "", u.UnpackStr())
}

func TestFloatArrayRoundTrip(t *testing.T) {
	p := NewPacker()
	in := []float32{1, -2.5, 3.25}
	p.PackFloatArray(in)
	require.NoError(t, p.Err())

	u := NewUnpacker(p.Bytes())
	out := u.UnpackFloatArray()
	require.NoError(t, u.Err())
	assert.Equal(t, in, out)
}

func TestComplexArrayRoundTrip(t *testing.T) {
	p := NewPacker()
	in := []complex64{1 + 2i, -3 + 4.5i}
	p.PackComplexArray(in)
	require.NoError(t, p.Err())

	u := NewUnpacker(p.Bytes())
	out := u.UnpackComplexArray()
	require.NoError(t, u.Err())
	assert.Equal(t, in, out)
}

func TestSerializeRejectsChannel(t *testing.T) {
	_, err := Serialize(message.NewChannel(nil))
	require.Error(t, err)
}

func TestDeserializeRejectsChannel(t *testing.T) {
	p := NewPacker()
	p.PackUint(uint64(message.TypeChannel))
	require.NoError(t, p.Err())

	_, err := Deserialize(p.Bytes())
	require.Error(t, err)
}

func TestPsdRoundTrip(t *testing.T) {
	orig := message.NewPsd(1.2e9, 3, message.Now(), []float32{1, 2, 3}, 48000, -95.5)
	orig.MeasuredSampRate = 47999
	orig.Looped = true
	orig.HistorySize = 10

	b, err := Serialize(orig)
	require.NoError(t, err)

	v, err := Deserialize(b)
	require.NoError(t, err)
	got, ok := v.(*message.Psd)
	require.True(t, ok)
	assert.Equal(t, orig.FC, got.FC)
	assert.Equal(t, orig.InspectorID, got.InspectorID)
	assert.Equal(t, orig.PsdData, got.PsdData)
	assert.Equal(t, orig.SampRate, got.SampRate)
	assert.Equal(t, orig.N0, got.N0)
	assert.Equal(t, orig.Looped, got.Looped)
	assert.Equal(t, orig.HistorySize, got.HistorySize)
}

func TestPsdPartialDecode(t *testing.T) {
	orig := message.NewPsd(5, 1, message.Now(), []float32{1, 2, 3, 4}, 1000, -80)
	b, err := Serialize(orig)
	require.NoError(t, err)

	partial, err := DeserializePSDPartial(b)
	require.NoError(t, err)
	assert.Equal(t, orig.FC, partial.FC)
	assert.Nil(t, partial.PsdData)
}

func TestSamplesRoundTrip(t *testing.T) {
	orig := message.NewSamples(9, []complex64{1 + 1i, 2 - 2i}, nil)
	b, err := Serialize(orig)
	require.NoError(t, err)

	v, err := Deserialize(b)
	require.NoError(t, err)
	got, ok := v.(*message.Samples)
	require.True(t, ok)
	assert.Equal(t, orig.InspectorID, got.InspectorID)
	assert.Equal(t, orig.Data, got.Data)
}

func TestSourceInfoRoundTrip(t *testing.T) {
	orig := message.NewSourceInfo("soapysdr", []string{"RX"}, []string{"LNA", "VGA"}, 1e6, 6e6)
	orig.CurrentAntenna = "RX"

	b, err := Serialize(orig)
	require.NoError(t, err)
	v, err := Deserialize(b)
	require.NoError(t, err)
	got, ok := v.(*message.SourceInfo)
	require.True(t, ok)
	assert.Equal(t, orig.Driver, got.Driver)
	assert.Equal(t, orig.Antennas, got.Antennas)
	assert.Equal(t, orig.GainStages, got.GainStages)
	assert.Equal(t, orig.CurrentAntenna, got.CurrentAntenna)
}

func TestStatusVariantsRoundTrip(t *testing.T) {
	cases := []*message.Status{
		message.NewStatus(message.TypeEos, 0, "end of stream"),
		message.NewStatus(message.TypeReadError, -1, "read failed"),
		message.NewInternal(-2, "oops"),
	}
	for _, orig := range cases {
		b, err := Serialize(orig)
		require.NoError(t, err)
		v, err := Deserialize(b)
		require.NoError(t, err)
		got, ok := v.(*message.Status)
		require.True(t, ok)
		assert.Equal(t, orig.Typ, got.Typ)
		assert.Equal(t, orig.Code, got.Code)
		assert.Equal(t, orig.Message, got.Message)
	}
}

func TestInspectorOpenRoundTrip(t *testing.T) {
	insp := message.NewInspector(message.InspectorOpen, 1, 2)
	insp.Open = &message.OpenTail{
		ClassName:     "psk",
		Channel:       message.ChannelInfo{FC: 1000},
		FS:            48000,
		EquivFS:       48000,
		Bandwidth:     3000,
		LO:            0,
		EstimatorList: []string{"snr"},
		SpectsrcList:  []string{"fft"},
	}

	b, err := Serialize(insp)
	require.NoError(t, err)
	v, err := Deserialize(b)
	require.NoError(t, err)
	got, ok := v.(*message.Inspector)
	require.True(t, ok)
	assert.Equal(t, message.InspectorOpen, got.Kind)
	require.NotNil(t, got.Open)
	assert.Equal(t, "psk", got.Open.ClassName)
	assert.Equal(t, insp.Open.EstimatorList, got.Open.EstimatorList)
}

func TestInspectorSpectrumRoundTrip(t *testing.T) {
	insp := message.NewInspector(message.InspectorSpectrum, 1, 0)
	insp.Spectrum = &message.SpectrumTail{
		SpectsrcID: 1,
		FC:         100,
		N0:         -90,
		SampRate:   48000,
		Data:       []float32{1, 2, 3},
	}

	b, err := Serialize(insp)
	require.NoError(t, err)
	v, err := Deserialize(b)
	require.NoError(t, err)
	got := v.(*message.Inspector)
	assert.Equal(t, insp.Spectrum.Data, got.Spectrum.Data)
}

func TestInspectorMissingTailErrors(t *testing.T) {
	insp := message.NewInspector(message.InspectorOpen, 1, 1)
	_, err := Serialize(insp)
	require.Error(t, err)
}

func TestTypeTagFidelity(t *testing.T) {
	values := []message.Value{
		message.NewStatus(message.TypeEos, 0, ""),
		message.NewPsd(1, 1, message.Now(), nil, 1, 0),
		message.NewSamples(1, nil, nil),
		message.NewSourceInfo("x", nil, nil, 0, 0),
		message.NewInspector(message.InspectorNoop, 0, 0),
	}
	for _, v := range values {
		b, err := Serialize(v)
		require.NoError(t, err)
		typ, _, err := DeserializePartial(b)
		require.NoError(t, err)
		assert.Equal(t, v.Type(), typ)
	}
}

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

package transport

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suscan/acdp/message"
)

func TestWriteValueReadValueRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	orig := message.NewStatus(message.TypeEos, 0, "done")
	require.NoError(t, w.WriteValue(orig))

	r := NewReader(&buf)
	v, err := r.ReadValue()
	require.NoError(t, err)
	got, ok := v.(*message.Status)
	require.True(t, ok)
	assert.Equal(t, orig.Message, got.Message)
}

func TestMultipleFramesPreserveOrder(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for i := 0; i < 3; i++ {
		require.NoError(t, w.WriteValue(message.NewStatus(message.TypeEos, int32(i), "")))
	}

	r := NewReader(&buf)
	for i := 0; i < 3; i++ {
		v, err := r.ReadValue()
		require.NoError(t, err)
		assert.Equal(t, int32(i), v.(*message.Status).Code)
	}
}

func TestReadFrameRejectsOversizedLength(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	head := []byte{0xff, 0xff, 0xff, 0xff}
	_, err := buf.Write(head)
	require.NoError(t, err)
	_ = w // writer unused beyond the forged header above

	r := NewReader(&buf)
	_, err = r.ReadFrame()
	assert.ErrorIs(t, err, ErrFrameTooLarge)
}

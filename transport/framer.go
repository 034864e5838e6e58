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

// Package transport frames ACDP messages on a byte stream: each message
// is written as a 4-byte big-endian length prefix followed by that many
// bytes of codec-encoded payload (spec §6 "the transport must frame").
//
// Grounded on _examples/facebook-time/ptp/protocol/protocol.go's
// Bytes/FromBytes/DecodePacket helpers, which wrap encoding/binary
// around a bytes.Buffer/Reader the same way.
package transport

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/suscan/acdp/codec"
	"github.com/suscan/acdp/message"
)

// MaxFrameSize bounds a single frame's payload, guarding a reader
// against a corrupt or hostile length prefix demanding an unreasonable
// allocation.
const MaxFrameSize = 64 << 20 // 64 MiB

// ErrFrameTooLarge is returned by Reader when a length prefix exceeds
// MaxFrameSize.
var ErrFrameTooLarge = fmt.Errorf("transport: frame exceeds %d bytes", MaxFrameSize)

// Writer frames and writes ACDP messages onto an underlying io.Writer.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer framing onto w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteValue serializes v and writes it as one length-prefixed frame.
func (w *Writer) WriteValue(v message.Value) error {
	payload, err := codec.Serialize(v)
	if err != nil {
		return fmt.Errorf("transport: encode: %w", err)
	}
	return w.WriteFrame(payload)
}

// WriteFrame writes payload as one length-prefixed frame verbatim,
// for callers that already hold encoded bytes (e.g. a relay that never
// decodes).
func (w *Writer) WriteFrame(payload []byte) error {
	var head [4]byte
	binary.BigEndian.PutUint32(head[:], uint32(len(payload)))
	if _, err := w.w.Write(head[:]); err != nil {
		return fmt.Errorf("transport: write length: %w", err)
	}
	if _, err := w.w.Write(payload); err != nil {
		return fmt.Errorf("transport: write payload: %w", err)
	}
	return nil
}

// Reader reads length-prefixed ACDP frames from an underlying
// io.Reader.
type Reader struct {
	r *bufio.Reader
}

// NewReader returns a Reader framing off r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// ReadFrame reads one length-prefixed frame and returns its raw payload,
// undecoded.
func (r *Reader) ReadFrame() ([]byte, error) {
	var head [4]byte
	if _, err := io.ReadFull(r.r, head[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(head[:])
	if n > MaxFrameSize {
		return nil, ErrFrameTooLarge
	}
	payload := make([]byte, n)
	if _, err := io.ReadFull(r.r, payload); err != nil {
		return nil, fmt.Errorf("transport: read payload: %w", err)
	}
	return payload, nil
}

// ReadValue reads one frame and decodes it into a message.Value.
func (r *Reader) ReadValue() (message.Value, error) {
	payload, err := r.ReadFrame()
	if err != nil {
		return nil, err
	}
	v, err := codec.Deserialize(payload)
	if err != nil {
		return nil, fmt.Errorf("transport: decode: %w", err)
	}
	return v, nil
}

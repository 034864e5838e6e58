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

// Package codec implements the ACDP wire codec: a CBOR-based packer over
// a growable buffer (spec §4.1) and the per-variant serialize/deserialize
// dispatch built on top of it (spec §4.2/§4.3).
package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/fxamacker/cbor/v2"
)

// Packer accumulates a sequence of CBOR data items into a growable
// buffer. Every message is a single self-delimiting CBOR sequence (spec
// §6); Packer's methods therefore just Encode one item after another.
//
// Packer reproduces the spec's "boilerplate" discipline — every
// serializer pushes a running success flag and goto-fails on first
// error — as a first-error latch: once any Pack* call fails, every
// subsequent call on the same Packer becomes a no-op, and Err reports
// the first failure. This gives "all-or-nothing per message" without
// literal gotos.
type Packer struct {
	buf *bytes.Buffer
	enc *cbor.Encoder
	err error
}

// NewPacker returns a Packer writing into a fresh internal buffer.
func NewPacker() *Packer {
	buf := &bytes.Buffer{}
	return &Packer{buf: buf, enc: cbor.NewEncoder(buf)}
}

// Err returns the first error encountered by any Pack* call, if any.
func (p *Packer) Err() error { return p.err }

// Bytes returns the accumulated wire bytes. It is only meaningful when
// Err() == nil.
func (p *Packer) Bytes() []byte { return p.buf.Bytes() }

func (p *Packer) encode(v interface{}) {
	if p.err != nil {
		return
	}
	if err := p.enc.Encode(v); err != nil {
		p.err = fmt.Errorf("codec: encode %T: %w", v, err)
	}
}

// PackUint writes an unsigned integer (any of the 8/16/32/64-bit kinds;
// CBOR picks the shortest encoding).
func (p *Packer) PackUint(v uint64) { p.encode(v) }

// PackInt writes a signed integer.
func (p *Packer) PackInt(v int64) { p.encode(v) }

// PackFloat32 writes a single-precision float.
func (p *Packer) PackFloat32(v float32) { p.encode(v) }

// PackFloat64 writes a double-precision float.
func (p *Packer) PackFloat64(v float64) { p.encode(v) }

// PackFreq writes a frequency value, the spec's alias for a signed
// 64-bit integer (spec §4.1 "freq").
func (p *Packer) PackFreq(v int64) { p.encode(v) }

// PackBool writes a boolean.
func (p *Packer) PackBool(v bool) { p.encode(v) }

// PackStr writes a length-prefixed UTF-8 string.
func (p *Packer) PackStr(v string) { p.encode(v) }

// PackStrList writes an array of strings.
func (p *Packer) PackStrList(v []string) { p.encode(v) }

// PackFloatArray writes a compact float array: a length-prefixed raw
// little-endian IEEE-754 single-precision payload, encoded as a CBOR
// byte string (spec §6 "Float arrays (compact)").
func (p *Packer) PackFloatArray(v []float32) {
	if p.err != nil {
		return
	}
	p.encode(floatsToBytes(v))
}

// PackComplexArray writes a compact complex array: length × 2 ×
// sizeof(float32) raw little-endian bytes, interleaved real/imag.
func (p *Packer) PackComplexArray(v []complex64) {
	if p.err != nil {
		return
	}
	p.encode(complexToBytes(v))
}

// PackRaw writes an already-encoded CBOR item (used to splice in a
// sub-message, e.g. a Config object, without double-wrapping it).
func (p *Packer) PackRaw(raw cbor.RawMessage) {
	if p.err != nil {
		return
	}
	if _, err := p.buf.Write(raw); err != nil {
		p.err = err
	}
}

// Unpacker reads a sequence of CBOR data items off a byte slice,
// tracking position internally. Every Unpack* call after the first error
// is a no-op and returns the zero value; Err reports the first failure.
type Unpacker struct {
	r   *bytes.Reader
	dec *cbor.Decoder
	err error
}

// NewUnpacker returns an Unpacker reading from b.
func NewUnpacker(b []byte) *Unpacker {
	r := bytes.NewReader(b)
	return &Unpacker{r: r, dec: cbor.NewDecoder(r)}
}

// Err returns the first error encountered by any Unpack* call, if any.
func (u *Unpacker) Err() error { return u.err }

// Remaining reports how many bytes are left unconsumed.
func (u *Unpacker) Remaining() int { return int(u.r.Size()) - u.dec.NumBytesRead() }

func (u *Unpacker) decode(v interface{}) {
	if u.err != nil {
		return
	}
	if err := u.dec.Decode(v); err != nil {
		u.err = fmt.Errorf("codec: decode %T: %w", v, err)
	}
}

// UnpackUint reads an unsigned integer.
func (u *Unpacker) UnpackUint() uint64 {
	var v uint64
	u.decode(&v)
	return v
}

// UnpackInt reads a signed integer.
func (u *Unpacker) UnpackInt() int64 {
	var v int64
	u.decode(&v)
	return v
}

// UnpackFloat32 reads a single-precision float.
func (u *Unpacker) UnpackFloat32() float32 {
	var v float32
	u.decode(&v)
	return v
}

// UnpackFloat64 reads a double-precision float.
func (u *Unpacker) UnpackFloat64() float64 {
	var v float64
	u.decode(&v)
	return v
}

// UnpackFreq reads a frequency value (spec's signed 64-bit alias).
func (u *Unpacker) UnpackFreq() int64 {
	return u.UnpackInt()
}

// UnpackBool reads a boolean.
func (u *Unpacker) UnpackBool() bool {
	var v bool
	u.decode(&v)
	return v
}

// UnpackStr reads a length-prefixed UTF-8 string.
func (u *Unpacker) UnpackStr() string {
	var v string
	u.decode(&v)
	return v
}

// UnpackStrList reads an array of strings.
func (u *Unpacker) UnpackStrList() []string {
	var v []string
	u.decode(&v)
	return v
}

// UnpackFloatArray reads a compact float array.
func (u *Unpacker) UnpackFloatArray() []float32 {
	if u.err != nil {
		return nil
	}
	var raw []byte
	u.decode(&raw)
	if u.err != nil {
		return nil
	}
	f, err := bytesToFloats(raw)
	if err != nil {
		u.err = err
		return nil
	}
	return f
}

// UnpackComplexArray reads a compact complex array.
func (u *Unpacker) UnpackComplexArray() []complex64 {
	if u.err != nil {
		return nil
	}
	var raw []byte
	u.decode(&raw)
	if u.err != nil {
		return nil
	}
	c, err := bytesToComplex(raw)
	if err != nil {
		u.err = err
		return nil
	}
	return c
}

// UnpackRaw reads the next CBOR item without decoding it, for splicing
// into a sub-decoder (e.g. a Config object whose schema may be unknown).
func (u *Unpacker) UnpackRaw() cbor.RawMessage {
	var raw cbor.RawMessage
	u.decode(&raw)
	return raw
}

func floatsToBytes(v []float32) []byte {
	out := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(f))
	}
	return out
}

func bytesToFloats(b []byte) ([]float32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("codec: float array payload length %d not a multiple of 4", len(b))
	}
	n := len(b) / 4
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out, nil
}

func complexToBytes(v []complex64) []byte {
	out := make([]byte, 8*len(v))
	for i, c := range v {
		binary.LittleEndian.PutUint32(out[i*8:], math.Float32bits(real(c)))
		binary.LittleEndian.PutUint32(out[i*8+4:], math.Float32bits(imag(c)))
	}
	return out
}

func bytesToComplex(b []byte) ([]complex64, error) {
	if len(b)%8 != 0 {
		return nil, fmt.Errorf("codec: complex array payload length %d not a multiple of 8", len(b))
	}
	n := len(b) / 8
	out := make([]complex64, n)
	for i := 0; i < n; i++ {
		re := math.Float32frombits(binary.LittleEndian.Uint32(b[i*8:]))
		im := math.Float32frombits(binary.LittleEndian.Uint32(b[i*8+4:]))
		out[i] = complex(re, im)
	}
	return out, nil
}

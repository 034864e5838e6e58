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
	"fmt"

	"github.com/suscan/acdp/config"
	"github.com/suscan/acdp/message"
)

// Serialize writes v's wire type tag followed by its variant tail into a
// fresh buffer (spec §6 "serialize(type, value, buffer) -> bool").
// Channel messages (type 2) are explicitly rejected: they are
// process-local only (spec §6 "Unsupported types on the wire").
func Serialize(v message.Value) ([]byte, error) {
	if v.Type() == message.TypeChannel {
		return nil, fmt.Errorf("codec: channel messages are not serializable on the wire")
	}

	p := NewPacker()
	p.PackUint(uint64(v.Type()))
	encodeTail(p, v)
	if err := p.Err(); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

// DeserializePartial peeks the type tag without consuming the tail,
// reporting how many bytes were advanced (spec §6
// "deserialize_partial(buffer) -> (type, position_advanced)").
func DeserializePartial(b []byte) (message.Type, int, error) {
	u := NewUnpacker(b)
	typ := message.Type(u.UnpackUint())
	if err := u.Err(); err != nil {
		return 0, 0, err
	}
	return typ, len(b) - u.Remaining(), nil
}

// Deserialize reads a full message from b: the type tag followed by its
// variant tail. Any failure aborts the whole message; no partially built
// value is ever returned (spec §6, §7).
func Deserialize(b []byte) (message.Value, error) {
	u := NewUnpacker(b)
	typ := message.Type(u.UnpackUint())
	if err := u.Err(); err != nil {
		return nil, fmt.Errorf("codec: read type tag: %w", err)
	}

	if typ == message.TypeChannel {
		return nil, fmt.Errorf("codec: channel messages are not deserializable on the wire")
	}

	v, err := decodeTail(typ, u)
	if err != nil {
		return nil, err
	}
	if err := u.Err(); err != nil {
		return nil, err
	}
	return v, nil
}

// DeserializePSDPartial decodes only the fixed PSD header (through N0),
// stopping before the compact float array, so a consumer can route on
// header fields before allocating (spec §4.2 "A partial decode variant").
func DeserializePSDPartial(b []byte) (*message.Psd, error) {
	u := NewUnpacker(b)
	typ := message.Type(u.UnpackUint())
	if typ != message.TypePsd {
		return nil, fmt.Errorf("codec: partial PSD decode requested for type %s", typ)
	}
	psd := decodePsdHeader(u)
	if err := u.Err(); err != nil {
		return nil, err
	}
	return psd, nil
}

func encodeTail(p *Packer, v message.Value) {
	switch m := v.(type) {
	case *message.Status:
		encodeStatus(p, m)
	case *message.Psd:
		encodePsd(p, m)
	case *message.Samples:
		encodeSamples(p, m)
	case *message.Throttle:
		p.PackUint(m.SampRate)
	case *message.HistorySize:
		p.PackUint(m.BufferLength)
	case *message.Replay:
		p.PackBool(m.Enabled)
	case *message.Seek:
		p.PackUint(m.Position.Sec)
		p.PackUint(uint64(m.Position.Usec))
	case *message.SourceInfo:
		encodeSourceInfo(p, m)
	case *message.Inspector:
		encodeInspector(p, m)
	default:
		p.err = fmt.Errorf("codec: unsupported message type %T", v)
	}
}

func decodeTail(typ message.Type, u *Unpacker) (message.Value, error) {
	switch typ {
	case message.TypeSourceInit, message.TypeEos, message.TypeReadError,
		message.TypeInternal, message.TypeSamplesLost:
		return decodeStatus(typ, u)
	case message.TypePsd:
		return decodePsd(u)
	case message.TypeSamples:
		return decodeSamples(u)
	case message.TypeThrottle:
		return &message.Throttle{SampRate: u.UnpackUint()}, u.Err()
	case message.TypeHistorySize:
		return &message.HistorySize{BufferLength: u.UnpackUint()}, u.Err()
	case message.TypeReplay:
		return &message.Replay{Enabled: u.UnpackBool()}, u.Err()
	case message.TypeSeek:
		sec := u.UnpackUint()
		usec := u.UnpackUint()
		return &message.Seek{Position: message.Stamp{Sec: sec, Usec: uint32(usec)}}, u.Err()
	case message.TypeSourceInfo:
		return decodeSourceInfo(u)
	case message.TypeInspector:
		return decodeInspector(u)
	default:
		return nil, fmt.Errorf("codec: unknown message type %#x", uint32(typ))
	}
}

func encodeStatus(p *Packer, s *message.Status) {
	p.PackInt(int64(s.Code))
	p.PackStr(s.Message)
}

func decodeStatus(typ message.Type, u *Unpacker) (*message.Status, error) {
	code := u.UnpackInt()
	msg := u.UnpackStr()
	if err := u.Err(); err != nil {
		return nil, err
	}
	return &message.Status{Typ: typ, Code: int32(code), Message: msg}, nil
}

// configRefEncode/Decode bridge message.ConfigRef (an opaque interface{}
// holder, to avoid message importing config) to the concrete
// *config.Config type.
func configRefEncode(p *Packer, ref *message.ConfigRef) {
	if ref == nil || ref.Value == nil {
		p.PackRaw([]byte{0xa0}) // empty CBOR map, an empty/absent config
		return
	}
	cfg, ok := ref.Value.(*config.Config)
	if !ok {
		p.err = fmt.Errorf("codec: config ref holds %T, not *config.Config", ref.Value)
		return
	}
	raw, err := cfg.Encode()
	if err != nil {
		p.err = err
		return
	}
	p.PackRaw(raw)
}

func configRefDecode(u *Unpacker) *message.ConfigRef {
	raw := u.UnpackRaw()
	if u.Err() != nil {
		return nil
	}
	cfg, err := config.Decode(raw, config.Global())
	if err != nil {
		u.err = err
		return nil
	}
	return &message.ConfigRef{Value: cfg}
}

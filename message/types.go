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

// Package message defines the typed message algebra exchanged between an
// analyzer worker and its client: the value types carried on ACDP, their
// ownership rules, and the wire type tags that select among them.
package message

import "time"

// Type is the wire type tag that selects a message's payload shape. It is
// encoded as the first element of every serialized envelope.
type Type uint32

// Recognized wire type tags. Values are stable across the wire and must
// not be renumbered.
const (
	TypeSourceInfo  Type = 0x0
	TypeSourceInit  Type = 0x1
	TypeChannel     Type = 0x2
	TypeEos         Type = 0x3
	TypeReadError   Type = 0x4
	TypeInternal    Type = 0x5
	TypeSamplesLost Type = 0x6
	TypeInspector   Type = 0x7
	TypePsd         Type = 0x8
	TypeSamples     Type = 0x9
	TypeThrottle    Type = 0xa
	TypeParams      Type = 0xb
	TypeGetParams   Type = 0xc
	TypeSeek        Type = 0xd
	TypeHistorySize Type = 0xe
	TypeReplay      Type = 0xf

	// TypeInvalid is a reserved sentinel. No one should ever send it.
	TypeInvalid Type = 0x8000000
)

func (t Type) String() string {
	switch t {
	case TypeSourceInfo:
		return "SourceInfo"
	case TypeSourceInit:
		return "SourceInit"
	case TypeChannel:
		return "Channel"
	case TypeEos:
		return "Eos"
	case TypeReadError:
		return "ReadError"
	case TypeInternal:
		return "Internal"
	case TypeSamplesLost:
		return "SamplesLost"
	case TypeInspector:
		return "Inspector"
	case TypePsd:
		return "Psd"
	case TypeSamples:
		return "Samples"
	case TypeThrottle:
		return "Throttle"
	case TypeParams:
		return "Params"
	case TypeGetParams:
		return "GetParams"
	case TypeSeek:
		return "Seek"
	case TypeHistorySize:
		return "HistorySize"
	case TypeReplay:
		return "Replay"
	case TypeInvalid:
		return "Invalid"
	default:
		return "Unknown"
	}
}

// Value is implemented by every message payload. It carries no sender or
// source back-pointer: those fields exist only in-process and are never
// encoded (spec §3.3).
type Value interface {
	// Type returns the wire tag this value serializes under.
	Type() Type
}

// Realtime is implemented by the two variants that participate in expiry:
// Psd and the Inspector SPECTRUM tail (spec §3.3, §4.4).
type Realtime interface {
	Value
	RTTime() Stamp
}

// Stamp is a (seconds, microseconds) wall-clock pair, the wire shape used
// for both the source-side timestamp and the real-time stamp (spec §3.2,
// §6 "Time values").
type Stamp struct {
	Sec  uint64
	Usec uint32
}

// Now returns the current wall-clock time as a Stamp.
func Now() Stamp {
	return FromTime(time.Now())
}

// FromTime converts a time.Time into a Stamp.
func FromTime(t time.Time) Stamp {
	return Stamp{Sec: uint64(t.Unix()), Usec: uint32(t.Nanosecond() / 1000)}
}

// Time converts a Stamp back into a time.Time (UTC).
func (s Stamp) Time() time.Time {
	return time.Unix(int64(s.Sec), int64(s.Usec)*1000).UTC()
}

// Sub returns s - o as a time.Duration.
func (s Stamp) Sub(o Stamp) time.Duration {
	return s.Time().Sub(o.Time())
}

// Dispose releases any owned buffers reachable from v. It is idempotent:
// calling it twice, or calling it after a "take" operation has already
// cleared the owned fields, is a no-op. For unrecognized values it does
// nothing (spec §6 "Disposer contract").
func Dispose(v Value) {
	if v == nil {
		return
	}
	if d, ok := v.(disposer); ok {
		d.dispose()
	}
}

// disposer is implemented by variants that own heap buffers.
type disposer interface {
	dispose()
}

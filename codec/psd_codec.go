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

import "github.com/suscan/acdp/message"

// encodePsd writes the PSD wire shape from spec §4.2: fc, inspector_id,
// timestamp, rt_time, looped, history_size, samp_rate,
// measured_samp_rate, N0, then the compact float array.
func encodePsd(p *Packer, m *message.Psd) {
	p.PackFreq(m.FC)
	p.PackUint(uint64(m.InspectorID))
	p.PackUint(m.Timestamp.Sec)
	p.PackUint(uint64(m.Timestamp.Usec))
	p.PackUint(m.RTTimeValue.Sec)
	p.PackUint(uint64(m.RTTimeValue.Usec))
	p.PackBool(m.Looped)
	p.PackUint(m.HistorySize)
	p.PackFloat32(m.SampRate)
	p.PackFloat32(m.MeasuredSampRate)
	p.PackFloat32(m.N0)
	p.PackFloatArray(m.PsdData)
}

// decodePsdHeader reads every PSD field up to and including N0, leaving
// the compact array unread. It is shared by the full and partial
// decoders (spec §4.2 "A partial decode variant").
func decodePsdHeader(u *Unpacker) *message.Psd {
	psd := &message.Psd{}
	psd.FC = u.UnpackFreq()
	psd.InspectorID = uint32(u.UnpackUint())
	sec := u.UnpackUint()
	usec := u.UnpackUint()
	psd.Timestamp = message.Stamp{Sec: sec, Usec: uint32(usec)}
	rtSec := u.UnpackUint()
	rtUsec := u.UnpackUint()
	psd.RTTimeValue = message.Stamp{Sec: rtSec, Usec: uint32(rtUsec)}
	psd.Looped = u.UnpackBool()
	psd.HistorySize = u.UnpackUint()
	psd.SampRate = u.UnpackFloat32()
	psd.MeasuredSampRate = u.UnpackFloat32()
	psd.N0 = u.UnpackFloat32()
	return psd
}

func decodePsd(u *Unpacker) (*message.Psd, error) {
	psd := decodePsdHeader(u)
	psd.PsdData = u.UnpackFloatArray()
	if err := u.Err(); err != nil {
		return nil, err
	}
	return psd, nil
}

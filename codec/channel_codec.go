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

// Channel-type messages (wire tag 2) are rejected outright by Serialize
// and Deserialize in dispatch.go: they are process-local only (spec §6,
// §9 "Channel-on-wire unsupported"). A single ChannelInfo element,
// however, is part of the Inspector OPEN tail's wire shape (spec §4.2
// "Channel (per element)") and is encoded/decoded here for that purpose
// only.

func encodeChannelInfo(p *Packer, c message.ChannelInfo) {
	p.PackFreq(c.FC)
	p.PackFreq(c.FLo)
	p.PackFreq(c.FHi)
	p.PackFloat32(c.Bandwidth)
	p.PackFloat32(c.SNR)
	p.PackFloat32(c.S0)
	p.PackFloat32(c.N0)
	p.PackFreq(c.FT)
	p.PackUint(uint64(c.Age))
	p.PackUint(uint64(c.PresentCnt))
}

func decodeChannelInfo(u *Unpacker) message.ChannelInfo {
	var c message.ChannelInfo
	c.FC = u.UnpackFreq()
	c.FLo = u.UnpackFreq()
	c.FHi = u.UnpackFreq()
	c.Bandwidth = u.UnpackFloat32()
	c.SNR = u.UnpackFloat32()
	c.S0 = u.UnpackFloat32()
	c.N0 = u.UnpackFloat32()
	c.FT = u.UnpackFreq()
	c.Age = uint32(u.UnpackUint())
	c.PresentCnt = uint32(u.UnpackUint())
	return c
}

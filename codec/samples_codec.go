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

func encodeSamples(p *Packer, m *message.Samples) {
	p.PackUint(uint64(m.InspectorID))
	p.PackComplexArray(m.Data)
}

func decodeSamples(u *Unpacker) (*message.Samples, error) {
	id := uint32(u.UnpackUint())
	data := u.UnpackComplexArray()
	if err := u.Err(); err != nil {
		return nil, err
	}
	return message.NewSamples(id, data, nil), nil
}

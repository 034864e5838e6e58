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

func encodeSourceInfo(p *Packer, m *message.SourceInfo) {
	p.PackStr(m.Driver)
	p.PackStrList(m.Antennas)
	p.PackStrList(m.GainStages)
	p.PackFloat64(m.SampRateMin)
	p.PackFloat64(m.SampRateMax)
	p.PackStr(m.CurrentAntenna)
}

func decodeSourceInfo(u *Unpacker) (*message.SourceInfo, error) {
	driver := u.UnpackStr()
	antennas := u.UnpackStrList()
	gains := u.UnpackStrList()
	min := u.UnpackFloat64()
	max := u.UnpackFloat64()
	current := u.UnpackStr()
	if err := u.Err(); err != nil {
		return nil, err
	}
	info := message.NewSourceInfo(driver, antennas, gains, min, max)
	info.CurrentAntenna = current
	return info, nil
}

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

	"github.com/suscan/acdp/message"
)

// encodeInspector writes the Inspector envelope and kind-specific tail
// (spec §4.3). Dispatch is an explicit switch on Kind; adding a kind
// requires updating this, decodeInspector, and Inspector.dispose
// together (spec §4.3 "Dispatch rule").
func encodeInspector(p *Packer, m *message.Inspector) {
	p.PackInt(int64(m.Kind))
	p.PackInt(int64(m.InspectorID))
	p.PackInt(int64(m.ReqID))
	p.PackInt(int64(m.Handle))
	p.PackInt(int64(m.Status))
	p.PackUint(m.RTTimeValue.Sec)
	p.PackUint(uint64(m.RTTimeValue.Usec))

	switch m.Kind {
	case message.InspectorNoop, message.InspectorSetID, message.InspectorGetConfig,
		message.InspectorResetEqualizer, message.InspectorClose, message.InspectorWrongHandle,
		message.InspectorWrongObject, message.InspectorInvalidArgument, message.InspectorWrongKind,
		message.InspectorInvalidChannel, message.InspectorInvalidCorrection:
		// empty tail

	case message.InspectorOpen:
		o := m.Open
		if o == nil {
			p.err = fmt.Errorf("codec: OPEN message missing tail")
			return
		}
		p.PackStr(o.ClassName)
		encodeChannelInfo(p, o.Channel)
		configRefEncode(p, o.Config)
		p.PackUint(uint64(o.Handle))
		p.PackBool(o.Precise)
		p.PackUint(uint64(o.FS))
		p.PackFloat32(o.EquivFS)
		p.PackFloat32(o.Bandwidth)
		p.PackFloat32(o.LO)
		p.PackStrList(o.EstimatorList)
		p.PackStrList(o.SpectsrcList)

	case message.InspectorSetConfig:
		sc := m.SetConfig
		if sc == nil {
			p.err = fmt.Errorf("codec: SET_CONFIG message missing tail")
			return
		}
		configRefEncode(p, sc.Config)

	case message.InspectorEstimator:
		e := m.Estimator
		if e == nil {
			p.err = fmt.Errorf("codec: ESTIMATOR message missing tail")
			return
		}
		p.PackUint(uint64(e.ID))
		p.PackBool(e.Enabled)
		p.PackFloat32(e.Value)

	case message.InspectorSpectrum:
		s := m.Spectrum
		if s == nil {
			p.err = fmt.Errorf("codec: SPECTRUM message missing tail")
			return
		}
		p.PackUint(uint64(s.SpectsrcID))
		p.PackFreq(s.FC)
		p.PackFloat32(s.N0)
		p.PackUint(s.SampRate)
		p.PackFloatArray(s.Data)

	case message.InspectorSetFreq:
		f := m.SetFreq
		if f == nil {
			p.err = fmt.Errorf("codec: SET_FREQ message missing tail")
			return
		}
		p.PackFreq(f.FC)
		p.PackFreq(f.FT)

	case message.InspectorSetBandwidth:
		b := m.SetBandwidth
		if b == nil {
			p.err = fmt.Errorf("codec: SET_BANDWIDTH message missing tail")
			return
		}
		p.PackFloat32(b.Bandwidth)

	case message.InspectorSetWatermark:
		w := m.SetWatermark
		if w == nil {
			p.err = fmt.Errorf("codec: SET_WATERMARK message missing tail")
			return
		}
		p.PackUint(uint64(w.Watermark))

	case message.InspectorSetTLE:
		t := m.SetTLE
		if t == nil {
			p.err = fmt.Errorf("codec: SET_TLE message missing tail")
			return
		}
		p.PackBool(t.Enable)
		if t.Enable {
			encodeOrbit(p, t.Orbit)
		}

	case message.InspectorOrbitReport:
		r := m.OrbitReport
		if r == nil {
			p.err = fmt.Errorf("codec: ORBIT_REPORT message missing tail")
			return
		}
		p.PackUint(r.RXTime.Sec)
		p.PackUint(uint64(r.RXTime.Usec))
		p.PackFloat64(r.Azimuth)
		p.PackFloat64(r.Elevation)
		p.PackFloat64(r.Distance)
		p.PackFloat32(r.FreqCorr)
		p.PackFloat64(r.VLOSVel)

	case message.InspectorSignal:
		// spec §9: the original source has a fall-through bug that
		// drops this tail; this codec always emits it.
		s := m.Signal
		if s == nil {
			p.err = fmt.Errorf("codec: SIGNAL message missing tail")
			return
		}
		p.PackStr(s.Name)
		p.PackFloat64(s.Value)

	default:
		p.err = fmt.Errorf("codec: unknown inspector kind %d", int32(m.Kind))
	}
}

func decodeInspector(u *Unpacker) (*message.Inspector, error) {
	kind := message.InspectorKind(u.UnpackInt())
	inspectorID := int32(u.UnpackInt())
	reqID := int32(u.UnpackInt())
	handle := int32(u.UnpackInt())
	status := int32(u.UnpackInt())
	rtSec := u.UnpackUint()
	rtUsec := u.UnpackUint()
	if err := u.Err(); err != nil {
		return nil, err
	}

	m := &message.Inspector{
		Kind:        kind,
		InspectorID: inspectorID,
		ReqID:       reqID,
		Handle:      handle,
		Status:      status,
		RTTimeValue: message.Stamp{Sec: rtSec, Usec: uint32(rtUsec)},
	}

	switch kind {
	case message.InspectorNoop, message.InspectorSetID, message.InspectorGetConfig,
		message.InspectorResetEqualizer, message.InspectorClose, message.InspectorWrongHandle,
		message.InspectorWrongObject, message.InspectorInvalidArgument, message.InspectorWrongKind,
		message.InspectorInvalidChannel, message.InspectorInvalidCorrection:
		// empty tail

	case message.InspectorOpen:
		o := &message.OpenTail{}
		o.ClassName = u.UnpackStr()
		o.Channel = decodeChannelInfo(u)
		o.Config = configRefDecode(u)
		o.Handle = uint32(u.UnpackUint())
		o.Precise = u.UnpackBool()
		o.FS = uint32(u.UnpackUint())
		o.EquivFS = u.UnpackFloat32()
		o.Bandwidth = u.UnpackFloat32()
		o.LO = u.UnpackFloat32()
		o.EstimatorList = u.UnpackStrList()
		o.SpectsrcList = u.UnpackStrList()
		m.Open = o

	case message.InspectorSetConfig:
		m.SetConfig = &message.SetConfigTail{Config: configRefDecode(u)}

	case message.InspectorEstimator:
		m.Estimator = &message.EstimatorTail{
			ID:      uint32(u.UnpackUint()),
			Enabled: u.UnpackBool(),
			Value:   u.UnpackFloat32(),
		}

	case message.InspectorSpectrum:
		m.Spectrum = &message.SpectrumTail{
			SpectsrcID: uint32(u.UnpackUint()),
			FC:         u.UnpackFreq(),
			N0:         u.UnpackFloat32(),
			SampRate:   u.UnpackUint(),
			Data:       u.UnpackFloatArray(),
		}

	case message.InspectorSetFreq:
		m.SetFreq = &message.SetFreqTail{FC: u.UnpackFreq(), FT: u.UnpackFreq()}

	case message.InspectorSetBandwidth:
		m.SetBandwidth = &message.SetBandwidthTail{Bandwidth: u.UnpackFloat32()}

	case message.InspectorSetWatermark:
		m.SetWatermark = &message.SetWatermarkTail{Watermark: uint32(u.UnpackUint())}

	case message.InspectorSetTLE:
		t := &message.SetTLETail{Enable: u.UnpackBool()}
		if t.Enable {
			t.Orbit = decodeOrbit(u)
		}
		m.SetTLE = t

	case message.InspectorOrbitReport:
		sec := u.UnpackUint()
		usec := u.UnpackUint()
		m.OrbitReport = &message.OrbitReportTail{
			RXTime:    message.Stamp{Sec: sec, Usec: uint32(usec)},
			Azimuth:   u.UnpackFloat64(),
			Elevation: u.UnpackFloat64(),
			Distance:  u.UnpackFloat64(),
			FreqCorr:  u.UnpackFloat32(),
			VLOSVel:   u.UnpackFloat64(),
		}

	case message.InspectorSignal:
		m.Signal = &message.SignalTail{Name: u.UnpackStr(), Value: u.UnpackFloat64()}

	default:
		return nil, fmt.Errorf("codec: unknown inspector kind %d", int32(kind))
	}

	if err := u.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

func encodeOrbit(p *Packer, o message.OrbitElements) {
	p.PackStr(o.Name)
	p.PackInt(int64(o.EpYear))
	p.PackFloat64(o.EpDay)
	p.PackFloat64(o.Rev)
	p.PackFloat64(o.DRevDt)
	p.PackFloat64(o.D2RevDt2)
	p.PackFloat64(o.BStar)
	p.PackFloat64(o.EqInc)
	p.PackFloat64(o.Ecc)
	p.PackFloat64(o.MnAn)
	p.PackFloat64(o.ArgP)
	p.PackFloat64(o.Ascn)
	p.PackFloat64(o.SmjAxs)
	p.PackUint(uint64(o.Norb))
	p.PackUint(uint64(o.Satno))
}

func decodeOrbit(u *Unpacker) message.OrbitElements {
	var o message.OrbitElements
	o.Name = u.UnpackStr()
	o.EpYear = int32(u.UnpackInt())
	o.EpDay = u.UnpackFloat64()
	o.Rev = u.UnpackFloat64()
	o.DRevDt = u.UnpackFloat64()
	o.D2RevDt2 = u.UnpackFloat64()
	o.BStar = u.UnpackFloat64()
	o.EqInc = u.UnpackFloat64()
	o.Ecc = u.UnpackFloat64()
	o.MnAn = u.UnpackFloat64()
	o.ArgP = u.UnpackFloat64()
	o.Ascn = u.UnpackFloat64()
	o.SmjAxs = u.UnpackFloat64()
	o.Norb = uint32(u.UnpackUint())
	o.Satno = uint32(u.UnpackUint())
	return o
}

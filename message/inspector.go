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

package message

// InspectorKind selects the active arm of an Inspector message. At most
// one of the pointer fields on Inspector is in use, chosen by Kind (none
// for the kinds with an empty tail); the codec's encode/decode switches
// key off this field, while the disposer clears every tail field
// regardless of Kind (spec §3.3, §4.3).
//
// Grounded on original_source/analyzer/msg.h's
// enum suscan_analyzer_inspector_msgkind, in original field order.
type InspectorKind int32

const (
	InspectorNoop InspectorKind = iota
	InspectorOpen
	InspectorSetID
	InspectorGetConfig
	InspectorSetConfig
	InspectorEstimator
	InspectorSpectrum
	InspectorResetEqualizer
	InspectorClose
	InspectorSetFreq
	InspectorSetBandwidth
	InspectorSetWatermark
	InspectorWrongHandle
	InspectorWrongObject
	InspectorInvalidArgument
	InspectorWrongKind
	InspectorInvalidChannel
	InspectorSetTLE
	InspectorOrbitReport
	InspectorInvalidCorrection
	InspectorSignal
)

func (k InspectorKind) String() string {
	switch k {
	case InspectorNoop:
		return "NOOP"
	case InspectorOpen:
		return "OPEN"
	case InspectorSetID:
		return "SET_ID"
	case InspectorGetConfig:
		return "GET_CONFIG"
	case InspectorSetConfig:
		return "SET_CONFIG"
	case InspectorEstimator:
		return "ESTIMATOR"
	case InspectorSpectrum:
		return "SPECTRUM"
	case InspectorResetEqualizer:
		return "RESET_EQUALIZER"
	case InspectorClose:
		return "CLOSE"
	case InspectorSetFreq:
		return "SET_FREQ"
	case InspectorSetBandwidth:
		return "SET_BANDWIDTH"
	case InspectorSetWatermark:
		return "SET_WATERMARK"
	case InspectorWrongHandle:
		return "WRONG_HANDLE"
	case InspectorWrongObject:
		return "WRONG_OBJECT"
	case InspectorInvalidArgument:
		return "INVALID_ARGUMENT"
	case InspectorWrongKind:
		return "WRONG_KIND"
	case InspectorInvalidChannel:
		return "INVALID_CHANNEL"
	case InspectorSetTLE:
		return "SET_TLE"
	case InspectorOrbitReport:
		return "ORBIT_REPORT"
	case InspectorInvalidCorrection:
		return "INVALID_CORRECTION"
	case InspectorSignal:
		return "SIGNAL"
	default:
		return "UNKNOWN"
	}
}

// Inspector is the control/status message exchanged for a single
// per-channel demodulator instance. It is request-response; sample
// updates travel separately as Samples messages.
type Inspector struct {
	Kind        InspectorKind
	InspectorID int32
	ReqID       int32
	Handle      int32
	Status      int32
	RTTimeValue Stamp

	Open         *OpenTail
	SetConfig    *SetConfigTail
	Estimator    *EstimatorTail
	Spectrum     *SpectrumTail
	SetFreq      *SetFreqTail
	SetBandwidth *SetBandwidthTail
	SetWatermark *SetWatermarkTail
	SetTLE       *SetTLETail
	OrbitReport  *OrbitReportTail
	Signal       *SignalTail
}

// OpenTail is the tail of an InspectorOpen message: everything a client
// needs to start inspecting a newly opened channel.
type OpenTail struct {
	ClassName     string
	Channel       ChannelInfo
	Config        *ConfigRef
	Handle        uint32
	Precise       bool
	FS            uint32 // baseband rate
	EquivFS       float32
	Bandwidth     float32
	LO            float32
	EstimatorList []string
	SpectsrcList  []string
}

// ConfigRef is the minimal handle Inspector's OPEN/SET_CONFIG tails need
// on the embedded configuration object; the full Config type lives in
// package config, and codec/dispatch.go type-asserts this to that
// concrete type during (de)serialization. Keeping this indirection out
// of package message avoids an import cycle (config will, in turn, use
// nothing from message).
type ConfigRef struct {
	Value interface{}
}

// EstimatorTail reports or toggles a named scalar estimator's state.
type EstimatorTail struct {
	ID      uint32
	Enabled bool
	Value   float32
}

// SpectrumTail carries one frame from a named spectrum source attached
// to an inspector (e.g. a cyclostationary detector). It is the other
// variant, besides Psd, that participates in expiry.
type SpectrumTail struct {
	SpectsrcID uint32
	FC         int64
	N0         float32
	SampRate   uint64
	Data       []float32
}

// SetFreqTail retunes an inspector's channel and translated frequency.
type SetFreqTail struct {
	FC int64
	FT int64
}

// SetBandwidthTail changes an inspector's channel bandwidth.
type SetBandwidthTail struct {
	Bandwidth float32
}

// SetWatermarkTail changes an inspector's sample watermark.
type SetWatermarkTail struct {
	Watermark uint32
}

// OrbitElements is a two-line-element orbit description (spec GLOSSARY
// "TLE / Orbit"), in the field order spec §4.3 assigns them.
type OrbitElements struct {
	Name     string
	EpYear   int32
	EpDay    float64
	Rev      float64
	DRevDt   float64
	D2RevDt2 float64
	BStar    float64
	EqInc    float64
	Ecc      float64
	MnAn     float64
	ArgP     float64
	Ascn     float64
	SmjAxs   float64
	Norb     uint32
	Satno    uint32
}

// SetTLETail enables or disables Doppler correction via a TLE. When
// Enable is false, Orbit is not transmitted on the wire (spec §4.3).
type SetTLETail struct {
	Enable bool
	Orbit  OrbitElements
}

// OrbitReportTail is a periodic Doppler-correction report for a
// TLE-tracked inspector.
type OrbitReportTail struct {
	RXTime    Stamp
	Azimuth   float64
	Elevation float64
	Distance  float64
	FreqCorr  float32
	VLOSVel   float64
}

// SignalTail is a named scalar emitted by an inspector (e.g. a detected
// baud rate). spec §9 flags the original's SIGNAL serializer as having a
// fall-through bug that skips this tail; this implementation always
// carries it.
type SignalTail struct {
	Name  string
	Value float64
}

// NewInspector builds a bare Inspector envelope with the given kind and
// request id; callers fill in the matching tail field before sending.
func NewInspector(kind InspectorKind, inspectorID, reqID int32) *Inspector {
	return &Inspector{
		Kind:        kind,
		InspectorID: inspectorID,
		ReqID:       reqID,
		RTTimeValue: Now(),
	}
}

// Type implements Value.
func (i *Inspector) Type() Type { return TypeInspector }

// RTTime implements Realtime.
func (i *Inspector) RTTime() Stamp { return i.RTTimeValue }

func (i *Inspector) dispose() {
	if i.Spectrum != nil {
		i.Spectrum.Data = nil
	}
	if i.Open != nil {
		i.Open.EstimatorList = nil
		i.Open.SpectsrcList = nil
		i.Open.Config = nil
	}
	i.SetConfig = nil
	i.Estimator = nil
	i.Spectrum = nil
	i.SetTLE = nil
	i.OrbitReport = nil
	i.Signal = nil
	i.SetFreq = nil
	i.SetBandwidth = nil
	i.SetWatermark = nil
	i.Open = nil
}

// SetConfigTail carries the embedded configuration object for SET_CONFIG
// messages. GET_CONFIG carries no tail on the wire.
type SetConfigTail struct {
	Config *ConfigRef
}

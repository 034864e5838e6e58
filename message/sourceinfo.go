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

// SourceInfo describes the capabilities of the currently open source:
// its driver name, the antenna ports and gain stages it exposes, and the
// sample rate range it supports. The original analyzer treats this as an
// opaque bundle; soapysdr.c's source implementation
// (SoapySDRDevice_listAntennas/listGains) shows the concrete field set
// this module exposes instead (SPEC_FULL.md §9).
type SourceInfo struct {
	Driver        string
	Antennas      []string
	GainStages    []string
	SampRateMin   float64
	SampRateMax   float64
	CurrentAntenna string
}

// NewSourceInfo builds a SourceInfo message owning the given slices.
func NewSourceInfo(driver string, antennas, gainStages []string, sampRateMin, sampRateMax float64) *SourceInfo {
	return &SourceInfo{
		Driver:      driver,
		Antennas:    antennas,
		GainStages:  gainStages,
		SampRateMin: sampRateMin,
		SampRateMax: sampRateMax,
	}
}

// Type implements Value.
func (s *SourceInfo) Type() Type { return TypeSourceInfo }

// Take transfers ownership of the owned slices to the caller.
func (s *SourceInfo) Take() (antennas, gainStages []string) {
	antennas, gainStages = s.Antennas, s.GainStages
	s.Antennas, s.GainStages = nil, nil
	return
}

func (s *SourceInfo) dispose() {
	s.Antennas = nil
	s.GainStages = nil
}

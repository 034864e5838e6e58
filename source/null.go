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

package source

import "context"

// NullSource is a Source that never produces data; it blocks until its
// context is cancelled. It exists for dry runs and as the default driver
// when acdpd is started without real SDR hardware attached (spec's
// Non-goal "real-time DSP" excludes shipping a concrete hardware
// driver here).
type NullSource struct {
	info Info
}

// NewNullSource returns a NullSource reporting info.
func NewNullSource(info Info) *NullSource {
	return &NullSource{info: info}
}

func (n *NullSource) NextChannel(ctx context.Context) ([]ChannelDetection, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (n *NullSource) NextSpectrum(ctx context.Context) (SpectrumFrame, error) {
	<-ctx.Done()
	return SpectrumFrame{}, ctx.Err()
}

func (n *NullSource) NextSamples(ctx context.Context) (SampleBatch, error) {
	<-ctx.Done()
	return SampleBatch{}, ctx.Err()
}

func (n *NullSource) Info() Info { return n.info }

func (n *NullSource) Close() error { return nil }

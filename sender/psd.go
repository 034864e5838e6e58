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

package sender

import (
	"sync"

	"github.com/eclesh/welford"

	"github.com/suscan/acdp/source"
)

// reducePsd turns one capture's raw spectral data into the real-valued
// power array a Psd message carries, branching on detector mode exactly
// as original_source/analyzer/msg.c's suscan_analyzer_psd_msg_new does:
// power mode squares each bin and normalizes by the window size, while
// autocorrelation mode takes the value as-is (it is already real).
func reducePsd(frame source.SpectrumFrame) []float32 {
	out := make([]float32, len(frame.Magnitude))
	switch frame.Mode {
	case source.ModeAutocorrelation:
		copy(out, frame.Magnitude)
	default:
		window := float32(frame.WindowSize)
		if window == 0 {
			window = 1
		}
		for i, m := range frame.Magnitude {
			out[i] = (m * m) / window
		}
	}
	return out
}

// noiseFloor smooths N0 across successive captures with a running mean
// (github.com/eclesh/welford, the same running-variance accumulator
// fbclock/daemon/math.go uses for its offset/delay statistics), so a
// single noisy capture doesn't make the reported floor jump.
type noiseFloor struct {
	mu    sync.Mutex
	stats *welford.Stats
}

func newNoiseFloor() *noiseFloor {
	return &noiseFloor{stats: welford.New()}
}

// Smooth folds n0 into the running mean and returns the smoothed value.
func (n *noiseFloor) Smooth(n0 float32) float32 {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stats.Add(float64(n0))
	return float32(n.stats.Mean())
}

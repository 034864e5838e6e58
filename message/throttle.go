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

// Throttle sets or resets (SampRate == 0) the analyzer's artificial
// sample-rate cap.
type Throttle struct {
	SampRate uint64
}

// NewThrottle builds a Throttle message. Pass 0 to reset.
func NewThrottle(sampRate uint64) *Throttle {
	return &Throttle{SampRate: sampRate}
}

// Type implements Value.
func (t *Throttle) Type() Type { return TypeThrottle }

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

import "sync"

// samplePool recycles []complex64 sample buffers across SendSamples
// calls. The original analyzer is careful not to reallocate per-batch
// buffers in the hot sample path (SPEC_FULL.md §9); sync.Pool is this
// runtime's equivalent, and message.Samples.Dispose returns buffers here
// instead of merely dropping them.
type samplePool struct {
	pool sync.Pool
}

func newSamplePool() *samplePool {
	return &samplePool{}
}

// get returns a buffer with length n, reusing a pooled one when its
// capacity is sufficient.
func (p *samplePool) get(n int) []complex64 {
	if v := p.pool.Get(); v != nil {
		buf := v.([]complex64)
		if cap(buf) >= n {
			return buf[:n]
		}
	}
	return make([]complex64, n)
}

// put returns buf to the pool for reuse.
func (p *samplePool) put(buf []complex64) {
	p.pool.Put(buf[:0])
}

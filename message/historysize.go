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

// HistorySize sets the analyzer's replay buffer length, in bytes.
type HistorySize struct {
	BufferLength uint64
}

// NewHistorySize builds a HistorySize message.
func NewHistorySize(bufferLength uint64) *HistorySize {
	return &HistorySize{BufferLength: bufferLength}
}

// Type implements Value.
func (h *HistorySize) Type() Type { return TypeHistorySize }

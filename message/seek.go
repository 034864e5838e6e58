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

// Seek requests an absolute position change in a replayable source.
type Seek struct {
	Position Stamp
}

// NewSeek builds a Seek message targeting the given absolute position.
func NewSeek(position Stamp) *Seek {
	return &Seek{Position: position}
}

// Type implements Value.
func (s *Seek) Type() Type { return TypeSeek }

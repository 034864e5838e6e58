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

// Status carries init progress/success/failure, read errors, EOS, and
// internal error notifications. It is reused across several wire types
// (Eos, ReadError, Internal, SourceInit) that all share this shape.
//
// Grounded on original_source/analyzer/msg.h's suscan_analyzer_status_msg.
type Status struct {
	// Typ selects which wire tag this Status encodes under.
	Typ Type

	Code    int32
	Message string
}

// Init progress/success/failure codes, carried in Code when Typ ==
// TypeSourceInit.
const (
	InitSuccess  int32 = 0
	InitProgress int32 = 1
	InitFailure  int32 = -1
)

// NewStatus builds a Status message of the given wire type.
func NewStatus(typ Type, code int32, msg string) *Status {
	return &Status{Typ: typ, Code: code, Message: msg}
}

// NewInternal builds an Internal-type status, the kind the sender façade
// uses to report a failure that occurred while building some other
// message (spec §4.5, §7).
func NewInternal(code int32, msg string) *Status {
	return NewStatus(TypeInternal, code, msg)
}

// Type implements Value.
func (s *Status) Type() Type { return s.Typ }

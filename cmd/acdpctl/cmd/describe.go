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

package cmd

import (
	"fmt"

	"github.com/suscan/acdp/message"
)

// summary renders a one-line human description of a message, grouping
// the variants printed the same way.
func summary(v message.Value) string {
	switch m := v.(type) {
	case *message.Psd:
		return fmt.Sprintf("PSD inspector=%d fc=%d bins=%d n0=%.3f", m.InspectorID, m.FC, len(m.PsdData), m.N0)
	case *message.Samples:
		return fmt.Sprintf("Samples inspector=%d n=%d", m.InspectorID, len(m.Data))
	case *message.SourceInfo:
		return fmt.Sprintf("SourceInfo driver=%s antennas=%d gains=%d", m.Driver, len(m.Antennas), len(m.GainStages))
	case *message.Status:
		return fmt.Sprintf("%s code=%d msg=%q", m.Typ, m.Code, m.Message)
	case *message.Inspector:
		return fmt.Sprintf("Inspector kind=%s id=%d req=%d", m.Kind, m.InspectorID, m.ReqID)
	case *message.Throttle:
		return fmt.Sprintf("Throttle samprate=%d", m.SampRate)
	case *message.HistorySize:
		return fmt.Sprintf("HistorySize length=%d", m.BufferLength)
	case *message.Replay:
		return fmt.Sprintf("Replay enabled=%t", m.Enabled)
	case *message.Seek:
		return fmt.Sprintf("Seek position=%s", m.Position.Time())
	default:
		return fmt.Sprintf("%s", v.Type())
	}
}

// fields flattens v into the variable set govaluate expressions can
// reference (cmd/filter.go).
func fields(v message.Value) map[string]interface{} {
	out := map[string]interface{}{
		"type": v.Type().String(),
	}
	switch m := v.(type) {
	case *message.Psd:
		out["inspector_id"] = float64(m.InspectorID)
		out["fc"] = float64(m.FC)
		out["n0"] = float64(m.N0)
		out["samp_rate"] = float64(m.SampRate)
		out["bins"] = float64(len(m.PsdData))
	case *message.Samples:
		out["inspector_id"] = float64(m.InspectorID)
		out["n"] = float64(len(m.Data))
	case *message.Status:
		out["code"] = float64(m.Code)
		out["message"] = m.Message
	case *message.Inspector:
		out["kind"] = m.Kind.String()
		out["inspector_id"] = float64(m.InspectorID)
		out["req_id"] = float64(m.ReqID)
	}
	return out
}

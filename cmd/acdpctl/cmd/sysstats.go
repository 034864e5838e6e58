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
	"os"

	"github.com/shirou/gopsutil/process"
)

// processStats is the handful of resource counters `stats` prints
// alongside the message-type tally, so a long `acdpctl stats -n N` run
// can be correlated with its own resource footprint.
//
// Grounded on sptp/client/sysstats.go's CollectRuntimeStats.
type processStats struct {
	CPUPercent float64
	RSS        uint64
}

func collectProcessStats() (processStats, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return processStats{}, err
	}
	var s processStats
	if pct, err := proc.Percent(0); err == nil {
		s.CPUPercent = pct
	}
	if mem, err := proc.MemoryInfo(); err == nil {
		s.RSS = mem.RSS
	}
	return s, nil
}

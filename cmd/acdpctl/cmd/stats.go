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
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/suscan/acdp/message"
)

var statsCount int

func init() {
	RootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVarP(&statsCount, "count", "n", 100, "number of messages to sample before reporting")
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Sample a running acdpd's stream and report per-type counts",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		r, conn, err := dial()
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		counts := map[message.Type]int{}
		for i := 0; i < statsCount; i++ {
			v, err := r.ReadValue()
			if err != nil {
				log.Fatalf("read: %v", err)
			}
			counts[v.Type()]++
			message.Dispose(v)
		}

		printCounts(counts)

		if ps, err := collectProcessStats(); err == nil {
			fmt.Printf("acdpctl.cpu_pct %.1f\nacdpctl.rss %d\n", ps.CPUPercent, ps.RSS)
		}
	},
}

func printCounts(counts map[message.Type]int) {
	types := make([]message.Type, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, t := range types {
		fmt.Printf("%-12s %d\n", t, counts[t])
	}
}

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
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/suscan/acdp/message"
)

var dumpCount int

func init() {
	RootCmd.AddCommand(dumpCmd)
	dumpCmd.Flags().IntVarP(&dumpCount, "count", "n", 10, "number of messages to dump, 0 for unlimited")
}

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Dump messages from a running acdpd as JSON lines",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		r, conn, err := dial()
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		for i := 0; dumpCount == 0 || i < dumpCount; i++ {
			v, err := r.ReadValue()
			if err != nil {
				log.Fatalf("read: %v", err)
			}
			line, err := json.Marshal(fields(v))
			if err != nil {
				log.Errorf("marshal: %v", err)
			} else {
				fmt.Println(string(line))
			}
			message.Dispose(v)
		}
	},
}

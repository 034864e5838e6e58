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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/suscan/acdp/message"
)

func init() {
	RootCmd.AddCommand(tailCmd)
}

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Stream and print every message from a running acdpd",
	Run: func(_ *cobra.Command, _ []string) {
		ConfigureVerbosity()

		r, conn, err := dial()
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		for {
			v, err := r.ReadValue()
			if err != nil {
				log.Fatalf("read: %v", err)
			}
			fmt.Println(summary(v))
			message.Dispose(v)
		}
	},
}

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

	"github.com/Knetic/govaluate"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/suscan/acdp/message"
)

// Grounded on fbclock/daemon/math.go's govaluate wiring (an expression
// compiled once, then evaluated against a per-message parameter map)
// and cmd/ptpcheck/cmd/diag.go's color.*String helpers for pass/fail
// output.

func init() {
	RootCmd.AddCommand(filterCmd)
}

var filterCmd = &cobra.Command{
	Use:   "filter <expression>",
	Short: "Stream messages from a running acdpd, printing only those matching a govaluate expression",
	Long: "The expression is evaluated per message against its fields (type, inspector_id, fc, n0, code, ...); " +
		"see `acdpctl dump` for the field names a given message type exposes.",
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		ConfigureVerbosity()

		expr, err := govaluate.NewEvaluableExpression(args[0])
		if err != nil {
			log.Fatalf("bad expression: %v", err)
		}

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
			matched, err := expr.Evaluate(fields(v))
			if err != nil {
				log.Debugf("evaluating expression against %s: %v", v.Type(), err)
				message.Dispose(v)
				continue
			}
			if ok, _ := matched.(bool); ok {
				fmt.Println(color.GreenString("[MATCH]"), summary(v))
			}
			message.Dispose(v)
		}
	},
}

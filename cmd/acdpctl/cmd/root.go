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

// Package cmd implements acdpctl's subcommands: connect to a running
// acdpd over its framed transport and print, filter, or tail the
// messages it emits.
//
// Grounded on _examples/facebook-time/cmd/ptpcheck/cmd/root.go's
// RootCmd/Execute/ConfigureVerbosity pattern.
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootCmd is acdpctl's entry point.
var RootCmd = &cobra.Command{
	Use:   "acdpctl",
	Short: "Inspect and filter a running analyzer's ACDP stream",
}

var rootVerboseFlag bool
var rootAddrFlag string

func init() {
	RootCmd.PersistentFlags().BoolVarP(&rootVerboseFlag, "verbose", "v", false, "verbose output")
	RootCmd.PersistentFlags().StringVarP(&rootAddrFlag, "addr", "a", "localhost:7340", "address of the acdpd transport listener")
}

// ConfigureVerbosity sets log verbosity from parsed flags. Every
// subcommand's Run must call this first.
func ConfigureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if rootVerboseFlag {
		log.SetLevel(log.DebugLevel)
	}
}

// Execute runs acdpctl.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

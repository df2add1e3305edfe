// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// NewRootCmd constructs the base command (i.e. when called without any
// subcommands), along with all of its subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bits",
		Short:         "A toolbox for manipulating bit strings.",
		Long:          "A toolbox for inspecting, shifting, rotating and comparing bit strings held in word arrays.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			if !GetFlag(cmd, "version") {
				_ = cmd.Help()
				return
			}
			//
			out := cmd.OutOrStdout()
			//
			fmt.Fprint(out, "bits ")
			if Version != "" {
				// Built via "make"
				fmt.Fprintf(out, "%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Fprintf(out, "%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Fprintf(out, "(unknown version)")
			}
			fmt.Fprintln(out)
		},
	}
	//
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("ansi-escapes", term.IsTerminal(int(os.Stdout.Fd())),
		"use ANSI escapes to highlight output")
	//
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newShiftCmd())
	rootCmd.AddCommand(newCycleCmd())
	rootCmd.AddCommand(newGrayCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newRandomCmd())
	//
	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

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
	"github.com/consensys/go-bits/pkg/bit"
	"github.com/spf13/cobra"
)

func newGrayCmd() *cobra.Command {
	grayCmd := &cobra.Command{
		Use:   "gray [flags] value",
		Short: "compute the binary reflected gray code of a value.",
		Args:  cobra.ExactArgs(1),
		RunE:  runGrayCmd,
	}
	//
	grayCmd.Flags().Bool("inverse", false, "invert a gray code instead")
	grayCmd.Flags().Uint("width", 0, "pad the result to (at least) this many bits")
	//
	return grayCmd
}

func runGrayCmd(cmd *cobra.Command, args []string) error {
	configureLogging(cmd)
	//
	v, err := parseValue(args[0], 0)
	if err != nil {
		return err
	}
	//
	if GetFlag(cmd, "inverse") {
		bit.InvGrayI(v)
	} else {
		bit.GrayI(v)
	}
	//
	printValue(cmd, v, GetUint(cmd, "width"))
	//
	return nil
}

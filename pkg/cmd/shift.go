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

	"github.com/consensys/go-bits/pkg/bit"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newShiftCmd() *cobra.Command {
	shiftCmd := &cobra.Command{
		Use:   "shift [flags] value offset",
		Short: "shift a value left (or right, for a negative offset).",
		Long: `Shift a value held in an array of a given capacity.  Bits shifted
	beyond the capacity are lost.`,
		Args: cobra.ExactArgs(2),
		RunE: runShiftCmd,
	}
	//
	shiftCmd.Flags().Uint("capacity", 64, "hold the value in an array of (at least) this many bits")
	shiftCmd.Flags().Uint("width", 0, "pad the result to (at least) this many bits")
	//
	return shiftCmd
}

func runShiftCmd(cmd *cobra.Command, args []string) error {
	configureLogging(cmd)
	//
	v, err := parseValue(args[0], GetUint(cmd, "capacity"))
	if err != nil {
		return err
	}
	//
	off, err := parseOffset(args[1])
	if err != nil {
		return err
	}
	//
	log.Debugf("shifting %d bits by %d", bit.Capacity(v), off)
	//
	printValue(cmd, bit.ShiftLeftI(v, off), GetUint(cmd, "width"))
	//
	return nil
}

func newCycleCmd() *cobra.Command {
	cycleCmd := &cobra.Command{
		Use:   "cycle [flags] value shift",
		Short: "rotate the low bits of a value left (or right, for a negative shift).",
		Args:  cobra.ExactArgs(2),
		RunE:  runCycleCmd,
	}
	//
	cycleCmd.Flags().Int("length", 64, "number of (low) bits to rotate")
	cycleCmd.Flags().Uint("width", 0, "pad the result to (at least) this many bits")
	//
	return cycleCmd
}

func runCycleCmd(cmd *cobra.Command, args []string) error {
	configureLogging(cmd)
	//
	length := GetInt(cmd, "length")
	//
	if length <= 0 {
		return fmt.Errorf("rotation length must be positive (was %d)", length)
	}
	//
	v, err := parseValue(args[0], 0)
	if err != nil {
		return err
	}
	//
	shift, err := parseOffset(args[1])
	if err != nil {
		return err
	}
	// Make room for the rotation
	if bit.Capacity(v) < length {
		v = bit.CopyTo(v, uint(length))
	}
	//
	log.Debugf("rotating low %d bits by %d", length, shift)
	//
	printValue(cmd, bit.CycleLeftI(v, shift, uint(length)), GetUint(cmd, "width"))
	//
	return nil
}

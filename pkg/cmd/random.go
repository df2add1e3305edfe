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
	"math/rand/v2"

	"github.com/consensys/go-bits/pkg/bit"
	"github.com/consensys/go-bits/pkg/util"
	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRandomCmd() *cobra.Command {
	randomCmd := &cobra.Command{
		Use:   "random [flags]",
		Short: "generate a random value with a given number of set bits.",
		Long: `Generate a random value of a given capacity, with exactly a given
	number of bits set.  The same seed always gives the same value.`,
		Args: cobra.NoArgs,
		RunE: runRandomCmd,
	}
	//
	randomCmd.Flags().Uint("cardinality", 1, "number of bits to set")
	randomCmd.Flags().Uint("capacity", 64, "number of bits available")
	randomCmd.Flags().Uint("seed", 0, "seed for the random source")
	randomCmd.Flags().Bool("indices", false, "print the positions of set bits instead")
	randomCmd.Flags().String("separator", " ", "separator between positions (with --indices)")
	//
	return randomCmd
}

func runRandomCmd(cmd *cobra.Command, args []string) error {
	configureLogging(cmd)
	//
	var (
		card     = GetUint(cmd, "cardinality")
		capacity = GetUint(cmd, "capacity")
		seed     = uint64(GetUint(cmd, "seed"))
	)
	//
	if card > capacity {
		return fmt.Errorf("cannot set %s out of %s bits", humanize.Comma(int64(card)), humanize.Comma(int64(capacity)))
	}
	//
	log.Debugf("setting %d random bits of %d (seed %d)", card, capacity, seed)
	//
	stats := util.NewPerfStats()
	v := bit.Random(card, capacity, rand.New(rand.NewPCG(seed, seed)))
	stats.Log("generating random bits")
	//
	if GetFlag(cmd, "indices") {
		fmt.Fprintln(cmd.OutOrStdout(), bit.ToIndexString(v, GetString(cmd, "separator"), 0))
	} else {
		printValue(cmd, v, capacity)
	}
	//
	return nil
}

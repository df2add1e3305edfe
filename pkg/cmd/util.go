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
	"math/big"
	"os"
	"strconv"

	"github.com/consensys/go-bits/pkg/bit"
	"github.com/consensys/go-bits/pkg/convert"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned flag, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected signed flag, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string flag, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Configure the log level according to the verbose flag.
func configureLogging(cmd *cobra.Command) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

// Parse a non-negative integer (in decimal, or with a 0x, 0b or 0o prefix) into a
// bit string with room for at least capacity bits.  A capacity of zero means
// just large enough to hold the value.
func parseValue(arg string, capacity uint) ([]uint64, error) {
	val, ok := new(big.Int).SetString(arg, 0)
	//
	if !ok {
		return nil, fmt.Errorf("invalid value \"%s\"", arg)
	} else if val.Sign() < 0 {
		return nil, fmt.Errorf("negative value \"%s\"", arg)
	} else if capacity != 0 && uint(val.BitLen()) > capacity {
		return nil, fmt.Errorf("value \"%s\" exceeds capacity of %d bits", arg, capacity)
	}
	//
	v := convert.FromBig(val)
	//
	if capacity != 0 {
		v = bit.CopyTo(v, capacity)
	}
	//
	log.Debugf("parsed %s as %d bits (capacity %d)", arg, val.BitLen(), bit.Capacity(v))
	//
	return v, nil
}

// Parse a signed integer argument, such as a shift offset.
func parseOffset(arg string) (int, error) {
	off, err := strconv.ParseInt(arg, 0, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid offset \"%s\"", arg)
	}
	//
	return int(off), nil
}

// Write the result of a command, padded to a given width.
func printValue(cmd *cobra.Command, v []uint64, width uint) {
	fmt.Fprintln(cmd.OutOrStdout(), bit.ToStringWidth(v, int(width)))
}

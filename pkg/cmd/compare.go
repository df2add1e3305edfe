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

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare a b",
		Short: "compare two values, printing -1, 0 or 1.",
		Args:  cobra.ExactArgs(2),
		RunE:  runCompareCmd,
	}
}

func runCompareCmd(cmd *cobra.Command, args []string) error {
	configureLogging(cmd)
	//
	a, err := parseValue(args[0], 0)
	if err != nil {
		return err
	}
	//
	b, err := parseValue(args[1], 0)
	if err != nil {
		return err
	}
	//
	log.Debugf("hamming distance %d", bit.HammingDistance(a, b))
	//
	fmt.Fprintln(cmd.OutOrStdout(), bit.Compare(a, b))
	//
	return nil
}

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
	"github.com/consensys/go-bits/pkg/util"
	"github.com/consensys/go-bits/pkg/util/termio"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show [flags] value...",
		Short: "tabulate the bits of one or more values.",
		Long: `Print a table summarising each given value, including its high and
	low endian renderings, the positions of its set bits and its cardinality.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runShowCmd,
	}
	//
	showCmd.Flags().Uint("width", 0, "pad renderings to (at least) this many bits")
	showCmd.Flags().Uint("capacity", 0, "hold values in arrays of (at least) this many bits")
	showCmd.Flags().Uint("max-width", 0, "truncate columns to at most this many characters")
	//
	return showCmd
}

func runShowCmd(cmd *cobra.Command, args []string) error {
	configureLogging(cmd)
	//
	var (
		width    = GetUint(cmd, "width")
		capacity = GetUint(cmd, "capacity")
		maxWidth = GetUint(cmd, "max-width")
		tp       = termio.NewTablePrinter(8)
		stats    = util.NewPerfStats()
	)
	//
	header := tp.AddRow("value", "msb", "lsb", "bits", "card", "capacity", "nlz", "ntz")
	tp.SetRowEscape(header, termio.BoldAnsiEscape())
	//
	for _, arg := range args {
		v, err := parseValue(arg, capacity)
		if err != nil {
			return err
		}
		//
		row := tp.AddRow(arg,
			bit.ToStringWidth(v, int(width)),
			bit.ToStringLowWidth(v, int(width)),
			fmt.Sprintf("{%s}", bit.ToIndexString(v, ",", 0)),
			humanize.Comma(int64(bit.Cardinality(v))),
			humanize.Comma(int64(bit.Capacity(v))),
			fmt.Sprintf("%d", bit.NumberOfLeadingZerosSigned(v)),
			fmt.Sprintf("%d", bit.NumberOfTrailingZerosSigned(v)))
		// Highlight empty values
		if bit.IsZero(v) {
			tp.SetEscape(0, row, termio.NewAnsiEscape().FgColour(termio.TERM_YELLOW))
		}
	}
	//
	stats.Log("tabulating values")
	//
	if maxWidth != 0 {
		tp.SetMaxWidths(maxWidth)
	}
	//
	tp.AnsiEscapes(GetFlag(cmd, "ansi-escapes"))
	//
	return tp.Print(cmd.OutOrStdout())
}

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

// Package termio provides simple formatting of tabular output for terminals,
// optionally highlighted using ANSI escapes.
package termio

import (
	"fmt"
	"io"
)

// TablePrinter is useful for printing tables to the terminal.  Rows are added
// incrementally, and every row has the same number of columns.
type TablePrinter struct {
	widths        []uint
	maxWidths     []uint
	rows          [][]string
	escapes       [][]string
	enableEscapes bool
}

// NewTablePrinter constructs a new (empty) table with a given number of
// columns.
func NewTablePrinter(width uint) *TablePrinter {
	return &TablePrinter{make([]uint, width), make([]uint, width), nil, nil, true}
}

// Width returns the number of columns in this table.
func (p *TablePrinter) Width() uint {
	return uint(len(p.widths))
}

// Height returns the number of rows in this table.
func (p *TablePrinter) Height() uint {
	return uint(len(p.rows))
}

// AddRow appends a row to this table, returning its index.
func (p *TablePrinter) AddRow(vals ...string) uint {
	if len(vals) != len(p.widths) {
		panic(fmt.Sprintf("incorrect number of columns (%d vs %d)", len(vals), len(p.widths)))
	}
	// Update column widths
	for i, val := range vals {
		p.widths[i] = max(p.widths[i], uint(len(val)))
	}
	//
	p.rows = append(p.rows, vals)
	p.escapes = append(p.escapes, make([]string, len(vals)))
	//
	return uint(len(p.rows) - 1)
}

// Set the contents of a given cell in this table
func (p *TablePrinter) Set(col uint, row uint, val string) {
	p.widths[col] = max(p.widths[col], uint(len(val)))
	p.rows[row][col] = val
}

// Get the contents of a given cell in this table
func (p *TablePrinter) Get(col uint, row uint) string {
	return p.rows[row][col]
}

// SetEscape set the escape to use when printing the contents of a given cell
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape.Build()
}

// SetRowEscape sets the escape to use for every cell of a given row
func (p *TablePrinter) SetRowEscape(row uint, escape AnsiEscape) {
	for col := range p.escapes[row] {
		p.escapes[row][col] = escape.Build()
	}
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// escapes as, otherwise, you get a lot of visible excape characters being
// printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetMaxWidths puts an upper bound on the width of every column.
func (p *TablePrinter) SetMaxWidths(width uint) {
	for i := range p.maxWidths {
		p.maxWidths[i] = width
	}
}

// SetMaxWidth puts an upper bound on the width of a given column.  A bound of
// zero means unbounded.  Bounds below three are raised to three, since
// truncated contents are marked with "..".
func (p *TablePrinter) SetMaxWidth(col uint, width uint) {
	p.maxWidths[col] = width
}

// Print the table to a given writer.
func (p *TablePrinter) Print(w io.Writer) error {
	for i, row := range p.rows {
		escapes := p.escapes[i]
		//
		for j, col := range row {
			var (
				jth        = col
				jth_width  = p.width(uint(j))
				jth_escape = escapes[j]
			)
			// Print colour (if applicable)
			if p.enableEscapes && jth_escape != "" {
				if _, err := io.WriteString(w, jth_escape); err != nil {
					return err
				}
			}
			// Print data
			if uint(len(col)) > jth_width {
				jth = col[0 : jth_width-2]
				jth = fmt.Sprintf(" %*s..", jth_width-2, jth)
			} else {
				jth = fmt.Sprintf(" %*s", jth_width, jth)
			}
			//
			if _, err := io.WriteString(w, jth); err != nil {
				return err
			}
			// Cancel colour (if applicable)
			if p.enableEscapes && jth_escape != "" {
				if _, err := io.WriteString(w, ResetAnsiEscape().Build()); err != nil {
					return err
				}
			}
			//
			if _, err := io.WriteString(w, " |"); err != nil {
				return err
			}
		}
		//
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	//
	return nil
}

// Determine the printed width of a given column.
func (p *TablePrinter) width(col uint) uint {
	if p.maxWidths[col] == 0 {
		return p.widths[col]
	}
	//
	return min(p.widths[col], max(3, p.maxWidths[col]))
}

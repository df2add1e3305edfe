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
package termio

import (
	"fmt"
	"strings"
)

// Colour identifies one of the eight standard terminal colours.
type Colour uint

const (
	// TERM_BLACK represents black
	TERM_BLACK Colour = iota
	// TERM_RED represents red
	TERM_RED
	// TERM_GREEN represents green
	TERM_GREEN
	// TERM_YELLOW represents yellow
	TERM_YELLOW
	// TERM_BLUE represents blue
	TERM_BLUE
	// TERM_MAGENTA represents magenta
	TERM_MAGENTA
	// TERM_CYAN represents cyan
	TERM_CYAN
	// TERM_WHITE represents white
	TERM_WHITE
)

// AnsiEscape represents an ANSI escape code used for formatting text in a
// terminal, built up from zero or more numeric attributes.
type AnsiEscape struct {
	attributes []uint
}

// NewAnsiEscape construct an empty escape
func NewAnsiEscape() AnsiEscape {
	return AnsiEscape{nil}
}

// ResetAnsiEscape constructs a reset term.
func ResetAnsiEscape() AnsiEscape {
	return AnsiEscape{[]uint{0}}
}

// BoldAnsiEscape constructs a bold term.
func BoldAnsiEscape() AnsiEscape {
	return AnsiEscape{[]uint{1}}
}

// UnderlineAnsiEscape constructs an underline term.
func UnderlineAnsiEscape() AnsiEscape {
	return AnsiEscape{[]uint{4}}
}

// FgColour sets the foreground colour
func (p AnsiEscape) FgColour(col Colour) AnsiEscape {
	return p.with(uint(col) + 30)
}

// BgColour sets the background colour
func (p AnsiEscape) BgColour(col Colour) AnsiEscape {
	return p.with(uint(col) + 40)
}

// Build constructs the final escape
func (p AnsiEscape) Build() string {
	var builder strings.Builder
	//
	builder.WriteString("\033[")
	//
	for i, attr := range p.attributes {
		if i != 0 {
			builder.WriteString(";")
		}
		//
		builder.WriteString(fmt.Sprintf("%d", attr))
	}
	//
	builder.WriteString("m")
	//
	return builder.String()
}

// Append an attribute without disturbing the receiver.
func (p AnsiEscape) with(attr uint) AnsiEscape {
	attributes := make([]uint, len(p.attributes)+1)
	copy(attributes, p.attributes)
	attributes[len(p.attributes)] = attr
	//
	return AnsiEscape{attributes}
}

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
package bit

import (
	"strconv"
	"strings"
)

// ToString renders a bit string as a sequence of '0' and '1' characters, most
// significant bit first.  Leading zeros are omitted, hence a bit string with
// no set bits gives "0".  A nil bit string gives "null".
func ToString(v []uint64) string {
	return ToStringWidth(v, 0)
}

// ToStringWidth is ToString padded with '0' characters (on the left) to at least
// minw characters.
func ToStringWidth(v []uint64, minw int) string {
	if v == nil {
		return "null"
	}
	//
	n := max(Magnitude(v), minw)
	//
	if n == 0 {
		return "0"
	}
	//
	digits := make([]byte, n)
	//
	for i := 0; i < n; i++ {
		digits[n-1-i] = digit(v, i)
	}
	//
	return string(digits)
}

// ToStringLow renders a bit string as a sequence of '0' and '1' characters,
// least significant bit first.  High zeros are omitted, hence a bit string
// with no set bits gives "0".  A nil bit string gives "null".
func ToStringLow(v []uint64) string {
	return ToStringLowWidth(v, 0)
}

// ToStringLowWidth is ToStringLow padded with '0' characters (on the right) to
// at least minw characters.
func ToStringLowWidth(v []uint64, minw int) string {
	if v == nil {
		return "null"
	}
	//
	n := max(Magnitude(v), minw)
	//
	if n == 0 {
		return "0"
	}
	//
	digits := make([]byte, n)
	//
	for i := 0; i < n; i++ {
		digits[i] = digit(v, i)
	}
	//
	return string(digits)
}

// ToIndexString renders the positions of the set bits in a bit string, counted
// from a given offset (usually 0 or 1) and separated by sep.  For example,
// 0b1100 gives "2 3" for an offset of 0 and a separator of " ".
func ToIndexString(v []uint64, sep string, offset int) string {
	var (
		builder strings.Builder
		first   = true
	)
	//
	for p := NextSetBit(v, 0); p >= 0; p = NextSetBit(v, p+1) {
		if !first {
			builder.WriteString(sep)
		}
		//
		first = false
		//
		builder.WriteString(strconv.Itoa(p + offset))
	}
	//
	return builder.String()
}

func digit(v []uint64, i int) byte {
	if Get(v, uint(i)) {
		return '1'
	}
	//
	return '0'
}

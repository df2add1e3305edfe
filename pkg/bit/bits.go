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
	"fmt"
	"math/bits"

	"github.com/consensys/go-bits/pkg/word"
)

// Capacity returns the number of bits which an array can hold.
func Capacity(v []uint64) int {
	return len(v) * word.Width
}

// Get determines whether bit "off" is set.  Bits beyond the capacity of the
// array are considered to be zero.
func Get(v []uint64, off uint) bool {
	index := off / word.Width
	//
	return index < uint(len(v)) && word.Get(v[index], off%word.Width)
}

// SetI sets bit "off" in place.
func SetI(v []uint64, off uint) []uint64 {
	index := off / word.Width
	v[index] = word.SetC(v[index], off%word.Width)
	//
	return v
}

// ClearI clears bit "off" in place.
func ClearI(v []uint64, off uint) []uint64 {
	index := off / word.Width
	v[index] = word.ClearC(v[index], off%word.Width)
	//
	return v
}

// FlipI inverts bit "off" in place.
func FlipI(v []uint64, off uint) []uint64 {
	index := off / word.Width
	v[index] = word.FlipC(v[index], off%word.Width)
	//
	return v
}

// AssignI copies the bits of o into v, in place.  Any words of v beyond the
// length of o are left untouched.
func AssignI(v []uint64, o []uint64) []uint64 {
	if len(o) > len(v) {
		panic(fmt.Sprintf("cannot assign %d words into %d words", len(o), len(v)))
	}
	//
	copy(v, o)
	//
	return v
}

// OnesI sets the n least significant bits of v, and clears all others.
func OnesI(v []uint64, n uint) []uint64 {
	if n > uint(Capacity(v)) {
		panic(fmt.Sprintf("cannot set %d bits in array of capacity %d", n, Capacity(v)))
	}
	//
	var (
		fillWords = n / word.Width
		fillBits  = n % word.Width
	)
	//
	for i := uint(0); i < fillWords; i++ {
		v[i] = word.All
	}
	// Partial word (if applicable)
	if fillBits > 0 {
		v[fillWords] = word.Mask(fillBits)
		fillWords++
	}
	//
	clear(v[fillWords:])
	//
	return v
}

// ZeroI clears every bit of v.
func ZeroI(v []uint64) []uint64 {
	clear(v)
	//
	return v
}

// InvertI inverts every bit of v, up to its capacity.
func InvertI(v []uint64) []uint64 {
	for i := range v {
		v[i] = ^v[i]
	}
	//
	return v
}

// TruncateI clears every bit at or above a given length, leaving the capacity
// unchanged.
func TruncateI(v []uint64, length uint) []uint64 {
	if length >= uint(Capacity(v)) {
		return v
	}
	//
	var (
		index = length / word.Width
		bit   = length % word.Width
	)
	// Partial word (if applicable)
	if bit > 0 {
		v[index] &= word.Mask(bit)
		index++
	}
	//
	clear(v[index:])
	//
	return v
}

// IsZero determines whether every bit of v is zero.
func IsZero(v []uint64) bool {
	for _, w := range v {
		if w != 0 {
			return false
		}
	}
	//
	return true
}

// Cardinality returns the number of bits set in v.
func Cardinality(v []uint64) int {
	count := 0
	//
	for _, w := range v {
		count += bits.OnesCount64(w)
	}
	//
	return count
}

// Magnitude returns the position of the highest set bit plus one, or 0 when no
// bit is set.
func Magnitude(v []uint64) int {
	return Capacity(v) - NumberOfLeadingZeros(v)
}

// NumberOfLeadingZeros returns the number of zero bits above the highest set
// bit (relative to the capacity), or the capacity when no bit is set.
func NumberOfLeadingZeros(v []uint64) int {
	if n := NumberOfLeadingZerosSigned(v); n >= 0 {
		return n
	}
	//
	return Capacity(v)
}

// NumberOfLeadingZerosSigned is NumberOfLeadingZeros, except that -1 is
// returned when no bit is set.
func NumberOfLeadingZerosSigned(v []uint64) int {
	for p, ip := 0, len(v)-1; ip >= 0; p, ip = p+1, ip-1 {
		if v[ip] != 0 {
			return bits.LeadingZeros64(v[ip]) + p*word.Width
		}
	}
	//
	return -1
}

// NumberOfTrailingZeros returns the number of zero bits below the lowest set
// bit, or the capacity when no bit is set.
func NumberOfTrailingZeros(v []uint64) int {
	if n := NumberOfTrailingZerosSigned(v); n >= 0 {
		return n
	}
	//
	return Capacity(v)
}

// NumberOfTrailingZerosSigned is NumberOfTrailingZeros, except that -1 is
// returned when no bit is set.
func NumberOfTrailingZerosSigned(v []uint64) int {
	for p, w := range v {
		if w != 0 {
			return bits.TrailingZeros64(w) + p*word.Width
		}
	}
	//
	return -1
}

// NextSetBit returns the position of the first set bit at or above start, or
// -1 if there is none.  A negative start is treated as 0.
func NextSetBit(v []uint64, start int) int {
	return nextBit(v, start, 0)
}

// NextClearBit returns the position of the first clear bit at or above start,
// or -1 if there is none below the capacity.  A negative start is treated as
// 0.
func NextClearBit(v []uint64, start int) int {
	return nextBit(v, start, word.All)
}

// PreviousSetBit returns the position of the last set bit at or below start, or
// -1 if there is none.  A start beyond the capacity is treated as the last bit
// of the capacity.
func PreviousSetBit(v []uint64, start int) int {
	return previousBit(v, start, 0)
}

// PreviousClearBit returns the position of the last clear bit at or below
// start, or -1 if there is none.  A start beyond the capacity is treated as the
// last bit of the capacity.
func PreviousClearBit(v []uint64, start int) int {
	return previousBit(v, start, word.All)
}

// Forward scan, where every word is XORed with "flip" beforehand.  Thus, a flip
// of zero looks for set bits whilst a flip of all ones looks for clear bits.
func nextBit(v []uint64, start int, flip uint64) int {
	start = max(start, 0)
	//
	index := start / word.Width
	//
	if index >= len(v) {
		return -1
	}
	// Initial word
	cur := (v[index] ^ flip) & (word.All << uint(start%word.Width))
	//
	for {
		if cur != 0 {
			return (index * word.Width) + bits.TrailingZeros64(cur)
		}
		//
		if index++; index == len(v) {
			return -1
		}
		//
		cur = v[index] ^ flip
	}
}

// Backward scan, where every word is XORed with "flip" beforehand.
func previousBit(v []uint64, start int, flip uint64) int {
	if start < 0 || len(v) == 0 {
		return -1
	}
	//
	start = min(start, Capacity(v)-1)
	//
	var (
		index = start / word.Width
		// Initial word
		cur = (v[index] ^ flip) & (word.All >> uint(word.Width-1-(start%word.Width)))
	)
	//
	for {
		if cur != 0 {
			return (index * word.Width) + word.Width - 1 - bits.LeadingZeros64(cur)
		}
		//
		if index == 0 {
			return -1
		}
		//
		index--
		cur = v[index] ^ flip
	}
}

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

// Package word provides bit manipulation primitives over a single 64bit word.
// Every function here is pure: words are passed and returned by value.  The
// functions with a "C" suffix return a modified copy of their argument, and
// correspond to the in-place ("I" suffix) functions of the bit package which
// operate over arrays of words.
package word

import (
	"cmp"
	"fmt"
	"math/bits"
)

// Width is the number of bits in a word.
const Width = 64

// All is the word with every bit set.
const All = ^uint64(0)

// Mask returns a word with the n least significant bits set.  Any n greater
// than or equal to the word width gives a word with all bits set.
func Mask(n uint) uint64 {
	if n >= Width {
		return All
	}
	//
	return (uint64(1) << n) - 1
}

// Get determines whether bit "off" of a given word is set.
func Get(v uint64, off uint) bool {
	return v&(uint64(1)<<off) != 0
}

// SetC returns the given word with bit "off" set.
func SetC(v uint64, off uint) uint64 {
	return v | (uint64(1) << off)
}

// ClearC returns the given word with bit "off" cleared.
func ClearC(v uint64, off uint) uint64 {
	return v &^ (uint64(1) << off)
}

// FlipC returns the given word with bit "off" inverted.
func FlipC(v uint64, off uint) uint64 {
	return v ^ (uint64(1) << off)
}

// Cardinality returns the number of bits set in a word.
func Cardinality(v uint64) int {
	return bits.OnesCount64(v)
}

// Magnitude returns the position of the highest set bit plus one, or 0 when no
// bit is set.
func Magnitude(v uint64) int {
	return bits.Len64(v)
}

// NumberOfLeadingZeros returns the number of zero bits above the highest set
// bit, or 64 for the zero word.
func NumberOfLeadingZeros(v uint64) int {
	return bits.LeadingZeros64(v)
}

// NumberOfLeadingZerosSigned is NumberOfLeadingZeros, except that -1 is
// returned for the zero word.
func NumberOfLeadingZerosSigned(v uint64) int {
	if v == 0 {
		return -1
	}
	//
	return bits.LeadingZeros64(v)
}

// NumberOfTrailingZeros returns the number of zero bits below the lowest set
// bit, or 64 for the zero word.
func NumberOfTrailingZeros(v uint64) int {
	return bits.TrailingZeros64(v)
}

// NumberOfTrailingZerosSigned is NumberOfTrailingZeros, except that -1 is
// returned for the zero word.
func NumberOfTrailingZerosSigned(v uint64) int {
	if v == 0 {
		return -1
	}
	//
	return bits.TrailingZeros64(v)
}

// NumberOfLeadingZeros32 is the 32bit version of NumberOfLeadingZeros.
func NumberOfLeadingZeros32(v uint32) int {
	return bits.LeadingZeros32(v)
}

// NumberOfLeadingZerosSigned32 is the 32bit version of
// NumberOfLeadingZerosSigned.
func NumberOfLeadingZerosSigned32(v uint32) int {
	if v == 0 {
		return -1
	}
	//
	return bits.LeadingZeros32(v)
}

// NumberOfTrailingZeros32 is the 32bit version of NumberOfTrailingZeros.
func NumberOfTrailingZeros32(v uint32) int {
	return bits.TrailingZeros32(v)
}

// NumberOfTrailingZerosSigned32 is the 32bit version of
// NumberOfTrailingZerosSigned.
func NumberOfTrailingZerosSigned32(v uint32) int {
	if v == 0 {
		return -1
	}
	//
	return bits.TrailingZeros32(v)
}

// GrayC computes the binary reflected gray code of a word, v XOR (v >> 1).
func GrayC(v uint64) uint64 {
	return v ^ (v >> 1)
}

// InvGrayC inverts GrayC, i.e. computes v XOR (v >> 1) XOR (v >> 2) ...
func InvGrayC(v uint64) uint64 {
	v ^= v >> 1
	v ^= v >> 2
	v ^= v >> 4
	v ^= v >> 8
	v ^= v >> 16
	v ^= v >> 32
	//
	return v
}

// CycleLeftC rotates the "length" least significant bits of a word to the left
// by "shift" positions.  Bits at or above "length" are unaffected.  A negative
// shift rotates to the right.
func CycleLeftC(v uint64, shift int, length uint) uint64 {
	if length > Width {
		panic(fmt.Sprintf("invalid rotation length (%d)", length))
	} else if length == 0 {
		return v
	}
	//
	var (
		n    = normalise(shift, length)
		mask = Mask(length)
		low  = v & mask
	)
	//
	if n == 0 {
		return v
	}
	//
	low = ((low << n) | (low >> (length - n))) & mask
	// Recombine with untouched high bits
	return (v &^ mask) | low
}

// CycleRightC rotates the "length" least significant bits of a word to the
// right by "shift" positions.  Bits at or above "length" are unaffected.  A
// negative shift rotates to the left.
func CycleRightC(v uint64, shift int, length uint) uint64 {
	if length == 0 {
		return v
	}
	//
	return CycleLeftC(v, int(length-normalise(shift, length)), length)
}

// normalise a rotation amount into the range [0,length).
func normalise(shift int, length uint) uint {
	n := shift % int(length)
	//
	if n < 0 {
		n += int(length)
	}
	//
	return uint(n)
}

// NextSetBit returns the position of the first set bit at or above start, or
// -1 if there is none.
func NextSetBit(v uint64, start int) int {
	if start >= Width {
		return -1
	}
	//
	cur := v & (All << uint(max(start, 0)))
	//
	if cur == 0 {
		return -1
	}
	//
	return bits.TrailingZeros64(cur)
}

// NextClearBit returns the position of the first clear bit at or above start,
// or -1 if there is none.
func NextClearBit(v uint64, start int) int {
	return NextSetBit(^v, start)
}

// PreviousSetBit returns the position of the last set bit at or below start, or
// -1 if there is none.
func PreviousSetBit(v uint64, start int) int {
	if start < 0 {
		return -1
	}
	//
	cur := v & (All >> uint(Width-1-min(start, Width-1)))
	//
	if cur == 0 {
		return -1
	}
	//
	return Width - 1 - bits.LeadingZeros64(cur)
}

// PreviousClearBit returns the position of the last clear bit at or below
// start, or -1 if there is none.
func PreviousClearBit(v uint64, start int) int {
	return PreviousSetBit(^v, start)
}

// Equal determines whether two words hold the same bits.
func Equal(x, y uint64) bool {
	return x == y
}

// Compare two words as unsigned integers, returning -1, 0 or +1.
func Compare(x, y uint64) int {
	return cmp.Compare(x, y)
}

// Intersect determines whether two words have any set bit in common.
func Intersect(x, y uint64) bool {
	return x&y != 0
}

// IntersectionSize returns the number of set bits common to both words.
func IntersectionSize(x, y uint64) int {
	return bits.OnesCount64(x & y)
}

// UnionSize returns the number of bits set in either word.
func UnionSize(x, y uint64) int {
	return bits.OnesCount64(x | y)
}

// HammingDistance returns the number of positions at which two words differ.
func HammingDistance(x, y uint64) int {
	return bits.OnesCount64(x ^ y)
}

// Hash a word into 32 bits.  This is fast, but not resistant to collision
// attacks.
func Hash(v uint64) uint32 {
	h := HashSeed ^ v
	//
	return uint32((h >> 32) ^ h)
}

// HashSeed is the initial state of the bit string hash.
const HashSeed = uint64(0x76543210)

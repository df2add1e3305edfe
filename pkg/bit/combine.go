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
	"math/bits"

	"github.com/consensys/go-bits/pkg/word"
)

// AndI computes v &= o in place.  Words of v beyond the length of o are
// cleared.
func AndI(v []uint64, o []uint64) []uint64 {
	n := min(len(v), len(o))
	//
	for i := 0; i < n; i++ {
		v[i] &= o[i]
	}
	// Zero higher words
	clear(v[n:])
	//
	return v
}

// OrI computes v |= o in place.  Words of o beyond the length of v are
// discarded.
func OrI(v []uint64, o []uint64) []uint64 {
	n := min(len(v), len(o))
	//
	for i := 0; i < n; i++ {
		v[i] |= o[i]
	}
	//
	return v
}

// XorI computes v ^= o in place.  Words of o beyond the length of v are
// discarded.
func XorI(v []uint64, o []uint64) []uint64 {
	n := min(len(v), len(o))
	//
	for i := 0; i < n; i++ {
		v[i] ^= o[i]
	}
	//
	return v
}

// NandI computes v &= ^o in place, i.e. clears every bit of v which is set in
// o.  Hence, NandI(v, v) clears v.
func NandI(v []uint64, o []uint64) []uint64 {
	n := min(len(v), len(o))
	//
	for i := 0; i < n; i++ {
		v[i] &^= o[i]
	}
	//
	return v
}

// AndShiftI computes v &= (o << off) in place, where a negative offset shifts
// o to the right.  Here, o may be v itself.
func AndShiftI(v []uint64, o []uint64, off int) []uint64 {
	return combineShifted(v, o, off, func(x, y uint64) uint64 { return x & y })
}

// OrShiftI computes v |= (o << off) in place, where a negative offset shifts o
// to the right.  Bits shifted beyond the capacity of v are discarded.  Here, o
// may be v itself.
func OrShiftI(v []uint64, o []uint64, off int) []uint64 {
	return combineShifted(v, o, off, func(x, y uint64) uint64 { return x | y })
}

// XorShiftI computes v ^= (o << off) in place, where a negative offset shifts
// o to the right.  Bits shifted beyond the capacity of v are discarded.  Here,
// o may be v itself.
func XorShiftI(v []uint64, o []uint64, off int) []uint64 {
	return combineShifted(v, o, off, func(x, y uint64) uint64 { return x ^ y })
}

// Combine every word of v with the corresponding word of (o << off).  Word i
// of the shifted operand depends only on words at or below i of o for a left
// shift (and at or above for a right shift).  Thus, visiting v top-down for
// left shifts and bottom-up for right shifts ensures no word of o is read after
// being written, even when o and v are the same array.
func combineShifted(v []uint64, o []uint64, off int, fn func(uint64, uint64) uint64) []uint64 {
	var (
		neg = off < 0
		mag = magnitude(off)
		// Beyond this many words the shifted operand is zero
		maxWords   = uint(len(v) + len(o) + 1)
		shiftWords = int(min(mag/word.Width, maxWords))
		shiftBits  = mag % word.Width
		// Go defines shifts of 64 (or more) as giving zero.
		unshiftBits = word.Width - shiftBits
	)
	//
	if !neg {
		for i := len(v) - 1; i >= 0; i-- {
			j := i - shiftWords
			v[i] = fn(v[i], (wordAt(o, j)<<shiftBits)|(wordAt(o, j-1)>>unshiftBits))
		}
	} else {
		for i := 0; i < len(v); i++ {
			j := i + shiftWords
			v[i] = fn(v[i], (wordAt(o, j)>>shiftBits)|(wordAt(o, j+1)<<unshiftBits))
		}
	}
	//
	return v
}

// AndInto writes a & b into dst, and returns dst.  Operands are zero extended
// as necessary, and either may be dst itself.
func AndInto(dst []uint64, a []uint64, b []uint64) []uint64 {
	for i := range dst {
		dst[i] = wordAt(a, i) & wordAt(b, i)
	}
	//
	return dst
}

// OrInto writes a | b into dst, and returns dst.  Operands are zero extended
// as necessary, and either may be dst itself.
func OrInto(dst []uint64, a []uint64, b []uint64) []uint64 {
	for i := range dst {
		dst[i] = wordAt(a, i) | wordAt(b, i)
	}
	//
	return dst
}

// XorInto writes a ^ b into dst, and returns dst.  Operands are zero extended
// as necessary, and either may be dst itself.
func XorInto(dst []uint64, a []uint64, b []uint64) []uint64 {
	for i := range dst {
		dst[i] = wordAt(a, i) ^ wordAt(b, i)
	}
	//
	return dst
}

// NandInto writes a & ^b into dst, and returns dst.  Operands are zero extended
// as necessary, and either may be dst itself.
func NandInto(dst []uint64, a []uint64, b []uint64) []uint64 {
	for i := range dst {
		dst[i] = wordAt(a, i) &^ wordAt(b, i)
	}
	//
	return dst
}

// AndMin allocates a new array holding v & o, whose length is the shorter of
// the two.
func AndMin(v []uint64, o []uint64) []uint64 {
	return AndInto(make([]uint64, min(len(v), len(o))), v, o)
}

// GrayI computes the gray code of v in place, i.e. v ^= (v >> 1).
func GrayI(v []uint64) []uint64 {
	return XorShiftI(v, v, -1)
}

// InvGrayI inverts GrayI in place, i.e. computes v ^ (v >> 1) ^ (v >> 2) ...
func InvGrayI(v []uint64) []uint64 {
	for o := 1; o < Capacity(v); o <<= 1 {
		XorShiftI(v, v, -o)
	}
	//
	return v
}

// Intersect determines whether x and y have any set bit in common.
func Intersect(x []uint64, y []uint64) bool {
	n := min(len(x), len(y))
	//
	for i := 0; i < n; i++ {
		if x[i]&y[i] != 0 {
			return true
		}
	}
	//
	return false
}

// IntersectionSize returns the number of set bits common to x and y.
func IntersectionSize(x []uint64, y []uint64) int {
	var (
		n     = min(len(x), len(y))
		count = 0
	)
	//
	for i := 0; i < n; i++ {
		count += bits.OnesCount64(x[i] & y[i])
	}
	//
	return count
}

// UnionSize returns the number of bits set in either x or y.
func UnionSize(x []uint64, y []uint64) int {
	count := 0
	//
	for i := range max(len(x), len(y)) {
		count += bits.OnesCount64(wordAt(x, i) | wordAt(y, i))
	}
	//
	return count
}

// HammingDistance returns the number of positions at which x and y differ, i.e.
// the cardinality of x ^ y.
func HammingDistance(x []uint64, y []uint64) int {
	count := 0
	//
	for i := range max(len(x), len(y)) {
		count += bits.OnesCount64(wordAt(x, i) ^ wordAt(y, i))
	}
	//
	return count
}

// Get the ith word of v, where words outside of v are zero.
func wordAt(v []uint64, i int) uint64 {
	if i < 0 || i >= len(v) {
		return 0
	}
	//
	return v[i]
}

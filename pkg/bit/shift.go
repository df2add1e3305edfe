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

	"github.com/consensys/go-bits/pkg/word"
)

// ShiftLeftI shifts v in place towards its most significant end by "off" bits.
// Bits shifted beyond the capacity are lost.  A negative offset shifts to the
// right instead.
func ShiftLeftI(v []uint64, off int) []uint64 {
	if off < 0 {
		return shiftRight(v, magnitude(off))
	}
	//
	return shiftLeft(v, uint(off))
}

// ShiftRightI shifts v in place towards its least significant end by "off"
// bits.  Bits shifted below zero are lost.  A negative offset shifts to the
// left instead.
func ShiftRightI(v []uint64, off int) []uint64 {
	if off < 0 {
		return shiftLeft(v, magnitude(off))
	}
	//
	return shiftRight(v, uint(off))
}

func shiftLeft(v []uint64, off uint) []uint64 {
	if off == 0 {
		return v
	} else if off/word.Width >= uint(len(v)) {
		return ZeroI(v)
	}
	// Break shift into whole words and remaining bits
	var (
		n          = len(v)
		shiftWords = int(off / word.Width)
		shiftBits  = off % word.Width
	)
	// Simple case: multiple of word size
	if shiftBits == 0 {
		copy(v[shiftWords:], v[:n-shiftWords])
		clear(v[:shiftWords])
		//
		return v
	}
	// Overlapping case.  Top-down, so nothing is overwritten before it is read.
	unshiftBits := word.Width - shiftBits
	//
	for i := n - 1; i > shiftWords; i-- {
		src := i - shiftWords
		v[i] = (v[src] << shiftBits) | (v[src-1] >> unshiftBits)
	}
	//
	v[shiftWords] = v[0] << shiftBits
	// Fill words vacated by the shift
	clear(v[:shiftWords])
	//
	return v
}

func shiftRight(v []uint64, off uint) []uint64 {
	if off == 0 {
		return v
	} else if off/word.Width >= uint(len(v)) {
		return ZeroI(v)
	}
	// Break shift into whole words and remaining bits
	var (
		n          = len(v)
		shiftWords = int(off / word.Width)
		shiftBits  = off % word.Width
	)
	// Simple case: multiple of word size
	if shiftBits == 0 {
		copy(v, v[shiftWords:])
		clear(v[n-shiftWords:])
		//
		return v
	}
	// Overlapping case.  Bottom-up, so nothing is overwritten before it is read.
	unshiftBits := word.Width - shiftBits
	//
	for i := 0; i < n-shiftWords-1; i++ {
		src := i + shiftWords
		v[i] = (v[src+1] << unshiftBits) | (v[src] >> shiftBits)
	}
	// The last original word
	v[n-shiftWords-1] = v[n-1] >> shiftBits
	// Fill words vacated by the shift
	clear(v[n-shiftWords:])
	//
	return v
}

// Absolute value of an offset, which holds even for math.MinInt.
func magnitude(off int) uint {
	if off < 0 {
		return uint(-(off + 1)) + 1
	}
	//
	return uint(off)
}

// CycleLeftI rotates the "length" least significant bits of v to the left by
// "shift" positions, in place.  The shift is taken modulo the length, and a
// negative shift rotates to the right.  Bits at or above "length" are
// unaffected.
func CycleLeftI(v []uint64, shift int, length uint) []uint64 {
	if length > uint(Capacity(v)) {
		panic(fmt.Sprintf("rotation length %d exceeds capacity %d", length, Capacity(v)))
	} else if length == 0 {
		return v
	}
	//
	n := shift % int(length)
	//
	if n < 0 {
		n += int(length)
	}
	//
	if n == 0 {
		return v
	}
	//
	var (
		low = TruncateI(Copy(v), length)
		rot = make([]uint64, len(v))
	)
	// Rotate the low bits
	OrShiftI(rot, low, n)
	OrShiftI(rot, low, n-int(length))
	TruncateI(rot, length)
	// Replace the low bits
	return OrI(NandI(v, low), rot)
}

// CycleRightI rotates the "length" least significant bits of v to the right by
// "shift" positions, in place.  This is the exact inverse of CycleLeftI.
func CycleRightI(v []uint64, shift int, length uint) []uint64 {
	if length == 0 || length > uint(Capacity(v)) {
		return CycleLeftI(v, 0, length)
	}
	// Reduce first, since negating math.MinInt overflows
	return CycleLeftI(v, -(shift % int(length)), length)
}

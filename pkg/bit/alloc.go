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

// Package bit provides bit manipulation over bit strings held in arrays of
// 64bit words.  Words are stored in little-endian order, such that word 0 holds
// bits 0..63, word 1 holds bits 64..127, etc.  Note that, as a result, shifting
// "right" moves bits towards word 0.
//
// Functions with an "I" suffix modify the given array in place, and return it
// to allow chaining.  Functions without a suffix either query an array, or
// allocate a fresh one (e.g. Zero, Ones, Make, Copy).  No function ever resizes
// an array it is given; the capacity of an array is always a whole number of
// words and is typically larger than the length of the bit string it holds.
// Bits beyond that length are expected to be zero.
package bit

import (
	"fmt"
	"math/rand/v2"

	"github.com/consensys/go-bits/pkg/word"
)

// WordsFor returns the number of words needed to hold a given number of bits.
// At least one word is always required.
func WordsFor(bits uint) uint {
	if bits == 0 {
		return 1
	}
	//
	return ((bits - 1) / word.Width) + 1
}

// Zero allocates a new array with room for at least the given number of bits,
// all of which are zero.
func Zero(bits uint) []uint64 {
	return make([]uint64, WordsFor(bits))
}

// Ones allocates a new array with room for at least the given number of bits,
// and sets exactly that many bits.
func Ones(bits uint) []uint64 {
	return OnesI(Zero(bits), bits)
}

// Make allocates a new array with room for at least the given number of bits,
// initialised to a given (word-sized) value.
func Make(bits uint, init uint64) []uint64 {
	v := Zero(bits)
	v[0] = init
	//
	return v
}

// Copy allocates an exact copy of a given array.
func Copy(v []uint64) []uint64 {
	ret := make([]uint64, len(v))
	copy(ret, v)
	//
	return ret
}

// CopyTo allocates a copy of a given array with room for at least "mincap"
// bits.  Observe that bits beyond "mincap" may be retained, if they fall within
// the final word.
func CopyTo(v []uint64, mincap uint) []uint64 {
	ret := make([]uint64, WordsFor(mincap))
	copy(ret, v)
	//
	return ret
}

// CopyShifted allocates a copy of a given array with room for at least
// "mincap" bits, shifted left by a given number of bits.  Bits shifted beyond
// the capacity of the copy are discarded.
func CopyShifted(v []uint64, mincap uint, shift uint) []uint64 {
	ret := make([]uint64, WordsFor(mincap))
	//
	return OrShiftI(ret, v, int(shift))
}

// Random allocates a new array with room for "capacity" bits, exactly "card" of
// which are set.  The positions of the set bits are chosen uniformly at random
// using the given source, hence the result is determined by its seed.
func Random(card uint, capacity uint, rnd *rand.Rand) []uint64 {
	if card > capacity {
		panic(fmt.Sprintf("cannot set %d out of %d bits", card, capacity))
	}
	//
	if card < capacity/2 {
		v := Zero(capacity)
		// Set bits until enough are set.
		for todo := card; todo > 0; {
			if i := rnd.UintN(capacity); !Get(v, i) {
				SetI(v, i)
				todo--
			}
		}
		//
		return v
	}
	//
	v := Ones(capacity)
	// Clear bits until enough are cleared.
	for todo := capacity - card; todo > 0; {
		if i := rnd.UintN(capacity); Get(v, i) {
			ClearI(v, i)
			todo--
		}
	}
	//
	return v
}

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
	"math/rand/v2"
	"testing"

	"github.com/bits-and-blooms/bitset"
)

// Check the scanning operations against an independent bitset implementation.
func Test_BitSet_00(t *testing.T) {
	b := bitset.New(64)
	v := Zero(64)
	//
	checkAgainstBitSet(t, b, v)
	//
	b.Set(4)
	b.Set(15)
	SetI(v, 4)
	SetI(v, 15)
	//
	checkAgainstBitSet(t, b, v)
}

func Test_BitSet_01(t *testing.T) {
	rnd := rand.New(rand.NewPCG(15, 16))
	//
	for i := 0; i < 50; i++ {
		v := randomWords(rnd, 1+rnd.IntN(6))
		// Sparsify some words, so runs of zeros are crossed.
		for j := range v {
			if rnd.IntN(3) == 0 {
				v[j] = 0
			} else if rnd.IntN(3) == 0 {
				v[j] &= rnd.Uint64() & rnd.Uint64()
			}
		}
		//
		checkAgainstBitSet(t, bitset.From(Copy(v)), v)
	}
}

func Test_BitSet_02(t *testing.T) {
	for _, v := range [][]uint64{Ones(512), Zero(512), SetI(Zero(512), 391)} {
		checkAgainstBitSet(t, bitset.From(Copy(v)), v)
	}
}

func checkAgainstBitSet(t *testing.T, b *bitset.BitSet, v []uint64) {
	t.Helper()
	//
	var (
		n = int(b.Len())
		// Last set (resp. clear) bit at or below the current index
		lastSet, lastClear = -1, -1
	)
	//
	checkInt(t, "cardinality", int(b.Count()), Cardinality(v))
	//
	for i := 0; i < n; i++ {
		if b.Test(uint(i)) {
			lastSet = i
		} else {
			lastClear = i
		}
		//
		if Get(v, uint(i)) != b.Test(uint(i)) {
			t.Errorf("bit %d differs", i)
		}
		//
		checkScan(t, "nextSetBit", NextSetBit, v, i, scanResult(b.NextSet(uint(i))))
		checkScan(t, "nextClearBit", NextClearBit, v, i, scanResult(b.NextClear(uint(i))))
		checkScan(t, "previousSetBit", PreviousSetBit, v, i, lastSet)
		checkScan(t, "previousClearBit", PreviousClearBit, v, i, lastClear)
	}
}

func scanResult(index uint, ok bool) int {
	if ok {
		return int(index)
	}
	//
	return -1
}

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
	"cmp"

	"github.com/consensys/go-bits/pkg/word"
)

// Equal determines whether two bit strings hold the same bits, where the
// shorter is zero extended as necessary.  A nil bit string is equal only to
// another nil bit string.
func Equal(x []uint64, y []uint64) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	//
	for i := range max(len(x), len(y)) {
		if wordAt(x, i) != wordAt(y, i) {
			return false
		}
	}
	//
	return true
}

// Compare two bit strings as unsigned integers, returning -1, 0 or +1.  The
// shorter is zero extended as necessary, and nil is ordered before everything
// else.
func Compare(x []uint64, y []uint64) int {
	if x == nil {
		if y == nil {
			return 0
		}
		//
		return -1
	} else if y == nil {
		return 1
	}
	//
	for i := max(len(x), len(y)) - 1; i >= 0; i-- {
		if c := cmp.Compare(wordAt(x, i), wordAt(y, i)); c != 0 {
			return c
		}
	}
	//
	return 0
}

// Hash a bit string into 32 bits.  The hash depends upon the position of every
// word, and is suitable for hash tables keyed on bit strings of the same
// length.
func Hash(v []uint64) uint32 {
	h := word.HashSeed
	//
	for i, w := range v {
		h ^= w * uint64(i+1)
	}
	//
	return uint32((h >> 32) ^ h)
}

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

// Package convert moves bit strings between the word arrays of package bit and
// other common representations: bitsets, roaring bitmaps, SSZ bitlists, big
// integers and field elements.  Every conversion allocates a fresh result, so
// the input and output never alias.
package convert

import (
	"fmt"
	"math"
	"math/big"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-bits/pkg/bit"
	"github.com/consensys/go-bits/pkg/word"
	"github.com/prysmaticlabs/go-bitfield"
)

// ToBitSet converts a bit string into a bitset whose length is the capacity of
// the bit string.
func ToBitSet(v []uint64) *bitset.BitSet {
	return bitset.From(bit.Copy(v))
}

// FromBitSet converts a bitset into a bit string with room for (at least) the
// length of the bitset.
func FromBitSet(b *bitset.BitSet) []uint64 {
	v := bit.Zero(b.Len())
	//
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		bit.SetI(v, i)
	}
	//
	return v
}

// ToRoaring converts a bit string into a roaring bitmap holding the positions of
// its set bits.  Positions must fit into 32 bits.
func ToRoaring(v []uint64) *roaring.Bitmap {
	rb := roaring.New()
	//
	for i := bit.NextSetBit(v, 0); i >= 0; i = bit.NextSetBit(v, i+1) {
		if i > math.MaxUint32 {
			panic(fmt.Sprintf("bit %d out of range for roaring bitmap", i))
		}
		//
		rb.Add(uint32(i))
	}
	//
	return rb
}

// FromRoaring converts a roaring bitmap into a bit string just large enough to
// hold its maximum element.
func FromRoaring(rb *roaring.Bitmap) []uint64 {
	if rb.IsEmpty() {
		return bit.Zero(0)
	}
	//
	v := bit.Zero(uint(rb.Maximum()) + 1)
	//
	for it := rb.Iterator(); it.HasNext(); {
		bit.SetI(v, uint(it.Next()))
	}
	//
	return v
}

// ToBitlist converts a bit string into a bitlist of exactly n bits.  Any set bit
// at or above n is a contract violation.
func ToBitlist(v []uint64, n uint64) bitfield.Bitlist {
	if m := bit.Magnitude(v); uint64(m) > n {
		panic(fmt.Sprintf("bit %d out of range for bitlist of length %d", m-1, n))
	}
	//
	bl := bitfield.NewBitlist(n)
	//
	for i := bit.NextSetBit(v, 0); i >= 0; i = bit.NextSetBit(v, i+1) {
		bl.SetBitAt(uint64(i), true)
	}
	//
	return bl
}

// FromBitlist converts a bitlist into a bit string with room for (at least) its
// length.
func FromBitlist(bl bitfield.Bitlist) []uint64 {
	var (
		n = bl.Len()
		v = bit.Zero(uint(n))
	)
	//
	for i := uint64(0); i < n; i++ {
		if bl.BitAt(i) {
			bit.SetI(v, uint(i))
		}
	}
	//
	return v
}

// FromBig converts a non-negative integer into a bit string with room for (at
// least) its bit length.
func FromBig(x *big.Int) []uint64 {
	if x.Sign() < 0 {
		panic(fmt.Sprintf("cannot convert negative integer %s", x.String()))
	}
	//
	var (
		v   = bit.Zero(uint(x.BitLen()))
		tmp big.Int
	)
	//
	for i := range v {
		v[i] = tmp.Rsh(x, uint(i*word.Width)).Uint64()
	}
	//
	return v
}

// ToBig converts a bit string into a non-negative integer.
func ToBig(v []uint64) *big.Int {
	var (
		x   = new(big.Int)
		tmp big.Int
	)
	//
	for i := len(v) - 1; i >= 0; i-- {
		x.Lsh(x, word.Width)
		x.Or(x, tmp.SetUint64(v[i]))
	}
	//
	return x
}

// FromElement converts a field element (in regular, non-Montgomery form) into a
// bit string of fr.Limbs words.
func FromElement(e *fr.Element) []uint64 {
	limbs := e.Bits()
	//
	return bit.Copy(limbs[:])
}

// ToElement converts a bit string into a field element, reducing modulo the
// field order as necessary.
func ToElement(v []uint64) fr.Element {
	var e fr.Element
	//
	e.SetBigInt(ToBig(v))
	//
	return e
}

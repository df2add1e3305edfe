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
	"iter"
	"strings"

	"github.com/consensys/go-bits/pkg/word"
)

// Set provides a straightforward bitset implementation. That is, a set of
// (unsigned) integer values implemented as an array of bits.  Unlike the raw
// functions of this package, a set grows as necessary to hold its elements.
// The zero value is an empty set.
type Set struct {
	words []uint64
}

// NewSet creates an empty Set with room for elements below the given size.
func NewSet(size uint) *Set {
	return &Set{Zero(size)}
}

// Clone creates a true copy of this bitset which ensures no aliasing between
// this set and the result.
func (p *Set) Clone() Set {
	return Set{Copy(p.words)}
}

// Words returns the underlying bit string of this set.  This is not a copy, so
// modifying it modifies the set.
func (p *Set) Words() []uint64 {
	return p.words
}

// Insert a given value into this set.
func (p *Set) Insert(val uint) {
	p.grow(val/word.Width + 1)
	SetI(p.words, val)
}

// InsertAll inserts zero or more elements into this bitset.
func (p *Set) InsertAll(vals ...uint) {
	for _, v := range vals {
		p.Insert(v)
	}
}

// Remove a given value from this set.
func (p *Set) Remove(val uint) {
	// Check whether we need to do anything.
	if p.Contains(val) {
		ClearI(p.words, val)
	}
}

// Contains checks whether a given value is contained, or not.
func (p *Set) Contains(val uint) bool {
	return Get(p.words, val)
}

// Count returns the number of elements in this set.
func (p *Set) Count() uint {
	return uint(Cardinality(p.words))
}

// IsEmpty checks whether this set has no elements.
func (p *Set) IsEmpty() bool {
	return IsZero(p.words)
}

// Union inserts all elements from a given bitset into this bitset, returning
// true if there is some change.
func (p *Set) Union(bits Set) bool {
	count := p.Count()
	//
	p.grow(uint(len(bits.words)))
	OrI(p.words, bits.words)
	// A union can only add elements
	return p.Count() != count
}

// Intersect removes all elements of this bitset not contained in a given
// bitset, returning true if there is some change.
func (p *Set) Intersect(bits Set) bool {
	count := p.Count()
	//
	AndI(p.words, bits.words)
	//
	return p.Count() != count
}

// Difference removes all elements of a given bitset from this bitset,
// returning true if there is some change.
func (p *Set) Difference(bits Set) bool {
	count := p.Count()
	//
	NandI(p.words, bits.words)
	//
	return p.Count() != count
}

// Min returns the smallest element of this set, or false if it is empty.
func (p *Set) Min() (uint, bool) {
	if i := NextSetBit(p.words, 0); i >= 0 {
		return uint(i), true
	}
	//
	return 0, false
}

// Max returns the largest element of this set, or false if it is empty.
func (p *Set) Max() (uint, bool) {
	if i := PreviousSetBit(p.words, Capacity(p.words)-1); i >= 0 {
		return uint(i), true
	}
	//
	return 0, false
}

// All returns an iterator over the elements of this set in ascending order.
func (p *Set) All() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for i := NextSetBit(p.words, 0); i >= 0; i = NextSetBit(p.words, i+1) {
			if !yield(uint(i)) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements of this set in descending
// order.
func (p *Set) Backward() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for i := PreviousSetBit(p.words, Capacity(p.words)-1); i >= 0; i = PreviousSetBit(p.words, i-1) {
			if !yield(uint(i)) {
				return
			}
		}
	}
}

func (p *Set) String() string {
	var (
		builder strings.Builder
		first   = true
	)
	//
	builder.WriteString("[")
	//
	for value := range p.All() {
		if !first {
			builder.WriteString(", ")
		}
		//
		first = false
		//
		builder.WriteString(fmt.Sprintf("%d", value))
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

// Ensure this set has at least n words.
func (p *Set) grow(n uint) {
	if m := uint(len(p.words)); m < n {
		p.words = append(p.words, make([]uint64, n-m)...)
	}
}

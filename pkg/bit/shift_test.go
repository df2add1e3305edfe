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
	"math"
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-bits/pkg/word"
)

func Test_Shift_Words_00(t *testing.T) {
	v := Ones(327)
	//
	checkInt(t, "cardinality", 263, Cardinality(ShiftRightI(v, 64)))
	OnesI(v, 327)
	checkInt(t, "cardinality", Capacity(v)-64, Cardinality(ShiftLeftI(v, 64)))
	OnesI(v, 327)
	checkInt(t, "cardinality", 255, Cardinality(ShiftRightI(v, 72)))
	OnesI(v, 327)
	checkInt(t, "cardinality", Capacity(v)-72, Cardinality(ShiftLeftI(v, 72)))
	OnesI(v, 327)
	checkInt(t, "cardinality", 262, Cardinality(ShiftLeftI(v, -65)))
	OnesI(v, 327)
	checkInt(t, "cardinality", Capacity(v)-65, Cardinality(ShiftRightI(v, -65)))
	// Shifting everything out
	OnesI(v, 327)
	checkInt(t, "cardinality", 0, Cardinality(ShiftRightI(v, 327)))
	OnesI(v, 327)
	checkInt(t, "cardinality", 0, Cardinality(ShiftLeftI(v, 384)))
	OnesI(v, 327)
	checkInt(t, "cardinality", 0, Cardinality(ShiftLeftI(v, 1000)))
}

func Test_Shift_Big_00(t *testing.T) {
	var (
		v = Make(64, 123)
		b = big.NewInt(123)
	)
	//
	checkBig(t, b, v)
	ShiftLeftI(v, 13)
	b.Lsh(b, 13)
	checkBig(t, b, v)
	ShiftRightI(v, 15)
	b.Rsh(b, 15)
	checkBig(t, b, v)
}

func Test_Shift_Big_01(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 8))
	//
	for i := 0; i < 500; i++ {
		var (
			n    = 1 + rnd.IntN(5)
			v    = randomWords(rnd, n)
			b    = toBig(v)
			off  = rnd.IntN(400)
			mask = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(n*word.Width)), big.NewInt(1))
		)
		//
		if rnd.IntN(2) == 0 {
			ShiftLeftI(v, off)
			b.Lsh(b, uint(off)).And(b, mask)
		} else {
			ShiftRightI(v, off)
			b.Rsh(b, uint(off))
		}
		//
		checkBig(t, b, v)
	}
}

func Test_Shift_Symmetry_00(t *testing.T) {
	rnd := rand.New(rand.NewPCG(9, 10))
	//
	for i := 0; i < 200; i++ {
		var (
			v   = randomWords(rnd, 1+rnd.IntN(4))
			off = rnd.IntN(300)
		)
		//
		checkEqual(t, ShiftLeftI(Copy(v), off), ShiftRightI(Copy(v), -off))
		checkEqual(t, ShiftRightI(Copy(v), off), ShiftLeftI(Copy(v), -off))
		// Left then right clears the high bits only
		expected := TruncateI(Copy(v), uint(max(0, Capacity(v)-off)))
		checkEqual(t, expected, ShiftRightI(ShiftLeftI(Copy(v), off), off))
	}
}

func Test_Shift_Symmetry_01(t *testing.T) {
	rnd := rand.New(rand.NewPCG(11, 12))
	//
	for _, off := range []int{math.MinInt, math.MinInt + 1, math.MaxInt, math.MaxInt - 63} {
		var (
			zero = Zero(128)
			v    = randomWords(rnd, 2)
		)
		//
		checkEqual(t, zero, ShiftLeftI(Copy(v), off))
		checkEqual(t, zero, ShiftRightI(Copy(v), off))
	}
	//
	v := Ones(128)
	checkEqual(t, ShiftLeftI(Copy(v), math.MinInt), ShiftRightI(Copy(v), math.MaxInt))
	checkEqual(t, ShiftRightI(Copy(v), math.MinInt), ShiftLeftI(Copy(v), math.MaxInt))
	checkEqual(t, ShiftLeftI(Copy(v), math.MinInt+1), ShiftRightI(Copy(v), math.MaxInt))
	// Offsets just inside the capacity still keep a bit
	checkIndices(t, ShiftLeftI(Ones(128), 127), "127")
	checkIndices(t, ShiftLeftI(Ones(128), -127), "0")
	checkIndices(t, ShiftRightI(Ones(128), -127), "127")
}

func Test_Shift_Combine_00(t *testing.T) {
	for _, off := range []int{math.MinInt, math.MaxInt} {
		checkInt(t, "or cardinality", 200, Cardinality(OrShiftI(Ones(200), Ones(200), off)))
		checkInt(t, "xor cardinality", 200, Cardinality(XorShiftI(Ones(200), Ones(200), off)))
		checkInt(t, "and cardinality", 0, Cardinality(AndShiftI(Ones(200), Ones(200), off)))
	}
}

func Test_Cycle_04(t *testing.T) {
	for _, length := range []uint{1, 3, 64, 100, 128} {
		var (
			// 2^63 modulo the length
			n = int((uint64(1) << 63) % uint64(length))
			v = Zero(128)
		)
		//
		SetI(v, 0)
		SetI(v, 127)
		// Rotating right by math.MinInt is rotating left by 2^63
		checkEqual(t, CycleLeftI(Copy(v), n, length), CycleRightI(Copy(v), math.MinInt, length))
		checkEqual(t, CycleRightI(Copy(v), n, length), CycleLeftI(Copy(v), math.MinInt, length))
		checkEqual(t, v, CycleRightI(CycleLeftI(Copy(v), math.MinInt, length), math.MinInt, length))
	}
}

func Test_Cycle_00(t *testing.T) {
	for _, length := range []uint{1, 7, 63, 64, 65, 128, 200, 256} {
		for _, shift := range []int{0, 1, 5, 63, 64, 65, 129, -1, -70, 1000} {
			var (
				v = Zero(256)
				s = uint(((shift % int(length)) + int(length)) % int(length))
			)
			// Single bit moves to the expected position
			SetI(v, 0)
			SetI(v, 255)
			CycleLeftI(v, shift, length)
			//
			if length == 256 {
				checkIndices2(t, v, s, (255+s)%256)
			} else {
				checkIndices2(t, v, s, 255)
			}
		}
	}
}

func Test_Cycle_01(t *testing.T) {
	rnd := rand.New(rand.NewPCG(11, 12))
	//
	for i := 0; i < 200; i++ {
		var (
			v      = randomWords(rnd, 1+rnd.IntN(4))
			length = uint(rnd.IntN(Capacity(v) + 1))
			shift  = rnd.IntN(1000) - 500
			c      = CycleLeftI(Copy(v), shift, length)
		)
		// Round trip
		checkEqual(t, v, CycleRightI(Copy(c), shift, length))
		checkEqual(t, CycleRightI(Copy(v), -shift, length), c)
		// Bits at or above length are untouched
		for j := length; j < uint(Capacity(v)); j++ {
			if Get(v, j) != Get(c, j) {
				t.Errorf("bit %d changed in rotation of %d bits", j, length)
			}
		}
		//
		checkInt(t, "cardinality", Cardinality(v), Cardinality(c))
	}
}

func Test_Cycle_02(t *testing.T) {
	rnd := rand.New(rand.NewPCG(13, 14))
	// Single word arrays agree with single words
	for i := 0; i < 200; i++ {
		var (
			w      = rnd.Uint64()
			length = rnd.UintN(65)
			shift  = rnd.IntN(200) - 100
		)
		//
		checkWord(t, word.CycleLeftC(w, shift, length), CycleLeftI(Make(64, w), shift, length)[0])
		checkWord(t, word.CycleRightC(w, shift, length), CycleRightI(Make(64, w), shift, length)[0])
	}
}

func Test_Cycle_03(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("rotation beyond capacity should panic")
		}
	}()
	//
	CycleLeftI(Zero(64), 1, 65)
}

// ===================================================================
// Test Helpers
// ===================================================================

func toBig(v []uint64) *big.Int {
	b := new(big.Int)
	//
	for i := len(v) - 1; i >= 0; i-- {
		b.Lsh(b, word.Width)
		b.Or(b, new(big.Int).SetUint64(v[i]))
	}
	//
	return b
}

func checkBig(t *testing.T, expected *big.Int, actual []uint64) {
	t.Helper()
	//
	if s := ToString(actual); s != expected.Text(2) {
		t.Errorf("expected %s, got %s", expected.Text(2), s)
	}
}

func checkIndices2(t *testing.T, v []uint64, a uint, b uint) {
	t.Helper()
	//
	if Cardinality(v) != 2 || !Get(v, a) || !Get(v, b) {
		t.Errorf("expected bits {%d,%d}, got {%s}", a, b, ToIndexString(v, ",", 0))
	}
}

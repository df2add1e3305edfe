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
	"slices"
	"testing"
)

func Test_Set_00(t *testing.T) {
	check_Set_Insert(t, 5, 10, 0)
}

func Test_Set_01(t *testing.T) {
	// Really hammer it.
	for i := uint64(0); i < 1000; i++ {
		check_Set_Insert(t, 10, 128, i)
	}
}

func Test_Set_02(t *testing.T) {
	check_Set_Insert(t, 100, 256, 1)
}

func Test_Set_03(t *testing.T) {
	check_Set_Insert(t, 1000, 512, 2)
}

func Test_Set_04(t *testing.T) {
	check_Set_Insert(t, 100000, 1024, 3)
}

func Test_Set_Ops_00(t *testing.T) {
	var x, y Set
	//
	x.InsertAll(1, 5, 200)
	y.InsertAll(5, 7)
	//
	if !x.Union(y) || x.Union(y) {
		t.Errorf("unexpected union change")
	}
	//
	checkString(t, "[1, 5, 7, 200]", x.String())
	//
	if !x.Difference(y) || x.Difference(y) {
		t.Errorf("unexpected difference change")
	}
	//
	checkString(t, "[1, 200]", x.String())
	//
	x.Insert(5)
	//
	if !x.Intersect(y) || x.Intersect(y) {
		t.Errorf("unexpected intersection change")
	}
	//
	checkString(t, "[5]", x.String())
	//
	x.Remove(5)
	x.Remove(1000)
	//
	if !x.IsEmpty() || x.Count() != 0 {
		t.Errorf("expected empty set, got %s", x.String())
	}
}

func Test_Set_Ops_01(t *testing.T) {
	var (
		x = NewSet(10)
		c Set
	)
	//
	if _, ok := x.Min(); ok {
		t.Errorf("empty set has minimum")
	} else if _, ok := x.Max(); ok {
		t.Errorf("empty set has maximum")
	}
	//
	x.InsertAll(300, 4, 64, 63)
	c = x.Clone()
	c.Insert(1000)
	//
	if x.Contains(1000) {
		t.Errorf("clone aliases original")
	}
	//
	if lo, _ := x.Min(); lo != 4 {
		t.Errorf("expected minimum 4, got %d", lo)
	} else if hi, _ := x.Max(); hi != 300 {
		t.Errorf("expected maximum 300, got %d", hi)
	}
	//
	if items := slices.Collect(x.All()); !slices.Equal(items, []uint{4, 63, 64, 300}) {
		t.Errorf("unexpected iteration %v", items)
	} else if items := slices.Collect(x.Backward()); !slices.Equal(items, []uint{300, 64, 63, 4}) {
		t.Errorf("unexpected backward iteration %v", items)
	}
	// Early termination
	for v := range x.All() {
		if v != 4 {
			t.Errorf("unexpected item %d", v)
		}
		//
		break
	}
	//
	checkIndices(t, x.Words(), "4,63,64,300")
}

// ===================================================================
// Test Helpers
// ===================================================================

func generateRandomUints(n, m uint, seed uint64) []uint {
	var (
		rnd   = rand.New(rand.NewPCG(seed, 0))
		items = make([]uint, n)
	)
	//
	for i := uint(0); i < n; i++ {
		items[i] = rnd.UintN(m)
	}
	//
	return items
}

func countUniqueItems(items []uint) uint {
	count := uint(0)
	counts := make(map[uint]bool)
	//
	for _, val := range items {
		if _, ok := counts[val]; !ok {
			count++
			counts[val] = true
		}
	}
	//
	return count
}

func check_Set_Insert(t *testing.T, n uint, m uint, seed uint64) {
	var iset Set
	//
	items := generateRandomUints(n, m, seed)
	count := countUniqueItems(items)
	bset := toSet(items)
	iset.Union(bset)
	//
	if bset.Count() != count {
		t.Errorf("unexpected number of items (%d vs %d) (insert)", bset.Count(), count)
	} else if c := uint(len(slices.Collect(bset.All()))); c != count {
		t.Errorf("unexpected number of items (%d vs %d) (iterator)", c, count)
	}
	//
	if iset.Count() != count {
		t.Errorf("unexpected number of items (%d vs %d) (union)", iset.Count(), count)
	}
	//
	for i := uint(0); i < m; i++ {
		l := slices.Contains(items, i)
		r := bset.Contains(i)
		s := iset.Contains(i)
		// Check set
		if !l && r {
			t.Errorf("unexpected item %d (insert)", i)
		} else if l && !r {
			t.Errorf("missing item %d (insert)", i)
		}
		// Check iset
		if !l && s {
			t.Errorf("unexpected item %d (union)", i)
		} else if l && !s {
			t.Errorf("missing item %d (union)", i)
		}
	}
	//
	for ith := range bset.All() {
		if !slices.Contains(items, ith) {
			t.Errorf("unexpected item %d (iterator)", ith)
		}
	}
}

func toSet(items []uint) Set {
	set := Set{}
	for _, v := range items {
		set.Insert(v)
	}

	return set
}

// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dictionary

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func TestNextPrime(t *testing.T) {
	cases := map[int]int{
		-5: 3,
		0:  3,
		2:  3,
		3:  3,
		4:  5,
		19: 19,
		20: 23,
		38: 41,
		90: 97,
	}
	for in, want := range cases {
		if got := nextPrime(in); got != want {
			t.Errorf("nextPrime(%d) = %d; want %d", in, got, want)
		}
	}
}

func TestChainedHashTableGrowth(t *testing.T) {
	table, err := NewChainedHashTable[int, int]()
	if err != nil {
		t.Fatal(err)
	}
	if table.BucketCount() != DefaultBucketCount {
		t.Fatalf("BucketCount() = %d; want %d", table.BucketCount(), DefaultBucketCount)
	}

	for k := 0; k < 1000; k++ {
		if err := table.Insert(E(k, k)); err != nil {
			t.Fatal(err)
		}
		if table.LoadFactor() > table.MaxLoadFactor() {
			t.Fatalf("load factor %v exceeds %v after %d inserts", table.LoadFactor(), table.MaxLoadFactor(), k+1)
		}
		if !isPrime(table.BucketCount()) {
			t.Fatalf("bucket count %d is not prime", table.BucketCount())
		}
	}

	total := 0
	for b := 0; b < table.BucketCount(); b++ {
		n, err := table.BucketSize(b)
		if err != nil {
			t.Fatal(err)
		}
		total += n
	}
	if total != 1000 || table.Len() != 1000 {
		t.Errorf("bucket sizes sum to %d, Len() = %d; want 1000", total, table.Len())
	}
	for k := 0; k < 1000; k++ {
		if v, err := table.At(k); err != nil || v != k {
			t.Fatalf("At(%d) = %d, %v", k, v, err)
		}
	}
}

func TestChainedHashTableFirstRehash(t *testing.T) {
	table, _ := NewChainedHashTable[int, string]()
	for k := 0; k < 19; k++ {
		table.Insert(E(k, ""))
	}
	if table.BucketCount() != 19 {
		t.Fatalf("BucketCount() = %d before overflow; want 19", table.BucketCount())
	}
	table.Insert(E(19, ""))
	if table.BucketCount() != 41 {
		t.Errorf("BucketCount() = %d after overflow; want 41", table.BucketCount())
	}
}

func TestChainedHashTableSetMaxLoadFactor(t *testing.T) {
	table, _ := NewChainedHashTable[string, int]()
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		table.Insert(E(k, 1))
	}

	testCases := []struct {
		name    string
		factor  float64
		wantErr bool
	}{
		{"zero", 0, true},
		{"negative", -1, true},
		{"shrink threshold", 0.25, false},
		{"relax threshold", 4, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			before := table.MaxLoadFactor()
			err := table.SetMaxLoadFactor(tc.factor)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidArgument) {
					t.Fatalf("SetMaxLoadFactor(%v) = %v; want ErrInvalidArgument", tc.factor, err)
				}
				if table.MaxLoadFactor() != before {
					t.Errorf("max load factor changed on error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if table.LoadFactor() > tc.factor {
				t.Errorf("load factor %v exceeds new max %v", table.LoadFactor(), tc.factor)
			}
		})
	}
}

func TestChainedHashTableBucketSizeOutOfRange(t *testing.T) {
	table, _ := NewChainedHashTable[string, int]()
	for _, n := range []int{-1, table.BucketCount()} {
		if _, err := table.BucketSize(n); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("BucketSize(%d) error = %v; want ErrInvalidArgument", n, err)
		}
	}
}

func TestChainedHashTableCollisions(t *testing.T) {
	constant := func(string) uint64 { return 4 }
	table, _ := NewChainedHashTable[string, int](WithHasher[string](constant), WithMaxLoadFactor[string](10))
	for _, k := range []string{"a", "b", "c"} {
		table.Insert(E(k, 0))
	}
	if got := table.Stats().Collisions; got != 2 {
		t.Errorf("Collisions = %d; want 2", got)
	}
	if n, _ := table.BucketSize(4); n != 3 {
		t.Errorf("BucketSize(4) = %d; want 3", n)
	}
	table.Remove("b")
	if table.Contains("b") || !table.Contains("a") || !table.Contains("c") {
		t.Errorf("Remove touched the wrong entry")
	}
}

func TestChainedHashTableReserve(t *testing.T) {
	table, _ := NewChainedHashTable[int, int]()
	table.Reserve(100)
	if table.BucketCount() < 100 || !isPrime(table.BucketCount()) {
		t.Errorf("BucketCount() = %d after Reserve(100)", table.BucketCount())
	}
	m := table.BucketCount()
	table.Rehash(5)
	if table.BucketCount() != m {
		t.Errorf("Rehash to a smaller size changed the bucket count")
	}
}

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

package pqueue

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/cockroachdb/errors"
)

func TestPopOrder(t *testing.T) {
	testCases := []struct {
		name  string
		items []int
	}{
		{"empty", nil},
		{"single", []int{4}},
		{"ascending", []int{1, 2, 3, 4, 5}},
		{"descending", []int{5, 4, 3, 2, 1}},
		{"duplicates", []int{3, 1, 3, 2, 1, 3}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := NewOrdered(tc.items...)
			want := slices.Clone(tc.items)
			slices.Sort(want)
			slices.Reverse(want)

			var got []int
			for !q.Empty() {
				v, err := q.Pop()
				if err != nil {
					t.Fatal(err)
				}
				got = append(got, v)
			}
			if !slices.Equal(got, want) {
				t.Errorf("pop order = %v; want %v", got, want)
			}
		})
	}
}

func TestPushPeek(t *testing.T) {
	q := New(func(a, b string) bool { return len(a) < len(b) })
	for _, w := range []string{"aa", "a", "aaaa", "aaa"} {
		q.Push(w)
	}
	if top, _ := q.Peek(); top != "aaaa" {
		t.Errorf("Peek() = %q; want aaaa", top)
	}
	if q.Len() != 4 {
		t.Errorf("Len() = %d; want 4", q.Len())
	}
	q.Clear()
	if _, err := q.Peek(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Peek() on empty queue = %v; want ErrEmpty", err)
	}
	if _, err := q.Pop(); !errors.Is(err, ErrEmpty) {
		t.Errorf("Pop() on empty queue = %v; want ErrEmpty", err)
	}
}

func TestRemove(t *testing.T) {
	q := NewOrdered(9, 7, 8, 1, 2, 3)
	if _, err := q.Remove(10); err == nil {
		t.Errorf("Remove(10) succeeded on a 6-element queue")
	}
	if _, err := q.Remove(2); err != nil {
		t.Fatal(err)
	}
	prev := 100
	for !q.Empty() {
		v, _ := q.Pop()
		if v > prev {
			t.Fatalf("heap order broken after Remove: %d after %d", v, prev)
		}
		prev = v
	}
}

func TestHeapSort(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	s := make([]int, 200)
	for i := range s {
		s[i] = r.Intn(1000)
	}
	HeapSort(s, func(a, b int) bool { return a < b })
	if !slices.IsSorted(s) {
		t.Errorf("HeapSort left the slice unsorted: %v", s)
	}
}

func TestSwap(t *testing.T) {
	a := NewOrdered(1, 2)
	b := NewOrdered(5)
	a.Swap(b)
	if a.Len() != 1 || b.Len() != 2 {
		t.Errorf("Swap lengths = %d, %d; want 1, 2", a.Len(), b.Len())
	}
}

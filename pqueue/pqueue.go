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

// Package pqueue provides a binary max-heap ordered by a caller-supplied
// less function.
package pqueue

import (
	"cmp"

	"github.com/cockroachdb/errors"
)

// ErrEmpty is returned by Peek and Pop on an empty queue.
var ErrEmpty = errors.New("priority queue is empty")

// PriorityQueue pops the greatest element first according to less.
type PriorityQueue[T any] struct {
	items []T
	less  func(a, b T) bool
}

// New builds a queue from items in linear time. items is copied.
func New[T any](less func(a, b T) bool, items ...T) *PriorityQueue[T] {
	q := &PriorityQueue[T]{
		items: append([]T(nil), items...),
		less:  less,
	}
	q.init()
	return q
}

// NewOrdered builds a max-queue over naturally ordered values.
func NewOrdered[T cmp.Ordered](items ...T) *PriorityQueue[T] {
	return New(cmp.Less[T], items...)
}

func (q *PriorityQueue[T]) Len() int { return len(q.items) }

func (q *PriorityQueue[T]) Empty() bool { return len(q.items) == 0 }

// Clear empties the queue, keeping its capacity.
func (q *PriorityQueue[T]) Clear() {
	clear(q.items)
	q.items = q.items[:0]
}

// Reserve grows capacity to hold at least n elements.
func (q *PriorityQueue[T]) Reserve(n int) {
	if n > cap(q.items) {
		items := make([]T, len(q.items), n)
		copy(items, q.items)
		q.items = items
	}
}

func (q *PriorityQueue[T]) Push(v T) {
	q.items = append(q.items, v)
	q.up(len(q.items) - 1)
}

// Peek returns the greatest element without removing it.
func (q *PriorityQueue[T]) Peek() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.items[0], nil
}

// Pop removes and returns the greatest element.
func (q *PriorityQueue[T]) Pop() (T, error) {
	if len(q.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.Remove(0)
}

// Remove deletes the element at heap position i.
func (q *PriorityQueue[T]) Remove(i int) (T, error) {
	n := len(q.items) - 1
	if i < 0 || i > n {
		var zero T
		return zero, errors.Newf("heap index %d out of range [0, %d)", i, n+1)
	}
	v := q.items[i]
	if i != n {
		q.swap(i, n)
	}
	var zero T
	q.items[n] = zero
	q.items = q.items[:n]
	if i < n {
		if !q.down(i, n) {
			q.up(i)
		}
	}
	return v, nil
}

// Swap exchanges the contents of q and other.
func (q *PriorityQueue[T]) Swap(other *PriorityQueue[T]) {
	*q, *other = *other, *q
}

// HeapSort sorts s in ascending order according to less.
func HeapSort[T any](s []T, less func(a, b T) bool) {
	q := &PriorityQueue[T]{items: s, less: less}
	q.init()
	for n := len(s) - 1; n > 0; n-- {
		q.swap(0, n)
		q.down(0, n)
	}
}

func (q *PriorityQueue[T]) init() {
	n := len(q.items)
	for i := n/2 - 1; i >= 0; i-- {
		q.down(i, n)
	}
}

func (q *PriorityQueue[T]) swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
}

func (q *PriorityQueue[T]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.less(q.items[i], q.items[j]) {
			break
		}
		q.swap(i, j)
		j = i
	}
}

// down sifts the element at i0 within items[:n] and reports whether it moved.
func (q *PriorityQueue[T]) down(i0, n int) bool {
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.less(q.items[j1], q.items[j2]) {
			j = j2 // right child
		}
		if !q.less(q.items[i], q.items[j]) {
			break
		}
		q.swap(i, j)
		i = j
	}
	return i > i0
}

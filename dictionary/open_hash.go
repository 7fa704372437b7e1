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
	"cmp"
	"fmt"
	"io"
	"iter"

	"github.com/cockroachdb/errors"
)

type slotStatus uint8

const (
	slotEmpty slotStatus = iota
	slotActive
	slotDeleted
)

type slot[K any, V any] struct {
	entry  Entry[K, V]
	status slotStatus
}

// OpenHashTable resolves collisions with quadratic probing: attempt i for
// key k visits slot (hash(k) + i*i) mod BucketCount. Removed entries leave
// a tombstone so that probe sequences passing through them stay intact.
type OpenHashTable[K cmp.Ordered, V any] struct {
	slots       []slot[K, V]
	size        int
	maxLoad     float64
	hash        HashFunc[K]
	comparisons int64
	collisions  int64
}

var _ Dictionary[string, int] = (*OpenHashTable[string, int])(nil)

// NewOpenHashTable builds an empty table. It fails with ErrInvalidArgument
// for a non-positive max load factor.
func NewOpenHashTable[K cmp.Ordered, V any](opts ...Option[K]) (*OpenHashTable[K, V], error) {
	o, err := buildOptions(DefaultOpenMaxLoad, opts)
	if err != nil {
		return nil, err
	}
	return &OpenHashTable[K, V]{
		slots:   make([]slot[K, V], o.BucketCount),
		maxLoad: o.MaxLoadFactor,
		hash:    o.Hasher,
	}, nil
}

func (t *OpenHashTable[K, V]) Kind() Kind { return OpenAddressingHash }

func (t *OpenHashTable[K, V]) Len() int { return t.size }

func (t *OpenHashTable[K, V]) Empty() bool { return t.size == 0 }

func (t *OpenHashTable[K, V]) Stats() Stats {
	return Stats{Comparisons: t.comparisons, Collisions: t.collisions}
}

// Collisions counts the occupied, non-matching slots met while inserting.
func (t *OpenHashTable[K, V]) Collisions() int64 { return t.collisions }

func (t *OpenHashTable[K, V]) BucketCount() int { return len(t.slots) }

// Bucket returns the home slot of key, the first index of its probe sequence.
func (t *OpenHashTable[K, V]) Bucket(key K) int { return t.hashCode(key, 0) }

func (t *OpenHashTable[K, V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.slots))
}

func (t *OpenHashTable[K, V]) MaxLoadFactor() float64 { return t.maxLoad }

// SetMaxLoadFactor changes the rehash threshold and grows the table at
// once if the current load already exceeds it.
func (t *OpenHashTable[K, V]) SetMaxLoadFactor(f float64) error {
	if f <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "max load factor must be greater than 0, got %v", f)
	}
	t.maxLoad = f
	if t.LoadFactor() > t.maxLoad {
		t.Reserve(t.size)
	}
	return nil
}

func (t *OpenHashTable[K, V]) hashCode(key K, attempt int) int {
	m := uint64(len(t.slots))
	i := uint64(attempt)
	return int((t.hash(key)%m + (i*i)%m) % m)
}

// findIndex walks the probe sequence of key until it meets an empty slot
// (absent) or an active slot holding key. Tombstones do not stop the walk.
func (t *OpenHashTable[K, V]) findIndex(key K) int {
	for i := 0; i < len(t.slots); i++ {
		idx := t.hashCode(key, i)
		s := &t.slots[idx]
		if s.status == slotEmpty {
			return -1
		}
		if s.status == slotActive {
			t.comparisons++
			if s.entry.Key == key {
				return idx
			}
		}
	}
	return -1
}

// Insert stores e unless its key is present. It returns ErrTableFull when
// a full probe cycle finds neither an empty slot nor a tombstone.
func (t *OpenHashTable[K, V]) Insert(e Entry[K, V]) error {
	_, err := t.insert(e)
	return err
}

// insert returns the slot index holding e.Key, new or existing.
func (t *OpenHashTable[K, V]) insert(e Entry[K, V]) (int, error) {
	if float64(t.size+1) > t.maxLoad*float64(len(t.slots)) {
		if idx := t.findIndex(e.Key); idx >= 0 {
			return idx, nil
		}
		for float64(t.size+1) > t.maxLoad*float64(len(t.slots)) {
			t.Rehash(2 * len(t.slots))
		}
	}

	target, firstDeleted := -1, -1
	for i := 0; i < len(t.slots); i++ {
		idx := t.hashCode(e.Key, i)
		s := &t.slots[idx]
		switch s.status {
		case slotEmpty:
			target = idx
		case slotActive:
			t.comparisons++
			if s.entry.Key == e.Key {
				return idx, nil
			}
			t.collisions++
			continue
		case slotDeleted:
			if firstDeleted < 0 {
				firstDeleted = idx
			}
			continue
		}
		break
	}
	if firstDeleted >= 0 {
		target = firstDeleted
	}
	if target < 0 {
		return -1, errors.Wrapf(ErrTableFull, "no free slot for %v in %d slots", e.Key, len(t.slots))
	}
	t.slots[target] = slot[K, V]{entry: e, status: slotActive}
	t.size++
	return target, nil
}

// Rehash resizes the table to the smallest prime >= n, if that is larger
// than the current slot count, and reinserts every active entry. Tombstones
// are dropped. A probe sequence covers only about half of the slots, so when
// some entry finds no empty slot the table moves to the next prime and
// starts over. No entry is ever lost.
func (t *OpenHashTable[K, V]) Rehash(n int) {
	m := nextPrime(n)
	if m <= len(t.slots) {
		return
	}
	old := t.slots
	for !t.reinsert(old, m) {
		m = nextPrime(m + 1)
	}
}

// reinsert places the active entries of old into m fresh slots and reports
// whether every one of them found a place.
func (t *OpenHashTable[K, V]) reinsert(old []slot[K, V], m int) bool {
	t.slots = make([]slot[K, V], m)
	for _, s := range old {
		if s.status != slotActive {
			continue
		}
		placed := false
		for i := 0; i < m && !placed; i++ {
			idx := t.hashCode(s.entry.Key, i)
			if t.slots[idx].status == slotEmpty {
				t.slots[idx] = s
				placed = true
			}
		}
		if !placed {
			return false
		}
	}
	return true
}

// Reserve grows the table so that n entries fit under the max load factor.
func (t *OpenHashTable[K, V]) Reserve(n int) {
	if float64(n) > float64(len(t.slots))*t.maxLoad {
		t.Rehash(int(float64(n)/t.maxLoad) + 1)
	}
}

// Remove marks the slot of key as deleted.
func (t *OpenHashTable[K, V]) Remove(key K) {
	idx := t.findIndex(key)
	if idx < 0 {
		return
	}
	var zero Entry[K, V]
	t.slots[idx] = slot[K, V]{entry: zero, status: slotDeleted}
	t.size--
}

func (t *OpenHashTable[K, V]) Contains(key K) bool {
	return t.findIndex(key) >= 0
}

func (t *OpenHashTable[K, V]) At(key K) (V, error) {
	idx := t.findIndex(key)
	if idx < 0 {
		var zero V
		return zero, keyNotFound(key, "open hash table")
	}
	return t.slots[idx].entry.Value, nil
}

func (t *OpenHashTable[K, V]) Update(e Entry[K, V]) error {
	idx := t.findIndex(e.Key)
	if idx < 0 {
		return keyNotFound(e.Key, "open hash table")
	}
	t.slots[idx].entry.Value = e.Value
	return nil
}

func (t *OpenHashTable[K, V]) Index(key K) (*V, error) {
	idx := t.findIndex(key)
	if idx < 0 {
		var zero V
		var err error
		if idx, err = t.insert(Entry[K, V]{Key: key, Value: zero}); err != nil {
			return nil, err
		}
	}
	return &t.slots[idx].entry.Value, nil
}

// Clear empties every slot, tombstones included, keeping the slot count.
func (t *OpenHashTable[K, V]) Clear() {
	clear(t.slots)
	t.size = 0
}

func (t *OpenHashTable[K, V]) Clone() Dictionary[K, V] {
	c := *t
	c.slots = make([]slot[K, V], len(t.slots))
	copy(c.slots, t.slots)
	return &c
}

// Iterator scans active slots in index order.
func (t *OpenHashTable[K, V]) Iterator() Iterator[K, V] {
	return &openIterator[K, V]{table: t, pos: -1}
}

func (t *OpenHashTable[K, V]) All() iter.Seq2[K, V] {
	return seq(t.Iterator)
}

func (t *OpenHashTable[K, V]) ForEach(fn func(key K, value V)) {
	for i := range t.slots {
		if t.slots[i].status == slotActive {
			fn(t.slots[i].entry.Key, t.slots[i].entry.Value)
		}
	}
}

func (t *OpenHashTable[K, V]) Print(w io.Writer) {
	t.ForEach(func(k K, v V) {
		fmt.Fprintf(w, "[%v, %v]\n", k, v)
	})
}

type openIterator[K cmp.Ordered, V any] struct {
	table *OpenHashTable[K, V]
	pos   int
}

func (it *openIterator[K, V]) Next() bool {
	for it.pos++; it.pos < len(it.table.slots); it.pos++ {
		if it.table.slots[it.pos].status == slotActive {
			return true
		}
	}
	return false
}

func (it *openIterator[K, V]) Key() K { return it.table.slots[it.pos].entry.Key }

func (it *openIterator[K, V]) Value() V { return it.table.slots[it.pos].entry.Value }

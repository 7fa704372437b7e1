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
	"slices"

	"github.com/cockroachdb/errors"
)

// ChainedHashTable resolves collisions by separate chaining. The bucket
// count is always prime and size/BucketCount never exceeds the max load
// factor after a mutation.
type ChainedHashTable[K cmp.Ordered, V any] struct {
	buckets     [][]Entry[K, V]
	size        int
	maxLoad     float64
	hash        HashFunc[K]
	comparisons int64
	collisions  int64
}

var _ Dictionary[string, int] = (*ChainedHashTable[string, int])(nil)

// NewChainedHashTable builds an empty table. It fails with
// ErrInvalidArgument for a non-positive max load factor.
func NewChainedHashTable[K cmp.Ordered, V any](opts ...Option[K]) (*ChainedHashTable[K, V], error) {
	o, err := buildOptions(DefaultChainedMaxLoad, opts)
	if err != nil {
		return nil, err
	}
	return &ChainedHashTable[K, V]{
		buckets: make([][]Entry[K, V], o.BucketCount),
		maxLoad: o.MaxLoadFactor,
		hash:    o.Hasher,
	}, nil
}

func (t *ChainedHashTable[K, V]) Kind() Kind { return ChainingHash }

func (t *ChainedHashTable[K, V]) Len() int { return t.size }

func (t *ChainedHashTable[K, V]) Empty() bool { return t.size == 0 }

func (t *ChainedHashTable[K, V]) Stats() Stats {
	return Stats{Comparisons: t.comparisons, Collisions: t.collisions}
}

func (t *ChainedHashTable[K, V]) BucketCount() int { return len(t.buckets) }

// BucketSize returns the number of entries in bucket n.
func (t *ChainedHashTable[K, V]) BucketSize(n int) (int, error) {
	if n < 0 || n >= len(t.buckets) {
		return 0, errors.Wrapf(ErrInvalidArgument, "bucket %d out of range [0, %d)", n, len(t.buckets))
	}
	return len(t.buckets[n]), nil
}

// Bucket returns the index of the bucket key maps to.
func (t *ChainedHashTable[K, V]) Bucket(key K) int { return t.hashCode(key) }

func (t *ChainedHashTable[K, V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

func (t *ChainedHashTable[K, V]) MaxLoadFactor() float64 { return t.maxLoad }

// SetMaxLoadFactor changes the rehash threshold and grows the table at
// once if the current load already exceeds it.
func (t *ChainedHashTable[K, V]) SetMaxLoadFactor(f float64) error {
	if f <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "max load factor must be greater than 0, got %v", f)
	}
	t.maxLoad = f
	if t.LoadFactor() > t.maxLoad {
		t.Reserve(t.size)
	}
	return nil
}

func (t *ChainedHashTable[K, V]) hashCode(key K) int {
	return int(t.hash(key) % uint64(len(t.buckets)))
}

// find returns the bucket index of key and its position inside the
// bucket, or -1.
func (t *ChainedHashTable[K, V]) find(key K) (int, int) {
	b := t.hashCode(key)
	for i := range t.buckets[b] {
		t.comparisons++
		if t.buckets[b][i].Key == key {
			return b, i
		}
	}
	return b, -1
}

// Insert appends e to its bucket unless the key is present, growing the
// table first when the new entry would exceed the max load factor.
func (t *ChainedHashTable[K, V]) Insert(e Entry[K, V]) error {
	if _, i := t.find(e.Key); i >= 0 {
		return nil
	}
	t.insertNew(e)
	return nil
}

// insertNew returns the bucket and position of the appended entry.
func (t *ChainedHashTable[K, V]) insertNew(e Entry[K, V]) (int, int) {
	for float64(t.size+1) > t.maxLoad*float64(len(t.buckets)) {
		t.Rehash(2 * len(t.buckets))
	}
	b := t.hashCode(e.Key)
	if len(t.buckets[b]) > 0 {
		t.collisions++
	}
	t.buckets[b] = append(t.buckets[b], e)
	t.size++
	return b, len(t.buckets[b]) - 1
}

// Rehash resizes the table to the smallest prime >= n, if that is larger
// than the current bucket count, and redistributes every entry.
func (t *ChainedHashTable[K, V]) Rehash(n int) {
	m := nextPrime(n)
	if m <= len(t.buckets) {
		return
	}
	old := t.buckets
	t.buckets = make([][]Entry[K, V], m)
	for _, bucket := range old {
		for _, e := range bucket {
			b := t.hashCode(e.Key)
			t.buckets[b] = append(t.buckets[b], e)
		}
	}
}

// Reserve grows the table so that n entries fit under the max load factor.
func (t *ChainedHashTable[K, V]) Reserve(n int) {
	if float64(n) > float64(len(t.buckets))*t.maxLoad {
		t.Rehash(int(float64(n)/t.maxLoad) + 1)
	}
}

func (t *ChainedHashTable[K, V]) Remove(key K) {
	b, i := t.find(key)
	if i < 0 {
		return
	}
	t.buckets[b] = slices.Delete(t.buckets[b], i, i+1)
	t.size--
}

func (t *ChainedHashTable[K, V]) Contains(key K) bool {
	_, i := t.find(key)
	return i >= 0
}

func (t *ChainedHashTable[K, V]) At(key K) (V, error) {
	b, i := t.find(key)
	if i < 0 {
		var zero V
		return zero, keyNotFound(key, "chained hash table")
	}
	return t.buckets[b][i].Value, nil
}

func (t *ChainedHashTable[K, V]) Update(e Entry[K, V]) error {
	b, i := t.find(e.Key)
	if i < 0 {
		return keyNotFound(e.Key, "chained hash table")
	}
	t.buckets[b][i].Value = e.Value
	return nil
}

func (t *ChainedHashTable[K, V]) Index(key K) (*V, error) {
	b, i := t.find(key)
	if i < 0 {
		var zero V
		b, i = t.insertNew(Entry[K, V]{Key: key, Value: zero})
	}
	return &t.buckets[b][i].Value, nil
}

// Clear drops every entry but keeps the bucket count.
func (t *ChainedHashTable[K, V]) Clear() {
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.size = 0
}

func (t *ChainedHashTable[K, V]) Clone() Dictionary[K, V] {
	c := *t
	c.buckets = make([][]Entry[K, V], len(t.buckets))
	for i, bucket := range t.buckets {
		if len(bucket) > 0 {
			c.buckets[i] = append([]Entry[K, V](nil), bucket...)
		}
	}
	return &c
}

// Iterator scans buckets in index order, entries in insertion order.
func (t *ChainedHashTable[K, V]) Iterator() Iterator[K, V] {
	return &chainedIterator[K, V]{table: t, bucket: 0, pos: -1}
}

func (t *ChainedHashTable[K, V]) All() iter.Seq2[K, V] {
	return seq(t.Iterator)
}

func (t *ChainedHashTable[K, V]) ForEach(fn func(key K, value V)) {
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			fn(e.Key, e.Value)
		}
	}
}

func (t *ChainedHashTable[K, V]) Print(w io.Writer) {
	t.ForEach(func(k K, v V) {
		fmt.Fprintf(w, "[%v, %v]\n", k, v)
	})
}

type chainedIterator[K cmp.Ordered, V any] struct {
	table  *ChainedHashTable[K, V]
	bucket int
	pos    int
}

func (it *chainedIterator[K, V]) Next() bool {
	it.pos++
	for it.bucket < len(it.table.buckets) {
		if it.pos < len(it.table.buckets[it.bucket]) {
			return true
		}
		it.bucket++
		it.pos = 0
	}
	return false
}

func (it *chainedIterator[K, V]) Key() K { return it.table.buckets[it.bucket][it.pos].Key }

func (it *chainedIterator[K, V]) Value() V { return it.table.buckets[it.bucket][it.pos].Value }

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

// Package dictionary provides four interchangeable key/value containers
// (AVL tree, red-black tree, chained hash table and open-addressing hash
// table) behind a single Dictionary interface.
//
// A dictionary instance is not safe for concurrent use. Callers that need
// parallelism give each goroutine its own instance.
package dictionary

import (
	"cmp"
	"io"
	"iter"
)

// Entry is a key/value pair stored in a dictionary.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// E is shorthand for building an Entry.
func E[K any, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// Stats holds the instrumentation counters of a dictionary. Trees report
// Comparisons and Rotations, hash tables report Comparisons and Collisions.
type Stats struct {
	Comparisons int64
	Rotations   int64
	Collisions  int64
}

// Dictionary is the capability set shared by every implementation.
type Dictionary[K cmp.Ordered, V any] interface {
	// Insert adds the entry. Inserting an existing key is a no-op and keeps
	// the stored value.
	Insert(e Entry[K, V]) error
	// Remove deletes key. Removing a missing key is a no-op.
	Remove(key K)
	// Update replaces the value of an existing key. It never creates a key
	// and returns ErrKeyNotFound when key is absent.
	Update(e Entry[K, V]) error
	Contains(key K) bool
	// At returns the value stored under key or ErrKeyNotFound.
	At(key K) (V, error)
	// Index returns a pointer to the value stored under key, inserting the
	// zero value first if key is absent. The pointer stays valid until the
	// next mutating call on the dictionary.
	Index(key K) (*V, error)
	Clear()
	Len() int
	Empty() bool
	// Print writes every entry, one per line, in iteration order.
	Print(w io.Writer)
	// ForEach visits every entry in iteration order. Trees visit keys in
	// ascending order, hash tables in bucket/slot order.
	ForEach(fn func(key K, value V))
	All() iter.Seq2[K, V]
	// Clone returns an independent deep copy.
	Clone() Dictionary[K, V]
	Stats() Stats
	Kind() Kind
}

// Increment adds one to the value stored under key, inserting it with a
// count of one if absent.
func Increment[K cmp.Ordered](d Dictionary[K, int], key K) error {
	p, err := d.Index(key)
	if err != nil {
		return err
	}
	*p++
	return nil
}

// Keys collects the keys of d in iteration order.
func Keys[K cmp.Ordered, V any](d Dictionary[K, V]) []K {
	keys := make([]K, 0, d.Len())
	d.ForEach(func(k K, _ V) {
		keys = append(keys, k)
	})
	return keys
}

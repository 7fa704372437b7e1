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
	"io"
	"iter"

	"github.com/cockroachdb/errors"
)

// Dynamic owns a single implementation picked at runtime and forwards
// every call to it.
type Dynamic[K cmp.Ordered, V any] struct {
	impl Dictionary[K, V]
}

var _ Dictionary[string, int] = (*Dynamic[string, int])(nil)

// NewDynamic builds a Dynamic over the implementation kind selects and
// inserts entries in order. Any factory or insertion error is reported as
// ErrConstructionFailure with the cause attached.
func NewDynamic[K cmp.Ordered, V any](kind Kind, entries []Entry[K, V], opts ...Option[K]) (*Dynamic[K, V], error) {
	impl, err := NewFrom[K, V](kind, entries, opts...)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "constructing %s dictionary", kind), ErrConstructionFailure)
	}
	if impl == nil {
		return nil, errors.Wrapf(ErrConstructionFailure, "factory returned no %s dictionary", kind)
	}
	return &Dynamic[K, V]{impl: impl}, nil
}

// Unwrap returns the boxed implementation.
func (d *Dynamic[K, V]) Unwrap() Dictionary[K, V] { return d.impl }

func (d *Dynamic[K, V]) Kind() Kind { return d.impl.Kind() }

func (d *Dynamic[K, V]) Insert(e Entry[K, V]) error { return d.impl.Insert(e) }

func (d *Dynamic[K, V]) Remove(key K) { d.impl.Remove(key) }

func (d *Dynamic[K, V]) Update(e Entry[K, V]) error { return d.impl.Update(e) }

func (d *Dynamic[K, V]) Contains(key K) bool { return d.impl.Contains(key) }

func (d *Dynamic[K, V]) At(key K) (V, error) { return d.impl.At(key) }

func (d *Dynamic[K, V]) Index(key K) (*V, error) { return d.impl.Index(key) }

func (d *Dynamic[K, V]) Clear() { d.impl.Clear() }

func (d *Dynamic[K, V]) Len() int { return d.impl.Len() }

func (d *Dynamic[K, V]) Empty() bool { return d.impl.Empty() }

func (d *Dynamic[K, V]) Print(w io.Writer) { d.impl.Print(w) }

func (d *Dynamic[K, V]) ForEach(fn func(key K, value V)) { d.impl.ForEach(fn) }

func (d *Dynamic[K, V]) All() iter.Seq2[K, V] { return d.impl.All() }

func (d *Dynamic[K, V]) Stats() Stats { return d.impl.Stats() }

// Clone deep-copies the boxed implementation into a new Dynamic.
func (d *Dynamic[K, V]) Clone() Dictionary[K, V] {
	return &Dynamic[K, V]{impl: d.impl.Clone()}
}

// Render draws the tree shape when the boxed implementation is a tree and
// reports whether it did.
func (d *Dynamic[K, V]) Render(w io.Writer) bool {
	r, ok := d.impl.(interface{ Render(io.Writer) })
	if ok {
		r.Render(w)
	}
	return ok
}

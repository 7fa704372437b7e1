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

	"github.com/cockroachdb/errors"
)

const (
	// DefaultBucketCount is the initial bucket/slot count of both hash tables.
	DefaultBucketCount = 19
	// DefaultChainedMaxLoad is the default max load factor of the chained table.
	DefaultChainedMaxLoad = 1.0
	// DefaultOpenMaxLoad is the default max load factor of the open table.
	DefaultOpenMaxLoad = 0.5
)

// Options configures hash table construction. Trees ignore it.
type Options[K cmp.Ordered] struct {
	BucketCount   int
	MaxLoadFactor float64
	Hasher        HashFunc[K]
}

// Option mutates Options.
type Option[K cmp.Ordered] func(*Options[K])

// WithBucketCount sets the initial bucket count; it is rounded up to a prime.
func WithBucketCount[K cmp.Ordered](n int) Option[K] {
	return func(o *Options[K]) { o.BucketCount = n }
}

// WithMaxLoadFactor sets the load factor that triggers a rehash.
func WithMaxLoadFactor[K cmp.Ordered](f float64) Option[K] {
	return func(o *Options[K]) { o.MaxLoadFactor = f }
}

// WithHasher replaces DefaultHash.
func WithHasher[K cmp.Ordered](h HashFunc[K]) Option[K] {
	return func(o *Options[K]) { o.Hasher = h }
}

func buildOptions[K cmp.Ordered](defaultLoad float64, opts []Option[K]) (Options[K], error) {
	o := Options[K]{
		BucketCount:   DefaultBucketCount,
		MaxLoadFactor: defaultLoad,
		Hasher:        DefaultHash[K],
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxLoadFactor <= 0 {
		return o, errors.Wrapf(ErrInvalidArgument, "max load factor must be greater than 0, got %v", o.MaxLoadFactor)
	}
	if o.BucketCount < 1 {
		o.BucketCount = 1
	}
	o.BucketCount = nextPrime(o.BucketCount)
	if o.Hasher == nil {
		o.Hasher = DefaultHash[K]
	}
	return o, nil
}

// New returns an empty dictionary backed by the structure kind selects.
func New[K cmp.Ordered, V any](kind Kind, opts ...Option[K]) (Dictionary[K, V], error) {
	switch kind {
	case AVL:
		return NewAVLTree[K, V](), nil
	case RBTree:
		return NewRedBlackTree[K, V](), nil
	case ChainingHash:
		return NewChainedHashTable[K, V](opts...)
	case OpenAddressingHash:
		return NewOpenHashTable[K, V](opts...)
	default:
		return nil, errors.Wrapf(ErrInvalidArgument, "unknown dictionary type %d", kind)
	}
}

// NewFrom is New followed by inserting entries in order.
func NewFrom[K cmp.Ordered, V any](kind Kind, entries []Entry[K, V], opts ...Option[K]) (Dictionary[K, V], error) {
	d, err := New[K, V](kind, opts...)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if err := d.Insert(e); err != nil {
			return nil, err
		}
	}
	return d, nil
}

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

import "github.com/cockroachdb/errors"

var (
	// ErrKeyNotFound is returned by At and Update when the key is absent.
	ErrKeyNotFound = errors.New("key not found")
	// ErrInvalidArgument is returned for an unknown structure kind or a
	// non-positive max load factor.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTableFull is returned by the open-addressing table when a full
	// probe cycle finds no empty or deleted slot.
	ErrTableFull = errors.New("hash table is full")
	// ErrConstructionFailure is returned when the factory yields no usable
	// dictionary.
	ErrConstructionFailure = errors.New("failed to create dictionary")
)

func keyNotFound[K any](key K, where string) error {
	return errors.Wrapf(ErrKeyNotFound, "%s: %v", where, key)
}

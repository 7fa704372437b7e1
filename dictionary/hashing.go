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
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// HashFunc maps a key to a 64-bit hash. Equal keys must hash equally.
type HashFunc[K any] func(K) uint64

// DefaultHash hashes any ordered key with xxhash. Strings are hashed
// directly; numeric keys are hashed over their 8-byte little-endian form.
// Named types hash like their underlying type.
func DefaultHash[K cmp.Ordered](key K) uint64 {
	if s, ok := any(key).(string); ok {
		return xxhash.Sum64String(s)
	}
	var buf [8]byte
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.String:
		return xxhash.Sum64String(v.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		binary.LittleEndian.PutUint64(buf[:], uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		binary.LittleEndian.PutUint64(buf[:], v.Uint())
	case reflect.Float32, reflect.Float64:
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(normalizeFloat(v.Float())))
	}
	return xxhash.Sum64(buf[:])
}

// -0 and +0 compare equal and must share a hash.
func normalizeFloat(f float64) float64 {
	if f == 0 {
		return 0
	}
	return f
}

// nextPrime returns the smallest prime >= x, and 3 for x <= 2.
func nextPrime(x int) int {
	if x <= 2 {
		return 3
	}
	if x%2 == 0 {
		x++
	}
	for !isOddPrime(x) {
		x += 2
	}
	return x
}

func isOddPrime(x int) bool {
	for i := 3; i*i <= x; i += 2 {
		if x%i == 0 {
			return false
		}
	}
	return true
}

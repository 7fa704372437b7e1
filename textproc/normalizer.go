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

package textproc

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/patrickmn/go-cache"
)

const (
	// Normalized tokens are kept for 30 minutes after their last write.
	DefaultNormalizeExpiration = 30 * time.Minute
	// Expired entries are purged every 5 minutes
	normalizeCacheCleanup = 5 * time.Minute
)

// wordPattern accepts letters (ASCII and Latin-1 accented) joined by
// single hyphens or apostrophes.
var wordPattern = regexp.MustCompile(`^[a-zà-ÿ]+(?:[-'][a-zà-ÿ]+)*$`)

// Normalizer turns raw whitespace-separated tokens into lowercase words.
// Results, rejections included, are memoized. It is safe for concurrent use.
type Normalizer struct {
	cache *cache.Cache
}

// NewNormalizer creates a Normalizer whose memo entries expire after
// expiration. A non-positive expiration keeps entries forever.
func NewNormalizer(expiration time.Duration) *Normalizer {
	if expiration <= 0 {
		return &Normalizer{cache: cache.New(cache.NoExpiration, 0)}
	}
	return &Normalizer{cache: cache.New(expiration, normalizeCacheCleanup)}
}

// Normalize lowercases raw, strips punctuation around it and returns the
// result if it is a word. It returns "" otherwise.
func (n *Normalizer) Normalize(raw string) string {
	if val, ok := n.cache.Get(raw); ok {
		return val.(string)
	}
	word := normalize(raw)
	// Use Set instead of Add to allow overwriting
	n.cache.Set(raw, word, cache.DefaultExpiration)
	return word
}

// Cached reports how many raw tokens are memoized.
func (n *Normalizer) Cached() int {
	return n.cache.ItemCount()
}

func normalize(raw string) string {
	word := strings.ToLower(strings.TrimFunc(raw, isEdgePunct))
	if !wordPattern.MatchString(word) {
		return ""
	}
	return word
}

// isEdgePunct matches what may surround a word in prose: quotes, commas,
// brackets, sentence punctuation.
func isEdgePunct(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

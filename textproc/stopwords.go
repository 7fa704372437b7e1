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
	"io"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/cybrota/wordcount/dictionary"
	"github.com/willf/bloom"
)

// DefaultStopwords is a short list of frequent English function words.
var DefaultStopwords = []string{
	"a", "about", "after", "all", "also", "an", "and", "any", "are", "as", "at",
	"be", "because", "been", "but", "by", "can", "could", "did", "do", "does",
	"for", "from", "had", "has", "have", "he", "her", "him", "his", "how", "i",
	"if", "in", "into", "is", "it", "its", "just", "me", "my", "no", "not", "of",
	"on", "or", "our", "out", "she", "so", "than", "that", "the", "their", "them",
	"then", "there", "these", "they", "this", "to", "up", "us", "was", "we",
	"were", "what", "when", "which", "who", "will", "with", "would", "you", "your",
}

const (
	stopwordsFalsePositiveRate = 0.01
	minStopwordsCapacity       = 64
)

// Stopwords is a set of words to drop from counts. A bloom filter answers
// most negative lookups; positives are confirmed against an exact set.
type Stopwords struct {
	filter *bloom.BloomFilter

	mu  sync.Mutex // guards set; lookups mutate its counters
	set dictionary.Dictionary[string, struct{}]
}

// NewStopwords builds a stopword set over words, which are normalized
// the same way as counted tokens.
func NewStopwords(words []string) (*Stopwords, error) {
	set, err := dictionary.New[string, struct{}](dictionary.ChainingHash)
	if err != nil {
		return nil, errors.Wrap(err, "creating stopword set")
	}
	s := &Stopwords{
		filter: bloom.NewWithEstimates(uint(max(len(words), minStopwordsCapacity)), stopwordsFalsePositiveRate),
		set:    set,
	}
	for _, w := range words {
		if w = normalize(w); w == "" {
			continue
		}
		s.filter.AddString(w)
		if err := s.set.Insert(dictionary.E(w, struct{}{})); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// LoadStopwords reads whitespace-separated stopwords from r.
func LoadStopwords(r io.Reader) (*Stopwords, error) {
	var words []string
	tok := NewTokenizer(r)
	for w := range tok.Words() {
		words = append(words, w)
	}
	if err := tok.Err(); err != nil {
		return nil, errors.Wrap(err, "reading stopwords")
	}
	return NewStopwords(words)
}

// Contains reports whether word is a stopword.
func (s *Stopwords) Contains(word string) bool {
	if s == nil || !s.filter.TestString(word) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Contains(word)
}

// Len returns the number of distinct stopwords.
func (s *Stopwords) Len() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set.Len()
}

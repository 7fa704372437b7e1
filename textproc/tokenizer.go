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

// Package textproc turns text into a stream of normalized words.
package textproc

import (
	"bufio"
	"io"
	"iter"

	"github.com/cockroachdb/errors"
)

// maxTokenSize bounds a single whitespace-separated token.
const maxTokenSize = 1 << 20

// Tokenizer reads whitespace-separated tokens from a reader and yields the
// ones that normalize to words. It is single-pass; to restart, build a new
// Tokenizer over a fresh reader.
type Tokenizer struct {
	scanner   *bufio.Scanner
	norm      *Normalizer
	stopwords *Stopwords
	scanned   int
	skipped   int
	err       error
}

// TokenizerOption configures a Tokenizer.
type TokenizerOption func(*Tokenizer)

// WithNormalizer shares a memoizing Normalizer between tokenizers.
func WithNormalizer(n *Normalizer) TokenizerOption {
	return func(t *Tokenizer) { t.norm = n }
}

// WithStopwords drops every word found in s.
func WithStopwords(s *Stopwords) TokenizerOption {
	return func(t *Tokenizer) { t.stopwords = s }
}

func NewTokenizer(r io.Reader, opts ...TokenizerOption) *Tokenizer {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)
	t := &Tokenizer{scanner: scanner}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Next returns the next word. It returns false at end of input or on a
// read error; check Err afterwards.
func (t *Tokenizer) Next() (string, bool) {
	for t.scanner.Scan() {
		t.scanned++
		raw := t.scanner.Text()
		var word string
		if t.norm != nil {
			word = t.norm.Normalize(raw)
		} else {
			word = normalize(raw)
		}
		if word == "" || t.stopwords.Contains(word) {
			t.skipped++
			continue
		}
		return word, true
	}
	if err := t.scanner.Err(); err != nil && t.err == nil {
		t.err = errors.Wrap(err, "scanning tokens")
	}
	return "", false
}

// Words adapts Next to a range-over-func sequence.
func (t *Tokenizer) Words() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			w, ok := t.Next()
			if !ok || !yield(w) {
				return
			}
		}
	}
}

func (t *Tokenizer) Err() error { return t.err }

// Scanned counts raw tokens read so far.
func (t *Tokenizer) Scanned() int { return t.scanned }

// Skipped counts raw tokens that were not words or were stopwords.
func (t *Tokenizer) Skipped() int { return t.skipped }

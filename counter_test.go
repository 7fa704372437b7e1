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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/cybrota/wordcount/dictionary"
	"github.com/cybrota/wordcount/textproc"
)

const sampleText = `The quick brown fox jumps over the lazy dog.
The dog sleeps; the fox doesn't. 42 foxes? No -- one fox.`

func TestCountWordsEveryStructureAgrees(t *testing.T) {
	src, err := readerSource("sample", strings.NewReader(sampleText))
	if err != nil {
		t.Fatal(err)
	}
	results, err := countWords(context.Background(), []source{src}, countOptions{
		Kinds:      dictionary.Kinds,
		Normalizer: textproc.NewNormalizer(0),
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(dictionary.Kinds) {
		t.Fatalf("got %d results; want %d", len(results), len(dictionary.Kinds))
	}

	want := map[string]int{"the": 4, "fox": 3, "dog": 2, "doesn't": 1, "no": 1, "one": 1}
	for i, r := range results {
		if r.Kind != dictionary.Kinds[i] {
			t.Errorf("result %d is %s; want %s", i, r.Kind, dictionary.Kinds[i])
		}
		for w, n := range want {
			if got, _ := r.Counts.At(w); got != n {
				t.Errorf("%s: count(%q) = %d; want %d", r.Kind, w, got, n)
			}
		}
		if r.Counts.Contains("42") || r.Counts.Contains("--") {
			t.Errorf("%s counted a non-word", r.Kind)
		}
		if r.Words != results[0].Words || r.Counts.Len() != results[0].Counts.Len() {
			t.Errorf("%s disagrees with %s", r.Kind, results[0].Kind)
		}
		if r.Skipped != 2 {
			t.Errorf("%s: skipped %d tokens; want 2", r.Kind, r.Skipped)
		}
	}
}

func TestCountWordsMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	var sources []source
	for i, body := range []string{"alpha beta", "beta gamma", "gamma gamma"} {
		path := filepath.Join(dir, string(rune('a'+i))+".txt")
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
		sources = append(sources, fileSource(path))
	}
	results, err := countWords(context.Background(), sources, countOptions{Kinds: []dictionary.Kind{dictionary.OpenAddressingHash}})
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := results[0].Counts.At("gamma"); got != 3 {
		t.Errorf("count(gamma) = %d; want 3", got)
	}
	if results[0].Words != 6 {
		t.Errorf("Words = %d; want 6", results[0].Words)
	}
}

func TestCountWordsStopwords(t *testing.T) {
	stop, err := textproc.NewStopwords([]string{"the"})
	if err != nil {
		t.Fatal(err)
	}
	src, _ := readerSource("sample", strings.NewReader(sampleText))
	results, err := countWords(context.Background(), []source{src}, countOptions{
		Kinds:     []dictionary.Kind{dictionary.AVL, dictionary.ChainingHash},
		Stopwords: stop,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range results {
		if r.Counts.Contains("the") {
			t.Errorf("%s counted a stopword", r.Kind)
		}
	}
}

func TestCountWordsErrors(t *testing.T) {
	if _, err := countWords(context.Background(), nil, countOptions{}); !errors.Is(err, dictionary.ErrInvalidArgument) {
		t.Errorf("no kinds: err = %v; want ErrInvalidArgument", err)
	}

	missing := fileSource(filepath.Join(t.TempDir(), "missing.txt"))
	_, err := countWords(context.Background(), []source{missing}, countOptions{Kinds: dictionary.Kinds})
	if err == nil || !strings.Contains(err.Error(), "missing.txt") {
		t.Errorf("missing file: err = %v", err)
	}

	src, _ := readerSource("sample", strings.NewReader(sampleText))
	_, err = countWords(context.Background(), []source{src}, countOptions{
		Kinds:         []dictionary.Kind{dictionary.ChainingHash},
		MaxLoadFactor: -1,
	})
	if err != nil {
		t.Errorf("non-positive load factor should fall back to the default, got %v", err)
	}
}

func TestCountWordsCancelled(t *testing.T) {
	words := strings.Repeat("word ", ctxCheckInterval*2)
	src, _ := readerSource("big", strings.NewReader(words))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := countWords(ctx, []source{src}, countOptions{Kinds: []dictionary.Kind{dictionary.RBTree}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v; want context.Canceled", err)
	}
}

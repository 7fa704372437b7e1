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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cybrota/wordcount/dictionary"
)

func newResult(t *testing.T, kind dictionary.Kind, words ...string) countResult {
	t.Helper()
	d, err := dictionary.NewDynamic[string, int](kind, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range words {
		if err := dictionary.Increment[string](d, w); err != nil {
			t.Fatal(err)
		}
	}
	return countResult{Kind: kind, Counts: d, Words: len(words), Elapsed: time.Millisecond}
}

func TestTopWords(t *testing.T) {
	words := strings.Fields("b a c a b a d")
	testCases := []struct {
		name string
		n    int
		want []wordCount
	}{
		{"top two", 2, []wordCount{{"a", 3}, {"b", 2}}},
		{"ties break alphabetically", 4, []wordCount{{"a", 3}, {"b", 2}, {"c", 1}, {"d", 1}}},
		{"zero means all", 0, []wordCount{{"a", 3}, {"b", 2}, {"c", 1}, {"d", 1}}},
		{"more than distinct", 10, []wordCount{{"a", 3}, {"b", 2}, {"c", 1}, {"d", 1}}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newResult(t, dictionary.ChainingHash, words...)
			got := topWords(r.Counts, tc.n)
			if len(got) != len(tc.want) {
				t.Fatalf("topWords = %v; want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("topWords[%d] = %v; want %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestRenderSummaryAndTop(t *testing.T) {
	results := []countResult{
		newResult(t, dictionary.AVL, "x", "y", "x"),
		newResult(t, dictionary.OpenAddressingHash, "x", "y", "x"),
	}
	var buf bytes.Buffer
	renderSummary(&buf, results)
	renderTop(&buf, topWords(results[0].Counts, 1))
	out := buf.String()
	for _, want := range []string{"STRUCTURE", "AVL", "OPEN_ADDRESSING_HASH", "Top 1 words", "WORD"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatTop(t *testing.T) {
	got := formatTop([]wordCount{{"a", 3}, {"b", 1}})
	if got != "a\t3\nb\t1\n" {
		t.Errorf("formatTop = %q", got)
	}
}

func TestWriteReportCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "reports")
	r := newResult(t, dictionary.RBTree, "pear", "apple", "pear")

	path, err := writeReport(dir, r)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "wordcount-rbtree.txt" {
		t.Errorf("report path = %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	body := string(data)
	if !strings.Contains(body, "# structure: RBTREE") || !strings.HasSuffix(body, "(apple, 1)\n(pear, 2)\n") {
		t.Errorf("unexpected report:\n%s", body)
	}
}

func TestWriteMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics", "wordcount.prom")
	results := []countResult{
		newResult(t, dictionary.AVL, "a", "b", "c"),
		newResult(t, dictionary.ChainingHash, "a", "b", "c"),
	}
	if err := writeMetrics(path, results); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	for _, want := range []string{
		`wordcount_distinct_words{structure="avl"} 3`,
		`wordcount_words{structure="chaining_hash"} 3`,
		"# TYPE wordcount_rotations gauge",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("metrics missing %q:\n%s", want, out)
		}
	}
}

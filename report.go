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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/cockroachdb/errors"
	"github.com/cybrota/wordcount/dictionary"
	"github.com/cybrota/wordcount/pqueue"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
)

type wordCount struct {
	Word  string
	Count int
}

// byFrequency orders higher counts first and breaks ties alphabetically.
func byFrequency(a, b wordCount) bool {
	if a.Count != b.Count {
		return a.Count < b.Count
	}
	return a.Word > b.Word
}

// topWords returns the n most frequent words of counts. n <= 0 returns all.
func topWords(counts dictionary.Dictionary[string, int], n int) []wordCount {
	items := make([]wordCount, 0, counts.Len())
	for w, c := range counts.All() {
		items = append(items, wordCount{Word: w, Count: c})
	}
	q := pqueue.New(byFrequency, items...)
	if n <= 0 || n > q.Len() {
		n = q.Len()
	}
	top := make([]wordCount, 0, n)
	for len(top) < n {
		wc, err := q.Pop()
		if err != nil {
			break
		}
		top = append(top, wc)
	}
	return top
}

func renderSummary(w io.Writer, results []countResult) {
	fmt.Fprintln(w, StyleHeading().Render("Structures"))
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Structure", "Words", "Distinct", "Skipped", "Comparisons", "Rotations", "Collisions", "Time"})
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range results {
		s := r.Counts.Stats()
		tbl.Append([]string{
			r.Kind.String(),
			strconv.Itoa(r.Words),
			strconv.Itoa(r.Counts.Len()),
			strconv.Itoa(r.Skipped),
			strconv.FormatInt(s.Comparisons, 10),
			strconv.FormatInt(s.Rotations, 10),
			strconv.FormatInt(s.Collisions, 10),
			r.Elapsed.Round(time.Microsecond).String(),
		})
	}
	tbl.Render()
}

func renderTop(w io.Writer, top []wordCount) {
	fmt.Fprintln(w, StyleHeading().Render(fmt.Sprintf("Top %d words", len(top))))
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"#", "Word", "Count"})
	for i, wc := range top {
		tbl.Append([]string{strconv.Itoa(i + 1), wc.Word, strconv.Itoa(wc.Count)})
	}
	tbl.Render()
}

// formatTop renders top as tab-separated lines for the clipboard.
func formatTop(top []wordCount) string {
	var b strings.Builder
	for _, wc := range top {
		fmt.Fprintf(&b, "%s\t%d\n", wc.Word, wc.Count)
	}
	return b.String()
}

func copyTopToClipboard(top []wordCount) error {
	if err := clipboard.WriteAll(formatTop(top)); err != nil {
		return errors.Wrap(err, "copying to clipboard")
	}
	return nil
}

// reportFileName is the per-structure report name inside the output dir.
func reportFileName(kind dictionary.Kind) string {
	return "wordcount-" + strings.ToLower(kind.String()) + ".txt"
}

// writeReport creates dir if needed and writes every counted word of r to
// a file named after its structure, in the structure's iteration order.
func writeReport(dir string, r countResult) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating output directory %s", dir)
	}
	path := filepath.Join(dir, reportFileName(r.Kind))
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	s := r.Counts.Stats()
	fmt.Fprintf(f, "# structure: %s\n", r.Kind)
	fmt.Fprintf(f, "# words: %d distinct: %d\n", r.Words, r.Counts.Len())
	fmt.Fprintf(f, "# comparisons: %d rotations: %d collisions: %d\n", s.Comparisons, s.Rotations, s.Collisions)
	r.Counts.Print(f)
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "writing %s", path)
	}
	return path, nil
}

// writeMetrics exports the counters of every result in the Prometheus text
// format, for node_exporter's textfile collector.
func writeMetrics(path string, results []countResult) error {
	reg := prometheus.NewRegistry()
	gauges := map[string]*prometheus.GaugeVec{}
	for _, name := range []string{"words", "distinct_words", "comparisons", "rotations", "collisions", "elapsed_seconds"} {
		g := prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "wordcount",
			Name:      name,
			Help:      "Word count run " + strings.ReplaceAll(name, "_", " ") + " per structure.",
		}, []string{"structure"})
		reg.MustRegister(g)
		gauges[name] = g
	}
	for _, r := range results {
		label := strings.ToLower(r.Kind.String())
		s := r.Counts.Stats()
		gauges["words"].WithLabelValues(label).Set(float64(r.Words))
		gauges["distinct_words"].WithLabelValues(label).Set(float64(r.Counts.Len()))
		gauges["comparisons"].WithLabelValues(label).Set(float64(s.Comparisons))
		gauges["rotations"].WithLabelValues(label).Set(float64(s.Rotations))
		gauges["collisions"].WithLabelValues(label).Set(float64(s.Collisions))
		gauges["elapsed_seconds"].WithLabelValues(label).Set(r.Elapsed.Seconds())
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating %s", dir)
		}
	}
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return errors.Wrapf(err, "writing metrics to %s", path)
	}
	return nil
}

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
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cybrota/wordcount/dictionary"
	"github.com/cybrota/wordcount/textproc"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// ctxCheckInterval is how many words a worker counts between checks for
// cancellation.
const ctxCheckInterval = 4096

// source is a named text input that can be opened once per structure.
type source struct {
	name string
	open func() (io.ReadCloser, error)
}

func fileSource(path string) source {
	return source{
		name: path,
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// readerSource buffers r so that every structure can read it.
func readerSource(name string, r io.Reader) (source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return source{}, errors.Wrapf(err, "reading %s", name)
	}
	return source{
		name: name,
		open: func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewReader(data)), nil },
	}, nil
}

type countOptions struct {
	Kinds         []dictionary.Kind
	BucketCount   int
	MaxLoadFactor float64
	Normalizer    *textproc.Normalizer
	Stopwords     *textproc.Stopwords
	Progress      bool
	Out           io.Writer
}

func (o countOptions) dictionaryOptions() []dictionary.Option[string] {
	var opts []dictionary.Option[string]
	if o.BucketCount > 0 {
		opts = append(opts, dictionary.WithBucketCount[string](o.BucketCount))
	}
	if o.MaxLoadFactor > 0 {
		opts = append(opts, dictionary.WithMaxLoadFactor[string](o.MaxLoadFactor))
	}
	return opts
}

// countResult is the outcome of counting every source with one structure.
type countResult struct {
	Kind    dictionary.Kind
	Counts  *dictionary.Dynamic[string, int]
	Words   int
	Skipped int
	Elapsed time.Duration
}

// countWords counts the words of sources once per requested structure. Each
// structure runs on its own goroutine with a private dictionary; only writes
// to opts.Out are shared and serialized. Results follow the order of
// opts.Kinds.
func countWords(ctx context.Context, sources []source, opts countOptions) ([]countResult, error) {
	if len(opts.Kinds) == 0 {
		return nil, errors.Wrap(dictionary.ErrInvalidArgument, "no structure selected")
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	var outputMu sync.Mutex
	printf := func(format string, args ...any) {
		outputMu.Lock()
		defer outputMu.Unlock()
		fmt.Fprintf(out, format, args...)
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.NewOptions(len(sources)*len(opts.Kinds),
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("📖 Counting words..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(out)
			}),
		)
	}

	results := make([]countResult, len(opts.Kinds))
	g, ctx := errgroup.WithContext(ctx)
	for i, kind := range opts.Kinds {
		g.Go(func() error {
			res, err := countWithKind(ctx, kind, sources, opts, func() {
				if bar != nil {
					_ = bar.Add(1)
				}
			})
			if err != nil {
				return err
			}
			results[i] = res
			log.WithField("structure", kind).Debugf("counted %d words (%d distinct) in %s", res.Words, res.Counts.Len(), res.Elapsed)
			if !opts.Progress {
				printf("✅ %s finished in %s\n", kind, res.Elapsed.Round(time.Microsecond))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func countWithKind(ctx context.Context, kind dictionary.Kind, sources []source, opts countOptions, fileDone func()) (countResult, error) {
	res := countResult{Kind: kind}
	counts, err := dictionary.NewDynamic[string, int](kind, nil, opts.dictionaryOptions()...)
	if err != nil {
		return res, err
	}
	res.Counts = counts

	tokOpts := []textproc.TokenizerOption{textproc.WithStopwords(opts.Stopwords)}
	if opts.Normalizer != nil {
		tokOpts = append(tokOpts, textproc.WithNormalizer(opts.Normalizer))
	}

	start := time.Now()
	for _, src := range sources {
		r, err := src.open()
		if err != nil {
			return res, errors.Wrapf(err, "opening %s", src.name)
		}
		tok := textproc.NewTokenizer(r, tokOpts...)
		for word := range tok.Words() {
			if err := dictionary.Increment[string](counts, word); err != nil {
				r.Close()
				return res, errors.Wrapf(err, "%s: counting %q", kind, word)
			}
			res.Words++
			if res.Words%ctxCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					r.Close()
					return res, err
				}
			}
		}
		res.Skipped += tok.Skipped()
		r.Close()
		if err := tok.Err(); err != nil {
			return res, errors.Wrapf(err, "reading %s", src.name)
		}
		fileDone()
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

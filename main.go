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
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cybrota/wordcount/dictionary"
	"github.com/cybrota/wordcount/textproc"
	"github.com/spf13/cobra"
)

const version = "v0.3.0"

// countFlags holds the count command's flags after config defaults are
// applied.
type countFlags struct {
	Structure     string
	All           bool
	Top           int
	Copy          bool
	OutDir        string
	MetricsFile   string
	BucketCount   int
	MaxLoadFactor float64
	StopwordsFile string
	SkipStopwords bool
	Quiet         bool
}

func countFlagsFromConfig(cfg *Config) countFlags {
	return countFlags{
		Structure:     cfg.Dictionary.Structure,
		Top:           cfg.Output.Top,
		OutDir:        cfg.Output.Dir,
		MetricsFile:   cfg.Output.MetricsFile,
		BucketCount:   cfg.Dictionary.BucketCount,
		MaxLoadFactor: cfg.Dictionary.MaxLoadFactor,
		StopwordsFile: cfg.Text.StopwordsFile,
		SkipStopwords: cfg.Text.SkipStopwords,
	}
}

func loadStopwords(flags countFlags) (*textproc.Stopwords, error) {
	if flags.StopwordsFile != "" {
		f, err := os.Open(flags.StopwordsFile)
		if err != nil {
			return nil, errors.Wrap(err, "opening stopwords file")
		}
		defer f.Close()
		return textproc.LoadStopwords(f)
	}
	if flags.SkipStopwords {
		return textproc.NewStopwords(textproc.DefaultStopwords)
	}
	return nil, nil
}

// runCount implements the count command. Files named "-", or no files at
// all, read standard input.
func runCount(ctx context.Context, cfg *Config, flags countFlags, args []string, stdin io.Reader, stdout io.Writer) error {
	kinds := dictionary.Kinds
	if !flags.All {
		kind, err := dictionary.ParseKind(flags.Structure)
		if err != nil {
			return err
		}
		kinds = []dictionary.Kind{kind}
	}

	if len(args) == 0 {
		args = []string{"-"}
	}
	sources := make([]source, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			src, err := readerSource("stdin", stdin)
			if err != nil {
				return err
			}
			sources = append(sources, src)
			continue
		}
		if _, err := os.Stat(arg); err != nil {
			return errors.Wrapf(err, "cannot read %s", arg)
		}
		sources = append(sources, fileSource(arg))
	}

	stopwords, err := loadStopwords(flags)
	if err != nil {
		return err
	}
	if stopwords != nil {
		log.WithField("count", stopwords.Len()).Debug("stopwords loaded")
	}

	results, err := countWords(ctx, sources, countOptions{
		Kinds:         kinds,
		BucketCount:   flags.BucketCount,
		MaxLoadFactor: flags.MaxLoadFactor,
		Normalizer:    textproc.NewNormalizer(time.Duration(cfg.Text.NormalizeCacheMinutes) * time.Minute),
		Stopwords:     stopwords,
		Progress:      !flags.Quiet && len(sources) > 1,
		Out:           os.Stderr,
	})
	if err != nil {
		return err
	}

	for _, r := range results[1:] {
		if r.Counts.Len() != results[0].Counts.Len() {
			log.WithField("structure", r.Kind).Warnf("distinct word count %d differs from %s (%d)",
				r.Counts.Len(), results[0].Kind, results[0].Counts.Len())
		}
	}

	renderSummary(stdout, results)
	top := topWords(results[0].Counts, flags.Top)
	fmt.Fprintln(stdout)
	renderTop(stdout, top)

	if flags.Copy {
		if err := copyTopToClipboard(top); err != nil {
			log.WithError(err).Warn("clipboard unavailable")
		} else {
			fmt.Fprintf(stdout, "📋 Copied %s%d words%s to clipboard.\n", Green, len(top), Reset)
		}
	}
	if flags.OutDir != "" {
		for _, r := range results {
			path, err := writeReport(flags.OutDir, r)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "📝 Wrote %s\n", path)
		}
	}
	if flags.MetricsFile != "" {
		if err := writeMetrics(flags.MetricsFile, results); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "📈 Wrote metrics to %s\n", flags.MetricsFile)
	}
	return nil
}

func listStructures(w io.Writer) {
	for _, k := range dictionary.Kinds {
		fmt.Fprintf(w, "%s%-22s%s %s\n", Green, k, Reset, strings.Join(k.Aliases(), ", "))
	}
}

func main() {
	InitializeColors()

	asciiLogo := `
 _      ______  ___  ___  _________  __  ___  ________
| | /| / / __ \/ _ \/ _ \/ ___/ __ \/ / / / |/ /_  __/
| |/ |/ / /_/ / , _/ // / /__/ /_/ / /_/ /    / / /
|__/|__/\____/_/|_/____/\___/\____/\____/_/|_/ /_/
Word frequencies with four interchangeable dictionaries [Version: %s%s%s]

Copyright @ Naren Yellavula

`
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v. Using default settings.\n", err)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v. Using default settings.\n", err)
		def := defaultConfig
		cfg = &def
	}

	var verbose bool
	flags := countFlagsFromConfig(cfg)

	var cmdCount = &cobra.Command{
		Use:   "count [files...]",
		Short: "Count word frequencies in files or standard input",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Count reads every file (or stdin) and reports word frequencies and dictionary statistics`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := runCount(ctx, cfg, flags, args, os.Stdin, os.Stdout); err != nil {
				log.Fatalf("Error counting words: %v", err)
			}
		},
	}
	cmdCount.Flags().StringVarP(&flags.Structure, "structure", "s", flags.Structure, "dictionary structure (see 'structures')")
	cmdCount.Flags().BoolVarP(&flags.All, "all", "a", false, "count with every structure concurrently and compare")
	cmdCount.Flags().IntVarP(&flags.Top, "top", "n", flags.Top, "number of most frequent words to show (0 for all)")
	cmdCount.Flags().BoolVar(&flags.Copy, "copy", false, "copy the top words to the clipboard")
	cmdCount.Flags().StringVarP(&flags.OutDir, "out", "o", flags.OutDir, "directory for per-structure report files")
	cmdCount.Flags().StringVar(&flags.MetricsFile, "metrics-file", flags.MetricsFile, "write Prometheus textfile metrics here")
	cmdCount.Flags().IntVar(&flags.BucketCount, "bucket-count", flags.BucketCount, "initial hash table bucket count")
	cmdCount.Flags().Float64Var(&flags.MaxLoadFactor, "max-load-factor", flags.MaxLoadFactor, "hash table max load factor (0 for default)")
	cmdCount.Flags().StringVar(&flags.StopwordsFile, "stopwords", flags.StopwordsFile, "file of words to leave out")
	cmdCount.Flags().BoolVar(&flags.SkipStopwords, "skip-stopwords", flags.SkipStopwords, "leave out common English words")
	cmdCount.Flags().BoolVarP(&flags.Quiet, "quiet", "q", false, "hide the progress bar")

	var shellStructure string
	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell over a single dictionary",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Shell reads commands such as 'insert key value' and applies them to one dictionary"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			kind, err := dictionary.ParseKind(shellStructure)
			if err != nil {
				log.Fatalf("Error selecting structure: %v", err)
			}
			var opts []dictionary.Option[string]
			if flags.BucketCount > 0 {
				opts = append(opts, dictionary.WithBucketCount[string](flags.BucketCount))
			}
			sh, err := newShell(kind, os.Stdout, opts...)
			if err != nil {
				log.Fatalf("Error starting shell: %v", err)
			}
			fmt.Println("Type 'help' for commands, 'exit' to leave.")
			if err := sh.run(os.Stdin, true); err != nil {
				log.Fatalf("Error reading input: %v", err)
			}
		},
	}
	cmdShell.Flags().StringVarP(&shellStructure, "structure", "s", cfg.Dictionary.Structure, "dictionary structure (see 'structures')")

	var cmdStructures = &cobra.Command{
		Use:   "structures",
		Short: "List dictionary structures and their names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			listStructures(os.Stdout)
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration settings",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, "Display current configuration and create default config file if needed"),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(os.Stdout)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Wordcount usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the wordcount CLI usage guide`),
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Wordcount version",
		Args:  cobra.MinimumNArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "wordcount",
		Version: version,
		Long:    asciiLogo,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cfg.Log.Level, verbose)
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(cmdCount, cmdShell, cmdStructures, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

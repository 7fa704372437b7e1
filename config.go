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

	"github.com/cockroachdb/errors"
	"github.com/cybrota/wordcount/dictionary"
	"gopkg.in/yaml.v3"
)

const configFileName = ".wordcount.yaml"

type DictionaryConfig struct {
	Structure     string  `yaml:"structure"`
	BucketCount   int     `yaml:"bucket_count"`
	MaxLoadFactor float64 `yaml:"max_load_factor"`
}

type TextConfig struct {
	StopwordsFile         string `yaml:"stopwords_file"`
	SkipStopwords         bool   `yaml:"skip_stopwords"`
	NormalizeCacheMinutes int    `yaml:"normalize_cache_minutes"`
}

type OutputConfig struct {
	Dir         string `yaml:"dir"`
	Top         int    `yaml:"top"`
	MetricsFile string `yaml:"metrics_file"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Text       TextConfig       `yaml:"text"`
	Output     OutputConfig     `yaml:"output"`
	Log        LogConfig        `yaml:"log"`
}

var defaultConfig = Config{
	Dictionary: DictionaryConfig{
		Structure:     "avl",
		BucketCount:   dictionary.DefaultBucketCount,
		MaxLoadFactor: 0, // 0 selects the structure's own default
	},
	Text: TextConfig{
		SkipStopwords:         false,
		NormalizeCacheMinutes: 30,
	},
	Output: OutputConfig{
		Dir: "", // empty disables report files
		Top: 20,
	},
	Log: LogConfig{
		Level: "info",
	},
}

// LoadConfig reads ~/.wordcount.yaml, falling back to the defaults when the
// file is missing or unreadable.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		cfg := defaultConfig
		return &cfg, nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	cfg := defaultConfig

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &cfg, nil
	}

	// Keys absent from the file keep their default values.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		fallback := defaultConfig
		return &fallback, errors.Wrapf(err, "parsing %s", configPath)
	}

	return &cfg, nil
}

// Validate checks the values a user may have edited by hand.
func (c *Config) Validate() error {
	if _, err := dictionary.ParseKind(c.Dictionary.Structure); err != nil {
		return err
	}
	if c.Dictionary.MaxLoadFactor < 0 {
		return errors.Wrapf(dictionary.ErrInvalidArgument, "max_load_factor must not be negative, got %v", c.Dictionary.MaxLoadFactor)
	}
	if c.Output.Top < 0 {
		return errors.Newf("output.top must not be negative, got %d", c.Output.Top)
	}
	return nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return errors.Wrap(err, "failed to marshal default config")
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

func displaySettings(w io.Writer) {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to get config path: %v\n", err)
		return
	}
	showSettings(w, configPath)
}

func showSettings(w io.Writer, configPath string) {
	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Fprintf(w, "❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Fprintf(w, "🔧 Wordcount Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")

	loadDesc := "structure default"
	if config.Dictionary.MaxLoadFactor > 0 {
		loadDesc = fmt.Sprintf("%v", config.Dictionary.MaxLoadFactor)
	}

	fmt.Fprintf(w, "🗂  %sDictionary:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sstructure%s: %s\n", Green, Reset, config.Dictionary.Structure)
	fmt.Fprintf(w, "  • %sbucket_count%s: %d\n", Green, Reset, config.Dictionary.BucketCount)
	fmt.Fprintf(w, "  • %smax_load_factor%s: %s\n\n", Green, Reset, loadDesc)

	fmt.Fprintf(w, "📝 %sText:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sstopwords_file%s: %q\n", Green, Reset, config.Text.StopwordsFile)
	fmt.Fprintf(w, "  • %sskip_stopwords%s: %t\n", Green, Reset, config.Text.SkipStopwords)
	fmt.Fprintf(w, "  • %snormalize_cache_minutes%s: %d\n\n", Green, Reset, config.Text.NormalizeCacheMinutes)

	fmt.Fprintf(w, "📤 %sOutput:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sdir%s: %q\n", Green, Reset, config.Output.Dir)
	fmt.Fprintf(w, "  • %stop%s: %d\n", Green, Reset, config.Output.Top)
	fmt.Fprintf(w, "  • %smetrics_file%s: %q\n\n", Green, Reset, config.Output.MetricsFile)

	fmt.Fprintf(w, "🪵 %sLog:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %slevel%s: %s\n\n", Green, Reset, config.Log.Level)

	if err := config.Validate(); err != nil {
		fmt.Fprintf(w, "⚠️  %v\n", err)
		fmt.Fprintf(w, "   Run 'wordcount structures' to list valid structure names.\n\n")
	} else {
		fmt.Fprintf(w, "💡 To change the default structure, edit %s:\n", configPath)
		fmt.Fprintf(w, "   dictionary:\n     structure: rbtree\n\n")
	}
}

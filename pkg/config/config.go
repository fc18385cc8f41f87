// Copyright 2025 walteh LLC
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

package config

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"

	"github.com/walteh/typograph/pkg/typograph"
)

const (
	// DefaultPath is the config file looked up when none is given.
	DefaultPath = ".typograph.yaml"

	// DefaultConcurrency bounds how many documents are processed at once.
	DefaultConcurrency = 4

	// LanguageAuto routes each line by its script.
	LanguageAuto = "auto"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse decodes the config from bytes without validating it
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the complete configuration
type Config struct {
	CountMode   string   `json:"count_mode,omitempty" yaml:"count_mode,omitempty" hcl:"count_mode,optional"`
	Language    string   `json:"language,omitempty" yaml:"language,omitempty" hcl:"language,optional"`
	ComposeNFC  bool     `json:"compose_nfc,omitempty" yaml:"compose_nfc,omitempty" hcl:"compose_nfc,optional"`
	Include     []string `json:"include,omitempty" yaml:"include,omitempty" hcl:"include,optional"`
	Exclude     []string `json:"exclude,omitempty" yaml:"exclude,omitempty" hcl:"exclude,optional"`
	Concurrency int      `json:"concurrency,omitempty" yaml:"concurrency,omitempty" hcl:"concurrency,optional"`
}

// 🏗️ Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		CountMode:   typograph.Faithful.String(),
		Language:    LanguageAuto,
		Concurrency: DefaultConcurrency,
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🎯 LoadOrDefault is Load, except that a missing file yields Default
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	cfg, err := Load(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")
		return Default(), nil
	}
	return cfg, err
}

// 🔍 Validate checks the configuration and fills in defaults
func (cfg *Config) Validate() error {
	mode, err := typograph.ParseCountMode(cfg.CountMode)
	if err != nil {
		return errors.Errorf("count_mode: %w", err)
	}
	cfg.CountMode = mode.String()

	cfg.Language = strings.ToLower(strings.TrimSpace(cfg.Language))
	if cfg.Language == "" {
		cfg.Language = LanguageAuto
	}
	if cfg.Language != LanguageAuto {
		if _, err := typograph.ParseLanguage(cfg.Language); err != nil {
			return errors.Errorf("language: %w", err)
		}
	}

	if cfg.Concurrency < 0 {
		return errors.Errorf("concurrency must not be negative, got %d", cfg.Concurrency)
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = DefaultConcurrency
	}

	for _, pattern := range append(append([]string{}, cfg.Include...), cfg.Exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid glob pattern %q", pattern)
		}
	}

	return nil
}

// ⚙️ ProcessorOptions converts the configuration into processor options
func (cfg *Config) ProcessorOptions() ([]typograph.Option, error) {
	mode, err := typograph.ParseCountMode(cfg.CountMode)
	if err != nil {
		return nil, errors.Errorf("count_mode: %w", err)
	}

	opts := []typograph.Option{
		typograph.WithCountMode(mode),
		typograph.WithNFC(cfg.ComposeNFC),
	}

	if lang := strings.TrimSpace(cfg.Language); lang != "" && !strings.EqualFold(lang, LanguageAuto) {
		l, err := typograph.ParseLanguage(lang)
		if err != nil {
			return nil, errors.Errorf("language: %w", err)
		}
		opts = append(opts, typograph.WithLanguage(l))
	}

	return opts, nil
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	lang := cfg.Language
	if lang == "" {
		lang = LanguageAuto
	}
	return fmt.Sprintf("mode=%s lang=%s nfc=%t include=%d exclude=%d concurrency=%d",
		cfg.CountMode, lang, cfg.ComposeNFC, len(cfg.Include), len(cfg.Exclude), cfg.Concurrency)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	return &cfg, nil
}

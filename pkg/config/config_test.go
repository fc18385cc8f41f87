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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/typograph/pkg/typograph"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_config",
			config: `
count_mode: corrected
language: ru
compose_nfc: true
include:
  - "docs/**/*.md"
  - "*.txt"
exclude:
  - "docs/vendor/**"
concurrency: 8
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "corrected", cfg.CountMode, "count mode should match")
				assert.Equal(t, "ru", cfg.Language, "language should match")
				assert.True(t, cfg.ComposeNFC, "nfc should be enabled")
				assert.Equal(t, []string{"docs/**/*.md", "*.txt"}, cfg.Include, "include should match")
				assert.Equal(t, []string{"docs/vendor/**"}, cfg.Exclude, "exclude should match")
				assert.Equal(t, 8, cfg.Concurrency, "concurrency should match")
			},
		},
		{
			name:   "empty_config",
			config: ``,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg, "empty file should validate to defaults")
			},
		},
		{
			name: "minimal_config",
			config: `
include: ["*.md"]
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "faithful", cfg.CountMode, "count mode should have default value")
				assert.Equal(t, LanguageAuto, cfg.Language, "language should have default value")
				assert.Equal(t, DefaultConcurrency, cfg.Concurrency, "concurrency should have default value")
			},
		},
		{
			name: "unknown_field",
			config: `
destination: /tmp
`,
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name: "bad_count_mode",
			config: `
count_mode: strict
`,
			wantErr:     true,
			errContains: "count_mode",
		},
		{
			name: "bad_language",
			config: `
language: de
`,
			wantErr:     true,
			errContains: "unknown language",
		},
		{
			name: "negative_concurrency",
			config: `
concurrency: -1
`,
			wantErr:     true,
			errContains: "concurrency must not be negative",
		},
		{
			name: "bad_glob",
			config: `
exclude: ["docs/[a-"]
`,
			wantErr:     true,
			errContains: "invalid glob pattern",
		},
	}

	ctx := zerolog.New(os.Stderr).WithContext(context.Background())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			configPath := filepath.Join(tmpDir, ".typograph.yaml")
			err := os.WriteFile(configPath, []byte(tt.config), 0644)
			require.NoError(t, err, "writing config file should succeed")

			cfg, err := Load(ctx, configPath)
			if tt.wantErr {
				require.Error(t, err, "Load should return error")
				assert.Contains(t, err.Error(), tt.errContains, "error should contain expected message")
				return
			}

			require.NoError(t, err, "Load should succeed")
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	t.Run("missing_file", func(t *testing.T) {
		cfg, err := LoadOrDefault(ctx, filepath.Join(tmpDir, DefaultPath))
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("broken_file_is_still_an_error", func(t *testing.T) {
		path := filepath.Join(tmpDir, "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("count_mode: [\n"), 0644))

		_, err := LoadOrDefault(ctx, path)
		require.Error(t, err)
	})

	t.Run("unsupported_extension", func(t *testing.T) {
		path := filepath.Join(tmpDir, "config.toml")
		require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0644))

		_, err := Load(ctx, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no parser found")
	})
}

func TestParserSelection(t *testing.T) {
	tests := []struct {
		filename string
		want     Parser
	}{
		{filename: ".typograph.yaml", want: &YAMLParser{}},
		{filename: "typograph.yml", want: &YAMLParser{}},
		{filename: "typograph.json", want: &JSONParser{}},
		{filename: "TYPOGRAPH.JSON", want: &JSONParser{}},
		{filename: "typograph.hcl", want: &HCLParser{}},
		{filename: "typograph.toml", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestProcessorOptions(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *Config
		wantMode typograph.CountMode
		wantLang typograph.Language
		wantErr  bool
	}{
		{
			name:     "defaults_detect_per_line",
			cfg:      Default(),
			wantMode: typograph.Faithful,
			wantLang: typograph.Russian,
		},
		{
			name:     "forced_english",
			cfg:      &Config{CountMode: "corrected", Language: "en"},
			wantMode: typograph.Corrected,
			wantLang: typograph.English,
		},
		{
			name:    "bad_language",
			cfg:     &Config{Language: "fr"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.cfg.ProcessorOptions()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			p := typograph.New(opts...)
			assert.Equal(t, tt.wantMode, p.Mode())
			assert.Equal(t, tt.wantLang, p.Language("Привет"))
		})
	}
}

func TestConfigString(t *testing.T) {
	assert.Equal(t, "mode=faithful lang=auto nfc=false include=0 exclude=0 concurrency=4", Default().String())

	cfg := &Config{CountMode: "corrected", ComposeNFC: true, Include: []string{"*.md"}, Concurrency: 2}
	assert.Equal(t, "mode=corrected lang=auto nfc=true include=1 exclude=0 concurrency=2", cfg.String())
}

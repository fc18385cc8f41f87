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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pterm.DisableStyling()
	os.Exit(m.Run())
}

func TestRootCmd(t *testing.T) {
	dir := t.TempDir()

	jsonConfig := filepath.Join(dir, "typograph.json")
	require.NoError(t, os.WriteFile(jsonConfig, []byte(`{"count_mode": "corrected"}`), 0644))

	hclConfig := filepath.Join(dir, "typograph.hcl")
	require.NoError(t, os.WriteFile(hclConfig, []byte(`language = "ru"`), 0644))

	brokenConfig := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(brokenConfig, []byte("count_mode: strict\n"), 0644))

	tests := []struct {
		name        string
		args        []string
		stdin       string
		wantStdout  string
		wantStderr  string
		errContains string
	}{
		{
			name:        "explicit_config_must_exist",
			args:        []string{"format", "--config", filepath.Join(dir, "absent.yaml")},
			stdin:       "<<a>>",
			errContains: "loading config",
		},
		{
			name:       "format_faithful_counts",
			args:       []string{"format"},
			stdin:      "<<a>>",
			wantStdout: "«a»",
			wantStderr: "No changes were necessary.",
		},
		{
			name:       "mode_flag",
			args:       []string{"format", "--mode", "corrected"},
			stdin:      "<<a>>",
			wantStdout: "«a»",
			wantStderr: "2 changes applied.",
		},
		{
			name:       "json_config",
			args:       []string{"format", "-c", jsonConfig},
			stdin:      "x -- y",
			wantStdout: "x — y",
			wantStderr: "1 changes applied.",
		},
		{
			name:       "hcl_config_forces_russian",
			args:       []string{"format", "-c", hclConfig},
			stdin:      "x - y",
			wantStdout: "x — y",
			wantStderr: "2 changes applied.",
		},
		{
			name:       "lang_flag_overrides_config",
			args:       []string{"format", "-c", hclConfig, "--lang", "auto"},
			stdin:      "x - y",
			wantStdout: "x — y",
			wantStderr: "No changes were necessary.",
		},
		{
			name:        "bad_lang",
			args:        []string{"format", "--lang", "de"},
			errContains: "unknown language",
		},
		{
			name:        "broken_config",
			args:        []string{"format", "-c", brokenConfig},
			errContains: "count_mode",
		},
		{
			name:       "version_ignores_config",
			args:       []string{"version", "-c", brokenConfig},
			wantStdout: "typograph version info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			cmd := newRootCmd()
			cmd.SetArgs(tt.args)
			cmd.SetIn(strings.NewReader(tt.stdin))
			cmd.SetOut(&stdout)
			cmd.SetErr(&stderr)

			err := cmd.ExecuteContext(context.Background())
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Contains(t, stdout.String(), tt.wantStdout)
			assert.Contains(t, stderr.String(), tt.wantStderr)
		})
	}
}

func TestFormatVersion(t *testing.T) {
	out := FormatVersion()
	assert.Contains(t, out, "typograph version info")
	assert.Contains(t, out, "short-word-nbsp")
	assert.Contains(t, out, "preposition-nbsp")

	info := GetVersionInfo()
	assert.NotEmpty(t, info.Version)
	assert.Len(t, info.Rules["en"], 7)
	assert.Len(t, info.Rules["ru"], 7)
}

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

package operation

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// 🔍 ResolvePaths expands patterns under root into a sorted list of files.
//
// A pattern is either a doublestar glob ("docs/**/*.md") or a plain path. A
// plain directory stands for every file below it. Files matching any exclude
// glob are dropped. Paths under root come back relative to it and slash
// separated; absolute patterns outside root come back absolute.
func ResolvePaths(root string, patterns, exclude []string) ([]string, error) {
	root = filepath.Clean(root)
	fsys := os.DirFS(root)

	seen := map[string]bool{}
	var out []string

	add := func(p string) error {
		for _, ex := range exclude {
			matched, err := doublestar.Match(ex, p)
			if err != nil {
				return errors.Errorf("matching exclude pattern %q: %w", ex, err)
			}
			if matched {
				return nil
			}
		}
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
		return nil
	}

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		base, glob := fsys, pattern
		prefix := ""
		if path.IsAbs(pattern) {
			if rel, ok := relativeTo(root, pattern); ok {
				glob = rel
			} else {
				var dir string
				dir, glob = doublestar.SplitPattern(pattern)
				base, prefix = os.DirFS(filepath.FromSlash(dir)), dir
			}
		}
		glob = strings.TrimPrefix(path.Clean(glob), "./")

		var matches []string
		if isGlob(glob) {
			if !doublestar.ValidatePattern(glob) {
				return nil, errors.Errorf("invalid glob pattern %q", pattern)
			}
			m, err := doublestar.Glob(base, glob, doublestar.WithFilesOnly())
			if err != nil {
				return nil, errors.Errorf("expanding %q: %w", pattern, err)
			}
			matches = m
		} else {
			fi, err := fs.Stat(base, glob)
			if err != nil {
				return nil, errors.Errorf("resolving path %q: %w", pattern, err)
			}
			if fi.IsDir() {
				m, err := doublestar.Glob(base, path.Join(doublestar.EscapeMeta(glob), "**"), doublestar.WithFilesOnly())
				if err != nil {
					return nil, errors.Errorf("walking %q: %w", pattern, err)
				}
				matches = m
			} else {
				matches = []string{glob}
			}
		}

		for _, m := range matches {
			if prefix != "" {
				m = path.Join(prefix, m)
			}
			if err := add(m); err != nil {
				return nil, err
			}
		}
	}

	sort.Strings(out)
	return out, nil
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{\\")
}

// relativeTo returns abs relative to root when it lies inside root
func relativeTo(root, abs string) (string, bool) {
	rel, err := filepath.Rel(root, filepath.FromSlash(abs))
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}

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

package status

import (
	"context"
	"io"
	"os"
	"sync"

	"gitlab.com/tozd/go/errors"
)

// 📄 FileDocument is a file under a Manager that can be read and rewritten.
// Every read and write is recorded with the manager.
type FileDocument struct {
	mgr  *Manager
	path string
}

// 📂 Open returns a document for path, which may be absolute or relative to
// the manager root. The file is not touched until Text is called.
func (m *Manager) Open(path string) *FileDocument {
	return &FileDocument{mgr: m, path: path}
}

// Name returns the path the document is tracked under
func (d *FileDocument) Name() string {
	return d.mgr.relPath(d.path)
}

// Text reads the whole file
func (d *FileDocument) Text(ctx context.Context) (string, error) {
	abs := d.mgr.getAbsPath(d.path)

	fi, err := os.Stat(abs)
	if err != nil {
		d.fail(ctx, err)
		return "", errors.Errorf("reading file: %w", err)
	}
	if fi.IsDir() {
		err := errors.Errorf("%s is a directory", d.Name())
		d.fail(ctx, err)
		return "", err
	}

	content, err := d.mgr.ReadFile(ctx, d.path)
	if err != nil {
		d.fail(ctx, err)
		return "", err
	}

	d.mgr.TrackFile(ctx, d.path, FileInfo{
		Status:   StatusUnchanged,
		Size:     int64(len(content)),
		Mode:     fi.Mode().Perm(),
		Checksum: calculateChecksum(content),
	})

	return string(content), nil
}

// Replace atomically swaps the file content for text. Content identical to
// what Text read is not written again and the file stays unchanged.
func (d *FileDocument) Replace(ctx context.Context, text string) error {
	content := []byte(text)

	if info, err := d.mgr.GetFileInfo(ctx, d.path); err == nil &&
		info.Status == StatusUnchanged && info.Checksum == calculateChecksum(content) {
		return nil
	}

	if err := d.mgr.WriteFileAtomic(ctx, d.path, content); err != nil {
		d.fail(ctx, err)
		return err
	}

	var mode os.FileMode
	if fi, err := os.Stat(d.mgr.getAbsPath(d.path)); err == nil {
		mode = fi.Mode().Perm()
	}

	d.mgr.TrackFile(ctx, d.path, FileInfo{
		Status:   StatusModified,
		Size:     int64(len(content)),
		Mode:     mode,
		Checksum: calculateChecksum(content),
	})

	return nil
}

func (d *FileDocument) fail(ctx context.Context, err error) {
	d.mgr.TrackFile(ctx, d.path, FileInfo{
		Status: StatusFailed,
		Error:  err,
	})
}

// 📝 BufferDocument is an in-memory document, used for stdin/stdout filtering
type BufferDocument struct {
	name string

	mu       sync.Mutex
	text     string
	replaced bool
}

// NewBufferDocument returns a document holding text
func NewBufferDocument(name, text string) *BufferDocument {
	return &BufferDocument{name: name, text: text}
}

// Name returns the name given to NewBufferDocument
func (b *BufferDocument) Name() string {
	return b.name
}

// Text returns the current content
func (b *BufferDocument) Text(ctx context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text, nil
}

// Replace swaps the content for text
func (b *BufferDocument) Replace(ctx context.Context, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
	b.replaced = true
	return nil
}

// Replaced reports whether Replace was called
func (b *BufferDocument) Replaced() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.replaced
}

// String returns the current content
func (b *BufferDocument) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// ReadBuffer reads all of r into a BufferDocument
func ReadBuffer(name string, r io.Reader) (*BufferDocument, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Errorf("reading %s: %w", name, err)
	}
	return NewBufferDocument(name, string(content)), nil
}

package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

const (
	fileExt        = ".json"
	checksumSuffix = ".checksum"
)

// FileBackend stores each key as <dir>/<key>.json with a sha256 checksum
// sidecar. Writes go to a temp file that is renamed into place.
type FileBackend struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// NewFileBackend creates dir on fs if needed. Pass afero.NewOsFs() in
// production and afero.NewMemMapFs() in tests.
func NewFileBackend(fsys afero.Fs, dir string) (*FileBackend, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return &FileBackend{fs: fsys, dir: dir}, nil
}

// calculateChecksum computes the SHA256 checksum of the given data.
func calculateChecksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func (b *FileBackend) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(b.dir, key+fileExt), nil
}

// Get reads key and verifies its checksum when a sidecar exists.
func (b *FileBackend) Get(_ context.Context, key string) ([]byte, error) {
	p, err := b.path(key)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := afero.ReadFile(b.fs, p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("read %s: %w", p, err)
	}

	expected, err := afero.ReadFile(b.fs, p+checksumSuffix)
	switch {
	case err == nil:
		if actual := calculateChecksum(data); actual != strings.TrimSpace(string(expected)) {
			return nil, fmt.Errorf("checksum mismatch for %s - file is corrupt or was edited by hand", p)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Files written before checksums existed, or copied in by hand.
	default:
		return nil, fmt.Errorf("read checksum for %s: %w", p, err)
	}
	return data, nil
}

// Put writes value atomically and refreshes the checksum sidecar.
func (b *FileBackend) Put(_ context.Context, key string, value []byte) error {
	p, err := b.path(key)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tmp, err := afero.TempFile(b.fs, b.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		_ = b.fs.Remove(tmpName)
		return fmt.Errorf("write temp file for %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = b.fs.Remove(tmpName)
		return fmt.Errorf("close temp file for %s: %w", key, err)
	}
	if err := b.fs.Rename(tmpName, p); err != nil {
		_ = b.fs.Remove(tmpName)
		return fmt.Errorf("rename temp file for %s: %w", key, err)
	}
	if err := afero.WriteFile(b.fs, p+checksumSuffix, []byte(calculateChecksum(value)), 0o644); err != nil {
		return fmt.Errorf("write checksum for %s: %w", key, err)
	}
	return nil
}

// Delete removes key and its checksum.
func (b *FileBackend) Delete(_ context.Context, key string) error {
	p, err := b.path(key)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for _, name := range []string{p, p + checksumSuffix} {
		if err := b.fs.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("remove %s: %w", name, err)
		}
	}
	return nil
}

// Keys lists keys that have a data file.
func (b *FileBackend) Keys(_ context.Context) ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries, err := afero.ReadDir(b.fs, b.dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", b.dir, err)
	}
	var keys []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, fileExt))
	}
	sort.Strings(keys)
	return keys, nil
}

// Dir returns the directory holding the data files.
func (b *FileBackend) Dir() string { return b.dir }

// Close is a no-op for the file backend.
func (b *FileBackend) Close() error { return nil }

// Package vault implements the document store saved posts live in: a
// directory on disk against which every relative path is resolved.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// ErrNotDirectory is returned by List when the path names a file.
var ErrNotDirectory = errors.New("not a directory")

// Entry describes a file directly inside a listed directory.
type Entry struct {
	Name    string    // base name
	Path    string    // vault-relative, slash separated
	Size    int64     // bytes
	ModTime time.Time // last modification
}

// FS is a vault backed by the local file system.
type FS struct {
	root string // absolute path to vault directory
}

// NewFS creates a vault rooted at the given directory.
// The directory must already exist.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("vault: resolve root: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("vault: stat root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault: root is not a directory: %s", abs)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute vault directory.
func (f *FS) Root() string {
	return f.root
}

// Abs resolves a relative path against the vault root and rejects any result
// that escapes it.
func (f *FS) Abs(rel string) (string, error) {
	if rel == "" {
		return f.root, nil
	}
	cleaned := filepath.Clean(filepath.FromSlash(rel))
	if filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("vault: absolute paths not allowed: %s", rel)
	}
	abs, err := filepath.Abs(filepath.Join(f.root, cleaned))
	if err != nil {
		return "", fmt.Errorf("vault: resolve path: %w", err)
	}
	if !strings.HasPrefix(abs, f.root+string(os.PathSeparator)) && abs != f.root {
		return "", fmt.Errorf("vault: path escapes vault root: %s", rel)
	}
	return abs, nil
}

// Stat returns file info for a vault path.
func (f *FS) Stat(rel string) (fs.FileInfo, error) {
	abs, err := f.Abs(rel)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("vault: stat %s: %w", rel, err)
	}
	return info, nil
}

// Exists reports whether a regular file exists at rel.
func (f *FS) Exists(rel string) bool {
	info, err := f.Stat(rel)
	return err == nil && info.Mode().IsRegular()
}

// Create writes content to a new file. It never overwrites: an existing file
// yields an error matching fs.ErrExist. With mkdirs set, missing parent
// directories are created first.
func (f *FS) Create(rel string, content []byte, mkdirs bool) error {
	abs, err := f.Abs(rel)
	if err != nil {
		return err
	}
	if mkdirs {
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return fmt.Errorf("vault: mkdir: %w", err)
		}
	}

	file, err := os.OpenFile(abs, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("vault: create %s: %w", rel, err)
	}

	success := false
	defer func() {
		if !success {
			_ = file.Close()
			_ = os.Remove(abs)
		}
	}()

	if _, err := file.Write(content); err != nil {
		return fmt.Errorf("vault: write %s: %w", rel, err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("vault: fsync: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("vault: close %s: %w", rel, err)
	}
	success = true
	return nil
}

// Read returns the raw bytes of a vault file.
func (f *FS) Read(rel string) ([]byte, error) {
	abs, err := f.Abs(rel)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("vault: read %s: %w", rel, err)
	}
	return data, nil
}

// Write atomically replaces content: tmp file, fsync, rename.
func (f *FS) Write(rel string, content []byte) error {
	abs, err := f.Abs(rel)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("vault: mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".efie-tmp-*")
	if err != nil {
		return fmt.Errorf("vault: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("vault: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("vault: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("vault: close temp: %w", err)
	}
	if err := os.Rename(tmpName, abs); err != nil {
		return fmt.Errorf("vault: rename: %w", err)
	}
	success = true
	return nil
}

// List returns the regular files directly inside dir, sorted by name.
// Subdirectories are skipped. A missing dir yields an error matching
// fs.ErrNotExist; a file yields ErrNotDirectory.
func (f *FS) List(dir string) ([]Entry, error) {
	abs, err := f.Abs(dir)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("vault: list %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("vault: list %s: %w", dir, ErrNotDirectory)
	}

	dirents, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("vault: list %s: %w", dir, err)
	}

	base := path.Clean(filepath.ToSlash(dir))
	out := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		if !d.Type().IsRegular() {
			continue
		}
		fi, err := d.Info()
		if err != nil {
			return nil, fmt.Errorf("vault: stat %s: %w", d.Name(), err)
		}
		out = append(out, Entry{
			Name:    d.Name(),
			Path:    path.Join(base, d.Name()),
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

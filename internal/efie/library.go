package efie

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/hay-kot/efie/internal/core/post"
	"github.com/hay-kot/efie/internal/core/validate"
	"github.com/hay-kot/efie/internal/store/vault"
)

// SavedItem is a post file found in the save location.
type SavedItem struct {
	Name    string
	Path    string // vault-relative, slash separated
	Size    int64
	ModTime time.Time
	Title   string
	Words   int
}

// Stem returns the file name without its extension.
func (i SavedItem) Stem() string {
	return strings.TrimSuffix(i.Name, path.Ext(i.Name))
}

// RecentEntry is one entry of the recent list.
type RecentEntry struct {
	Path   string
	Exists bool
}

// Library lists the posts saved in the vault.
type Library struct {
	vault   *vault.FS
	pattern string
	log     zerolog.Logger
}

// NewLibrary creates a Library. Files are filtered by the doublestar pattern;
// an empty pattern matches everything.
func NewLibrary(v *vault.FS, pattern string, log zerolog.Logger) *Library {
	if pattern == "" {
		pattern = "*"
	}
	return &Library{vault: v, pattern: pattern, log: log}
}

// List returns the immediate files of saveLocation that match the pattern,
// sorted by name. A missing directory yields an empty list.
func (l *Library) List(_ context.Context, saveLocation string) ([]SavedItem, error) {
	if strings.TrimSpace(saveLocation) == "" {
		return nil, post.ErrNoSaveLocation
	}
	if err := validate.RelativePath(saveLocation); err != nil {
		return nil, fmt.Errorf("%w: %w", post.ErrInvalidInput, err)
	}

	entries, err := l.vault.List(saveLocation)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return []SavedItem{}, nil
	case errors.Is(err, vault.ErrNotDirectory):
		return nil, fmt.Errorf("%w: %s", post.ErrNotDirectory, saveLocation)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", post.ErrIO, err)
	}

	items := make([]SavedItem, 0, len(entries))
	for _, e := range entries {
		ok, err := doublestar.Match(l.pattern, e.Name)
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", l.pattern, err)
		}
		if !ok {
			continue
		}

		item := SavedItem{
			Name:    e.Name,
			Path:    e.Path,
			Size:    e.Size,
			ModTime: e.ModTime,
		}

		content, err := l.vault.Read(e.Path)
		if err != nil {
			l.log.Warn().Err(err).Str("path", e.Path).Msg("skipping summary")
		} else {
			sum := post.Summarize(content)
			item.Title = sum.Title
			item.Words = sum.Words
		}
		if item.Title == "" {
			item.Title = item.Stem()
		}

		items = append(items, item)
	}

	return items, nil
}

// Resolve finds a saved post by name. name may be a vault path, a file name
// inside saveLocation, or a slug without the .md extension.
func (l *Library) Resolve(saveLocation, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", post.ErrInvalidInput)
	}

	candidates := []string{name}
	if saveLocation != "" {
		candidates = append(candidates, path.Join(saveLocation, name))
	}
	if path.Ext(name) != ".md" {
		candidates = append(candidates, name+".md")
		if saveLocation != "" {
			candidates = append(candidates, path.Join(saveLocation, name+".md"))
		}
	}

	for _, c := range candidates {
		if validate.RelativePath(c) != nil {
			continue
		}
		if l.vault.Exists(c) {
			return c, nil
		}
	}

	return "", fmt.Errorf("%w: %s", fs.ErrNotExist, name)
}

// Check reports which of paths still exist in the vault.
func (l *Library) Check(paths []string) []RecentEntry {
	out := make([]RecentEntry, len(paths))
	for i, p := range paths {
		out[i] = RecentEntry{Path: p, Exists: validate.RelativePath(p) == nil && l.vault.Exists(p)}
	}
	return out
}

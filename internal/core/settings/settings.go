// Package settings defines the persisted user settings and the recent-items list.
package settings

import (
	"context"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/efie/internal/core/validate"
)

// DefaultSaveLocation is the vault directory posts are saved to when unset.
const DefaultSaveLocation = "blog-posts"

// Settings holds the values the fetch dialog and settings form edit, plus the
// list of recently saved files.
type Settings struct {
	Host         string   `json:"host"`
	Slug         string   `json:"slug"`
	SaveLocation string   `json:"saveLocation"`
	RecentBlogs  []string `json:"recentBlogs,omitempty"`
}

// Default returns settings for a fresh install.
func Default() Settings {
	return Settings{
		Host:         "",
		Slug:         "",
		SaveLocation: DefaultSaveLocation,
	}
}

// HasSaveLocation reports whether a save location is configured.
func (s *Settings) HasSaveLocation() bool {
	return strings.TrimSpace(s.SaveLocation) != ""
}

// AddRecent appends path as the most recent entry. Duplicates are kept.
func (s *Settings) AddRecent(path string) {
	s.RecentBlogs = append(s.RecentBlogs, path)
}

// Recent returns a copy of the recent list, oldest first.
func (s *Settings) Recent() []string {
	out := make([]string, len(s.RecentBlogs))
	copy(out, s.RecentBlogs)
	return out
}

// Validate checks the fields needed to fetch and save a post. Empty host and
// slug are allowed here since the fetch dialog may still fill them in.
func (s *Settings) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if s.Host != "" {
		if err := validate.Host(s.Host); err != nil {
			errs = errs.Append("host", err)
		}
	}

	if s.Slug != "" {
		if err := validate.Slug(s.Slug); err != nil {
			errs = errs.Append("slug", err)
		}
	}

	if err := validate.SaveLocation(s.SaveLocation); err != nil {
		errs = errs.Append("saveLocation", err)
	}

	return errs.ToError()
}

// Store defines persistence operations for settings.
type Store interface {
	// Load returns the persisted settings merged over Default.
	Load(ctx context.Context) (Settings, error)
	// Save overwrites the persisted settings.
	Save(ctx context.Context, s Settings) error
	// Update loads the settings, applies fn and saves the result as one
	// step with respect to other writers.
	Update(ctx context.Context, fn func(*Settings)) (Settings, error)
}

// Package validate provides shared validation functions for user supplied
// hosts, slugs and vault paths.
package validate

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goliatone/go-slug"
)

// Host validates a publication host such as "alice.hashnode.dev".
func Host(host string) error {
	if strings.TrimSpace(host) == "" {
		return errors.New("host is required")
	}
	if strings.ContainsAny(host, "/:") {
		return fmt.Errorf("host %q must be a bare domain without scheme or path", host)
	}
	if err := validation.Validate(host, is.Host); err != nil {
		return fmt.Errorf("host %q: %w", host, err)
	}
	return nil
}

// Slug validates a post slug. Slugs become file names, so path separators and
// dot segments are rejected before the general slug rules are applied.
func Slug(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("slug is required")
	}
	if strings.ContainsAny(s, `/\`) || s == "." || s == ".." {
		return fmt.Errorf("slug %q must not contain path separators", s)
	}
	if !slug.IsValid(s) {
		return fmt.Errorf("slug %q is not a valid url slug", s)
	}
	return nil
}

// SaveLocation validates a vault-relative directory.
func SaveLocation(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return errors.New("save location is required")
	}
	return RelativePath(dir)
}

// RelativePath rejects absolute paths and paths that climb out of the vault.
func RelativePath(p string) error {
	if filepath.IsAbs(p) || path.IsAbs(filepath.ToSlash(p)) {
		return fmt.Errorf("path %q must be relative to the vault", p)
	}
	cleaned := path.Clean(filepath.ToSlash(p))
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("path %q escapes the vault", p)
	}
	return nil
}

// Package forms holds the interactive huh forms for fetching posts and
// editing settings.
package forms

import (
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/hay-kot/efie/internal/core/settings"
	"github.com/hay-kot/efie/internal/core/validate"
	"github.com/hay-kot/efie/internal/styles"
)

// FetchValues are the fields of the fetch dialog.
type FetchValues struct {
	Host string
	Slug string
}

// FetchValuesFrom prefills the fetch dialog from the stored settings.
func FetchValuesFrom(st settings.Settings) FetchValues {
	return FetchValues{Host: st.Host, Slug: st.Slug}
}

// Trimmed returns v with surrounding whitespace removed.
func (v FetchValues) Trimmed() FetchValues {
	return FetchValues{
		Host: strings.TrimSpace(v.Host),
		Slug: strings.TrimSpace(v.Slug),
	}
}

// NewFetchForm builds the two field fetch dialog bound to v.
func NewFetchForm(v *FetchValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hashnode host").
				Description("The publication domain").
				Placeholder("yourblog.hashnode.dev").
				Value(&v.Host).
				Validate(trimmed(validate.Host)),
			huh.NewInput().
				Title("Post slug").
				Description("The last part of the post url").
				Placeholder("my-first-post").
				Value(&v.Slug).
				Validate(trimmed(validate.Slug)),
		),
	).WithTheme(styles.FormTheme())
}

// RunFetch shows the fetch dialog prefilled with initial and returns the
// submitted values. A cancelled dialog returns huh.ErrUserAborted.
func RunFetch(initial FetchValues) (FetchValues, error) {
	v := initial
	if err := NewFetchForm(&v).Run(); err != nil {
		return FetchValues{}, err
	}
	return v.Trimmed(), nil
}

// SettingsValues are the fields of the settings form.
type SettingsValues struct {
	Host         string
	Slug         string
	SaveLocation string
}

// SettingsValuesFrom prefills the settings form.
func SettingsValuesFrom(st settings.Settings) SettingsValues {
	return SettingsValues{Host: st.Host, Slug: st.Slug, SaveLocation: st.SaveLocation}
}

// Apply copies the form values onto st, leaving the recent list untouched.
func (v SettingsValues) Apply(st *settings.Settings) {
	st.Host = strings.TrimSpace(v.Host)
	st.Slug = strings.TrimSpace(v.Slug)
	st.SaveLocation = strings.TrimSpace(v.SaveLocation)
}

// NewSettingsForm builds the three field settings form bound to v. Host and
// slug may be left empty.
func NewSettingsForm(v *SettingsValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Hashnode host").
				Placeholder("yourblog.hashnode.dev").
				Value(&v.Host).
				Validate(optional(validate.Host)),
			huh.NewInput().
				Title("Post slug").
				Placeholder("my-first-post").
				Value(&v.Slug).
				Validate(optional(validate.Slug)),
			huh.NewInput().
				Title("Save location").
				Description("Folder inside the vault where posts are saved").
				Placeholder(settings.DefaultSaveLocation).
				Value(&v.SaveLocation).
				Validate(trimmed(validate.SaveLocation)),
		),
	).WithTheme(styles.FormTheme())
}

// RunSettings shows the settings form for st and returns the edited settings.
func RunSettings(st settings.Settings) (settings.Settings, error) {
	v := SettingsValuesFrom(st)
	if err := NewSettingsForm(&v).Run(); err != nil {
		return settings.Settings{}, err
	}
	v.Apply(&st)
	return st, nil
}

func trimmed(fn func(string) error) func(string) error {
	return func(s string) error {
		return fn(strings.TrimSpace(s))
	}
}

func optional(fn func(string) error) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		return fn(s)
	}
}

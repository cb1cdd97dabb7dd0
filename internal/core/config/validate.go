package config

import (
	"fmt"
	"net/url"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/hay-kot/criterio"

	"github.com/hay-kot/efie/internal/core/post"
	"github.com/hay-kot/efie/internal/core/validate"
	"github.com/hay-kot/efie/pkg/tmpl"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// OpenTemplateData defines available fields for the open_command template.
type OpenTemplateData struct {
	Path  string
	Name  string
	Vault string
}

// Validate checks that the configuration is valid. Errors are returned as
// criterio.FieldErrors keyed by the yaml field name.
func (c *Config) Validate() error {
	var errs criterio.FieldErrorsBuilder

	if c.DataDir == "" {
		errs = errs.Append("data_dir", fmt.Errorf("data directory cannot be empty"))
	}

	if c.VaultDir == "" {
		errs = errs.Append("vault", fmt.Errorf("vault directory cannot be empty"))
	}

	if err := validateEndpoint(c.Endpoint); err != nil {
		errs = errs.Append("endpoint", err)
	}

	if c.Timeout < 0 {
		errs = errs.Append("timeout", fmt.Errorf("must not be negative"))
	}

	if !c.SinkKind().Valid() {
		errs = errs.Append("sink", fmt.Errorf("invalid sink %q (use file, document or terminal)", c.Sink))
	}

	if c.ActiveDocument != "" {
		if err := validate.RelativePath(c.ActiveDocument); err != nil {
			errs = errs.Append("active_document", err)
		}
	}

	if !doublestar.ValidatePattern(c.ListPattern) {
		errs = errs.Append("list_pattern", fmt.Errorf("invalid glob pattern %q", c.ListPattern))
	}

	if _, err := tmpl.Render(c.OpenCommand, OpenTemplateData{}); err != nil {
		errs = errs.Append("open_command", fmt.Errorf("template error: %w", err))
	}

	if _, ok := glamourstyles.DefaultStyles[c.Render.Style]; !ok && c.Render.Style != glamourstyles.AutoStyle {
		errs = errs.Append("render.style", fmt.Errorf("unknown style %q", c.Render.Style))
	}

	if c.Render.WordWrap < 0 {
		errs = errs.Append("render.word_wrap", fmt.Errorf("must not be negative"))
	}

	return errs.ToError()
}

// Warnings returns non-fatal issues worth surfacing in doctor output.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if u, err := url.Parse(c.Endpoint); err == nil && u.Scheme == "http" {
		warnings = append(warnings, ValidationWarning{
			Category: "Endpoint",
			Item:     "endpoint",
			Message:  "endpoint uses plain http",
		})
	}

	if c.VaultDir != "" {
		if info, err := os.Stat(c.VaultDir); err != nil {
			warnings = append(warnings, ValidationWarning{
				Category: "File Access",
				Item:     "vault",
				Message:  fmt.Sprintf("cannot access %s: %v", c.VaultDir, err),
			})
		} else if !info.IsDir() {
			warnings = append(warnings, ValidationWarning{
				Category: "File Access",
				Item:     "vault",
				Message:  fmt.Sprintf("%s exists but is not a directory", c.VaultDir),
			})
		}
	}

	if c.Sink == string(post.SinkDocument) && c.ActiveDocument == "" {
		warnings = append(warnings, ValidationWarning{
			Category: "Sink",
			Item:     "active_document",
			Message:  "document sink selected but no active_document set; pass --into when fetching",
		})
	}

	return warnings
}

func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must use http or https", endpoint)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", endpoint)
	}
	return nil
}

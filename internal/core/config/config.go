// Package config handles configuration loading and validation for efie.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hay-kot/efie/internal/core/post"
)

// DefaultEndpoint is the Hashnode GraphQL endpoint.
const DefaultEndpoint = "https://gql.hashnode.com"

// DefaultOpenCommand opens a saved post in the user's editor.
const DefaultOpenCommand = `${EDITOR:-vi} {{ .Path | shq }}`

// Config holds the application configuration.
type Config struct {
	Endpoint           string        `yaml:"endpoint"`
	Timeout            time.Duration `yaml:"timeout"` // 0 = no timeout
	Sink               string        `yaml:"sink"`
	ActiveDocument     string        `yaml:"active_document"`
	CreateSaveLocation bool          `yaml:"create_save_location"`
	ListPattern        string        `yaml:"list_pattern"`
	OpenCommand        string        `yaml:"open_command"`
	Render             RenderConfig  `yaml:"render"`
	VaultDir           string        `yaml:"-"` // set by caller, not from config file
	DataDir            string        `yaml:"-"` // set by caller, not from config file
}

// RenderConfig controls terminal rendering of markdown.
type RenderConfig struct {
	Style    string `yaml:"style"`
	WordWrap int    `yaml:"word_wrap"` // 0 = terminal width
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:           DefaultEndpoint,
		Sink:               string(post.SinkFile),
		CreateSaveLocation: true,
		ListPattern:        "*",
		OpenCommand:        DefaultOpenCommand,
		Render: RenderConfig{
			Style: "tokyo-night",
		},
	}
}

// Load reads configuration from the given path and sets the vault and data
// directories. If configPath is empty or doesn't exist, returns defaults.
func Load(configPath, vaultDir, dataDir string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.VaultDir = vaultDir
	cfg.DataDir = dataDir

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Endpoint == "" {
		c.Endpoint = defaults.Endpoint
	}
	if c.Sink == "" {
		c.Sink = defaults.Sink
	}
	if c.ListPattern == "" {
		c.ListPattern = defaults.ListPattern
	}
	if c.OpenCommand == "" {
		c.OpenCommand = defaults.OpenCommand
	}
	if c.Render.Style == "" {
		c.Render.Style = defaults.Render.Style
	}
}

// SinkKind returns the configured sink.
func (c *Config) SinkKind() post.SinkKind {
	return post.SinkKind(c.Sink)
}

// SettingsFile returns the path to the settings JSON file.
func (c *Config) SettingsFile() string {
	return filepath.Join(c.DataDir, "settings.json")
}

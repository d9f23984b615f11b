// Package config provides user configuration management, including reading
// and writing the headsup configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"headsup.dev/headsup/internal/output"
)

// Config represents the user configuration
type Config struct {
	// PromptFormat is an fmt format string applied to the branch name by
	// the prompt command, e.g. " (%s)".
	PromptFormat *string `json:"promptFormat,omitempty"`

	// BranchColor is the hex color used for branch names on a tty.
	BranchColor *string `json:"branchColor,omitempty"`

	// DetachedColor is the hex color used for detached-HEAD markers.
	DetachedColor *string `json:"detachedColor,omitempty"`
}

// Path returns the configuration file path. HEADSUP_CONFIG_PATH takes
// precedence over the per-user config directory.
func Path() (string, error) {
	if p := os.Getenv("HEADSUP_CONFIG_PATH"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "headsup", "config.json"), nil
}

// Load reads the user configuration. A missing file is not an error and
// returns the default configuration.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Config doesn't exist - return default
		return &Config{}, nil
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// Save writes the configuration to the config file, creating parent
// directories as needed.
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetPromptFormat returns the configured prompt format, or "%s" as default
func (c *Config) GetPromptFormat() string {
	if c.PromptFormat != nil && *c.PromptFormat != "" {
		return *c.PromptFormat
	}
	return "%s"
}

// GetBranchColor returns the configured branch color, or the default
func (c *Config) GetBranchColor() string {
	if c.BranchColor != nil && *c.BranchColor != "" {
		return *c.BranchColor
	}
	return output.DefaultBranchColor
}

// GetDetachedColor returns the configured detached-HEAD color, or the default
func (c *Config) GetDetachedColor() string {
	if c.DetachedColor != nil && *c.DetachedColor != "" {
		return *c.DetachedColor
	}
	return output.DefaultDetachedColor
}

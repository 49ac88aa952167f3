// Package config models the slice of host configuration the redirects plugin
// consumes: its own redirect_maps block plus the host-level settings that
// control how output paths are shaped.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PluginConfig is the plugin's own configuration block.
type PluginConfig struct {
	// RedirectMaps maps old markdown source paths to their new target, either
	// another source path or an absolute URL. Immutable during a build.
	RedirectMaps map[string]string `yaml:"redirect_maps"`
}

// HostConfig is the read-only view of host build settings the plugin needs.
type HostConfig struct {
	UseDirectoryURLs bool   `yaml:"use_directory_urls"`
	SiteDir          string `yaml:"site_dir"`

	// Extra captures remaining top-level keys so deprecated settings can be
	// detected without modeling the whole host schema.
	Extra map[string]any `yaml:",inline"`
}

// HasLegacyRedirects reports whether the removed top-level 'redirects' key is
// present and non-empty. It was replaced by the plugin-level redirect_maps.
func (h *HostConfig) HasLegacyRedirects() bool {
	v, ok := h.Extra["redirects"]
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case map[string]any:
		return len(t) > 0
	case []any:
		return len(t) > 0
	case string:
		return t != ""
	default:
		return true
	}
}

// Load reads and parses a plugin configuration file.
func Load(configPath string) (*PluginConfig, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a plugin configuration document.
func Parse(data []byte) (*PluginConfig, error) {
	var cfg PluginConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.RedirectMaps == nil {
		cfg.RedirectMaps = map[string]string{}
	}
	return &cfg, nil
}

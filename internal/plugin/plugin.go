// Package plugin provides the lifecycle framing the host site builder uses to
// drive build plugins: metadata, the two build hooks, a shared context, and a
// registry for discovery.
package plugin

import (
	"fmt"

	"git.home.luguber.info/inful/redirects/internal/docmodel"
)

// Plugin represents a build plugin with metadata and configuration validation.
type Plugin interface {
	// Metadata returns the plugin's metadata (name, version, type).
	Metadata() Metadata

	// Validate checks if the plugin can run with the given configuration.
	// Returns an error if the configuration is invalid or incompatible.
	Validate(config map[string]any) error
}

// BuildHooks is implemented by plugins that participate in the build
// lifecycle. The host invokes OnFiles once it has enumerated the site files
// and OnPostBuild once all site output is written, always in that order.
type BuildHooks interface {
	Plugin

	// OnFiles receives the enumerated site files before rendering starts.
	OnFiles(pctx *Context, files docmodel.Files) error

	// OnPostBuild runs after the host has written all site output.
	OnPostBuild(pctx *Context) error
}

// Type identifies the category of plugin.
type Type string

const (
	// TypeTransform modifies content during the build pipeline.
	TypeTransform Type = "transform"

	// TypePostBuild generates additional output after the site is rendered.
	TypePostBuild Type = "postbuild"
)

// IsValid returns true if the plugin type is recognized.
func (t Type) IsValid() bool {
	switch t {
	case TypeTransform, TypePostBuild:
		return true
	default:
		return false
	}
}

// String returns the string representation of the plugin type.
func (t Type) String() string {
	return string(t)
}

// Metadata describes a plugin's identity.
type Metadata struct {
	// Name is the unique plugin identifier (e.g., "redirects").
	Name string

	// Version is the semantic version (e.g., "v1.0.0").
	Version string

	// Type identifies the plugin category.
	Type Type

	// Description provides a human-readable summary of the plugin's purpose.
	Description string
}

// String returns a human-readable representation of the plugin metadata.
func (m Metadata) String() string {
	return fmt.Sprintf("%s@%s (%s)", m.Name, m.Version, m.Type)
}

// Validate checks if the plugin metadata is valid.
func (m Metadata) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("plugin name is required")
	}
	if m.Version == "" {
		return fmt.Errorf("plugin version is required")
	}
	if !m.Type.IsValid() {
		return fmt.Errorf("invalid plugin type: %s", m.Type)
	}
	return nil
}

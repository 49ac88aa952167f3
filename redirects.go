// Package redirects is the public surface of the redirects build plugin.
// It re-exports the plugin, its configuration types, and the host
// collaborator model so a host site builder can drive the two lifecycle
// hooks without reaching into internal packages.
package redirects

import (
	"context"
	"log/slog"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/redirects/internal/config"
	"git.home.luguber.info/inful/redirects/internal/diag"
	"git.home.luguber.info/inful/redirects/internal/docmodel"
	"git.home.luguber.info/inful/redirects/internal/metrics"
	"git.home.luguber.info/inful/redirects/internal/plugin"
	"git.home.luguber.info/inful/redirects/internal/redirect"
)

// Aliases forming the host-facing API.
type (
	// Plugin is the redirects build plugin.
	Plugin = redirect.Plugin

	// Config is the plugin's redirect_maps configuration block.
	Config = config.PluginConfig

	// HostConfig is the read-only view of host build settings.
	HostConfig = config.HostConfig

	// Context is the per-build state threaded through both lifecycle hooks.
	Context = plugin.Context

	// ContextOption customizes a Context at construction time.
	ContextOption = plugin.Option

	// Page describes one source file enumerated by the host.
	Page = docmodel.Page

	// Files is the host's enumeration of site files.
	Files = docmodel.Files

	// Registry manages plugin registration for a host build system.
	Registry = plugin.Registry

	// Report collects structured warnings for strict-mode escalation.
	Report = diag.Report

	// MetricsRecorder receives observability events from the plugin.
	MetricsRecorder = metrics.Recorder
)

// New creates the redirects plugin from its configuration block.
func New(cfg *Config) *Plugin { return redirect.New(cfg) }

// NewContext creates the per-build context the host threads through the
// plugin's OnFiles and OnPostBuild hooks.
func NewContext(ctx context.Context, logger *slog.Logger, host *HostConfig, opts ...ContextOption) *Context {
	return plugin.NewContext(ctx, logger, host, opts...)
}

// WithBuildID sets the host-assigned build identifier on a Context.
func WithBuildID(id string) ContextOption { return plugin.WithBuildID(id) }

// WithMetrics injects a metrics recorder into a Context.
func WithMetrics(r MetricsRecorder) ContextOption { return plugin.WithMetrics(r) }

// NewPrometheusRecorder constructs a Prometheus-backed metrics recorder
// registered on reg (a private registry is created when reg is nil).
func NewPrometheusRecorder(reg *prom.Registry) MetricsRecorder {
	return metrics.NewPrometheusRecorder(reg)
}

// LoadConfig reads and parses a plugin configuration file.
func LoadConfig(path string) (*Config, error) { return config.Load(path) }

// ParseConfig decodes a plugin configuration document.
func ParseConfig(data []byte) (*Config, error) { return config.Parse(data) }

// NewRegistry creates an empty plugin registry.
func NewRegistry() *Registry { return plugin.NewRegistry() }

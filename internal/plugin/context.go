package plugin

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/redirects/internal/config"
	"git.home.luguber.info/inful/redirects/internal/diag"
	"git.home.luguber.info/inful/redirects/internal/metrics"
)

// Context provides plugins with access to host services and per-build state.
// The host constructs one Context per build and threads it through both
// lifecycle hooks, so state a plugin records during OnFiles is visible during
// OnPostBuild without any process-global storage.
type Context struct {
	// Context is the standard Go context for cancellation and deadlines.
	Context context.Context

	// Logger provides structured logging for plugin operations.
	Logger *slog.Logger

	// Host is the read-only view of the host build configuration.
	Host *config.HostConfig

	// BuildID uniquely identifies this build.
	BuildID string

	// Report collects structured warnings for strict-mode escalation.
	Report *diag.Report

	// Metrics receives observability events. Never nil.
	Metrics metrics.Recorder
}

// Option customizes a Context at construction time.
type Option func(*Context)

// WithBuildID sets the host-assigned build identifier.
func WithBuildID(id string) Option {
	return func(c *Context) { c.BuildID = id }
}

// WithMetrics injects a metrics recorder.
func WithMetrics(r metrics.Recorder) Option {
	return func(c *Context) { c.Metrics = r }
}

// NewContext creates a plugin context for one build. A build ID is generated
// when the host does not supply one.
func NewContext(ctx context.Context, logger *slog.Logger, host *config.HostConfig, opts ...Option) *Context {
	if logger == nil {
		logger = slog.Default()
	}
	pc := &Context{
		Context: ctx,
		Logger:  logger,
		Host:    host,
		Report:  diag.NewReport(),
		Metrics: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(pc)
	}
	if pc.BuildID == "" {
		pc.BuildID = uuid.NewString()
	}
	return pc
}

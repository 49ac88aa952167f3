package metrics

import "time"

// KindLabel enumerates how a redirect destination was resolved.
type KindLabel string

const (
	KindExternal KindLabel = "external"
	KindInternal KindLabel = "internal"
)

// Recorder defines observability hooks for redirect generation. Implementations
// may forward to Prometheus, OpenTelemetry, etc. All methods must be safe for nil receivers
// when using the NoopRecorder (allowing optional injection).
type Recorder interface {
	IncRedirectWritten(kind KindLabel)
	IncRedirectSkipped(reason string) // reason: missing_target
	ObserveEmitDuration(d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncRedirectWritten(KindLabel)      {}
func (NoopRecorder) IncRedirectSkipped(string)         {}
func (NoopRecorder) ObserveEmitDuration(time.Duration) {}

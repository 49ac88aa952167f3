package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once         sync.Once
	written      *prom.CounterVec
	skipped      *prom.CounterVec
	emitDuration prom.Histogram
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.written = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "redirects",
			Name:      "written_total",
			Help:      "Redirect stubs written, by destination kind",
		}, []string{"kind"})
		pr.skipped = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "redirects",
			Name:      "skipped_total",
			Help:      "Redirect entries skipped, by reason",
		}, []string{"reason"})
		pr.emitDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "redirects",
			Name:      "emit_duration_seconds",
			Help:      "Duration of the post-build emission hook",
			Buckets:   prom.DefBuckets,
		})
		reg.MustRegister(pr.written, pr.skipped, pr.emitDuration)
	})
	return pr
}

func (p *PrometheusRecorder) IncRedirectWritten(kind KindLabel) {
	if p == nil || p.written == nil {
		return
	}
	p.written.WithLabelValues(string(kind)).Inc()
}

func (p *PrometheusRecorder) IncRedirectSkipped(reason string) {
	if p == nil || p.skipped == nil {
		return
	}
	p.skipped.WithLabelValues(reason).Inc()
}

func (p *PrometheusRecorder) ObserveEmitDuration(d time.Duration) {
	if p == nil || p.emitDuration == nil {
		return
	}
	p.emitDuration.Observe(d.Seconds())
}

package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/revwatch/internal/core/ports"
)

const namespace = "revwatch"

// PrometheusRecorder implements ports.Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg           *prom.Registry
	iterations    *prom.CounterVec
	configReloads *prom.CounterVec
	cleanups      *prom.CounterVec
	skipped       prom.Counter
	builds        *prom.CounterVec
	buildDuration *prom.HistogramVec
	packages      *prom.CounterVec
	watermark     prom.Gauge
}

var _ ports.Recorder = (*PrometheusRecorder)(nil)

// NewPrometheusRecorder constructs the metrics and registers them on reg.
// A nil reg creates a private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		iterations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "iterations_total",
			Help:      "Control loop iterations by result",
		}, []string{"result"}),
		configReloads: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "config_reloads_total",
			Help:      "Configuration reloads by result",
		}, []string{"result"}),
		cleanups: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "cleanups_total",
			Help:      "Working copy cleanups by result",
		}, []string{"result"}),
		skipped: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "skipped_builds_total",
			Help:      "Builds skipped by a log keyword",
		}),
		builds: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Builds by outcome",
		}, []string{"outcome"}),
		buildDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Build tool run time",
			Buckets:   prom.ExponentialBuckets(30, 2, 10),
		}, []string{"outcome"}),
		packages: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "packages_total",
			Help:      "Packaged builds by result",
		}, []string{"result"}),
		watermark: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "last_built_revision",
			Help:      "Last settled revision",
		}),
	}
	reg.MustRegister(pr.iterations, pr.configReloads, pr.cleanups, pr.skipped,
		pr.builds, pr.buildDuration, pr.packages, pr.watermark)
	return pr
}

// Handler serves the registry in the Prometheus exposition format.
func (p *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(p.reg, promhttp.HandlerOpts{EnableOpenMetrics: true})
}

func (p *PrometheusRecorder) IncIteration(result string) {
	p.iterations.WithLabelValues(result).Inc()
}

func (p *PrometheusRecorder) IncConfigReload(success bool) {
	p.configReloads.WithLabelValues(resultLabel(success)).Inc()
}

func (p *PrometheusRecorder) IncCleanup(success bool) {
	p.cleanups.WithLabelValues(resultLabel(success)).Inc()
}

func (p *PrometheusRecorder) IncSkippedBuild() {
	p.skipped.Inc()
}

func (p *PrometheusRecorder) ObserveBuild(outcome domain.BuildOutcome, d time.Duration) {
	p.builds.WithLabelValues(outcome.String()).Inc()
	p.buildDuration.WithLabelValues(outcome.String()).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncPackage(success bool) {
	p.packages.WithLabelValues(resultLabel(success)).Inc()
}

func (p *PrometheusRecorder) SetWatermark(revision int) {
	p.watermark.Set(float64(revision))
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}
	return "failed"
}

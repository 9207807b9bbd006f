package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// AdSyncMetrics registra sincronizações e consultas de métricas por plataforma
type AdSyncMetrics struct {
	duration *prometheus.HistogramVec
	syncs    *prometheus.CounterVec
	rows     *prometheus.CounterVec
	requests *prometheus.CounterVec
}

// NewAdSyncMetrics registra os coletores no registerer; com reg nil todas as chamadas viram no-op
func NewAdSyncMetrics(reg prometheus.Registerer) *AdSyncMetrics {
	if reg == nil {
		return &AdSyncMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ad_sync_duration_seconds",
		Help:    "Duration of ad account syncs in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"platform"})
	syncs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ad_sync_total",
		Help: "Ad account syncs by result.",
	}, []string{"platform", "result"})
	rows := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ad_sync_rows_total",
		Help: "Rows written or skipped by ad account syncs.",
	}, []string{"platform", "kind"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ad_metrics_requests_total",
		Help: "Per-ad metrics results by platform and outcome.",
	}, []string{"platform", "result"})
	reg.MustRegister(duration, syncs, rows, requests)
	return &AdSyncMetrics{
		duration: duration,
		syncs:    syncs,
		rows:     rows,
		requests: requests,
	}
}

// ObserveSync grava duração, resultado e contagens de uma sincronização
func (m *AdSyncMetrics) ObserveSync(platform string, ok bool, campaigns, ads, skipped int, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	platform = normalizeLabel(platform)
	m.duration.WithLabelValues(platform).Observe(duration.Seconds())
	m.syncs.WithLabelValues(platform, result(ok)).Inc()
	m.rows.WithLabelValues(platform, "campaign").Add(float64(campaigns))
	m.rows.WithLabelValues(platform, "ad").Add(float64(ads))
	m.rows.WithLabelValues(platform, "skipped").Add(float64(skipped))
}

// ObserveMetrics conta os resultados por anúncio de uma consulta de métricas
func (m *AdSyncMetrics) ObserveMetrics(platform string, ok, failed int) {
	if m == nil || m.requests == nil {
		return
	}
	platform = normalizeLabel(platform)
	m.requests.WithLabelValues(platform, "ok").Add(float64(ok))
	m.requests.WithLabelValues(platform, "error").Add(float64(failed))
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "error"
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}

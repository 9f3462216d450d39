// Package monitoring exposes Prometheus metrics for HTTP traffic, report
// builds, limit evaluations and the tracking-start cache.
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "paindiary"

// Metrics holds the application collectors. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	reportBuilds     *prometheus.CounterVec
	reportDuration   *prometheus.HistogramVec
	reportDays       prometheus.Histogram
	limitStatuses    *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
	entriesCreated   prometheus.Counter
	overuseFlagCount prometheus.Counter
}

// NewMetrics creates the collectors and registers them, together with the Go
// runtime and process collectors, in a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total count of HTTP requests processed by route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Histogram of HTTP request durations by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		reportBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_builds_total",
			Help:      "Total report builds by kind and outcome.",
		}, []string{"kind", "outcome"}),
		reportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_build_duration_seconds",
			Help:      "Histogram of report build durations including loads.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"kind"}),
		reportDays: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_window_days",
			Help:      "Calendar days covered by built reports.",
			Buckets:   []float64{7, 30, 90, 180, 365, 730, 1825},
		}),
		limitStatuses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "limit_evaluations_total",
			Help:      "Total limit evaluations by resulting status.",
		}, []string{"status"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tracking_start_cache_lookups_total",
			Help:      "Tracking-start cache lookups by result.",
		}, []string{"result"}),
		entriesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_created_total",
			Help:      "Total diary entries created.",
		}),
		overuseFlagCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_overuse_flags_total",
			Help:      "Total reports that raised the medication-overuse flag.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.reportBuilds,
		m.reportDuration,
		m.reportDays,
		m.limitStatuses,
		m.cacheLookups,
		m.entriesCreated,
		m.overuseFlagCount,
	)

	return m
}

// Registry returns the registry the collectors live in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveReport records one report build. calendarDays and overuse are only
// recorded for successful builds.
func (m *Metrics) ObserveReport(kind string, d time.Duration, calendarDays int, overuse bool, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.reportBuilds.WithLabelValues(kind, outcome).Inc()
	m.reportDuration.WithLabelValues(kind).Observe(d.Seconds())
	if err != nil {
		return
	}
	m.reportDays.Observe(float64(calendarDays))
	if overuse {
		m.overuseFlagCount.Inc()
	}
}

// LimitEvaluated counts one limit evaluation by status.
func (m *Metrics) LimitEvaluated(status string) {
	if m == nil {
		return
	}
	m.limitStatuses.WithLabelValues(status).Inc()
}

// CacheHit counts a tracking-start cache hit.
func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues("hit").Inc()
}

// CacheMiss counts a tracking-start cache miss.
func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues("miss").Inc()
}

// EntryCreated counts one created diary entry.
func (m *Metrics) EntryCreated() {
	if m == nil {
		return
	}
	m.entriesCreated.Inc()
}

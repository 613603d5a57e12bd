// Package metrics exposes Prometheus collectors for the HTTP surface, the
// remote store and sign-ins.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login outcomes.
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
)

// Metrics holds all collectors on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	StoreCallsTotal   *prometheus.CounterVec
	StoreCallDuration *prometheus.HistogramVec

	LoginsTotal *prometheus.CounterVec

	ServerStartTime prometheus.Gauge
}

// New creates and registers all collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "volleystats_http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "route", "status_code"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "volleystats_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),

		StoreCallsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "volleystats_store_calls_total",
			Help: "Total number of remote store calls.",
		}, []string{"collection", "operation", "outcome"}),

		StoreCallDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "volleystats_store_call_duration_seconds",
			Help:    "Remote store call duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"collection", "operation"}),

		LoginsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "volleystats_logins_total",
			Help: "Total number of login attempts by outcome.",
		}, []string{"outcome"}),

		ServerStartTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "volleystats_server_start_time_seconds",
			Help: "Unix timestamp when the server started.",
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.StoreCallsTotal,
		m.StoreCallDuration,
		m.LoginsTotal,
		m.ServerStartTime,
	)
	m.ServerStartTime.Set(float64(time.Now().Unix()))

	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

// Registry returns the private registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordLogin counts a login attempt.
func (m *Metrics) RecordLogin(success bool) {
	outcome := LoginFailure
	if success {
		outcome = LoginSuccess
	}
	m.LoginsTotal.WithLabelValues(outcome).Inc()
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveStoreCall records one remote store call.
func (m *Metrics) ObserveStoreCall(collection, operation, outcome string, elapsed time.Duration) {
	m.StoreCallsTotal.WithLabelValues(collection, operation, outcome).Inc()
	m.StoreCallDuration.WithLabelValues(collection, operation).Observe(elapsed.Seconds())
}

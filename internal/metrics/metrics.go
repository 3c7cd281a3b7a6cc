// Package metrics exposes the Prometheus collectors used across the app.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the app collectors on a private registry so tests can
// create as many instances as they like.
type Metrics struct {
	registry *prometheus.Registry

	Joins             *prometheus.CounterVec
	WalletTxs         *prometheus.CounterVec
	StatusTransitions *prometheus.CounterVec
	CacheLookups      *prometheus.CounterVec
	EventsPublished   *prometheus.CounterVec
	WSClients         prometheus.Gauge
	HTTPRequests      *prometheus.CounterVec
}

// New registers every collector on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		Joins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_competition_joins_total",
			Help: "Join attempts by outcome",
		}, []string{"outcome"}),
		WalletTxs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_wallet_transactions_total",
			Help: "Recorded wallet transactions by type",
		}, []string{"type"}),
		StatusTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_status_transitions_total",
			Help: "Competition status changes seen by the live ticker",
		}, []string{"status"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_cache_lookups_total",
			Help: "Leaderboard cache lookups by result",
		}, []string{"result"}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_events_published_total",
			Help: "Wallet events handed to the publisher by result",
		}, []string{"result"}),
		WSClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arena_ws_clients",
			Help: "Connected websocket clients",
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arena_http_requests_total",
			Help: "HTTP requests by method and status code",
		}, []string{"method", "code"}),
	}
	reg.MustRegister(
		m.Joins, m.WalletTxs, m.StatusTransitions, m.CacheLookups, m.EventsPublished, m.WSClients, m.HTTPRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// The helpers below are safe to call on a nil *Metrics so services can run
// without a registry.

func (m *Metrics) ObserveJoin(outcome string) {
	if m == nil {
		return
	}
	m.Joins.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveWalletTx(txType string) {
	if m == nil {
		return
	}
	m.WalletTxs.WithLabelValues(txType).Inc()
}

func (m *Metrics) ObserveStatusTransition(status string) {
	if m == nil {
		return
	}
	m.StatusTransitions.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveCacheLookup(result string) {
	if m == nil {
		return
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveEventPublish(result string) {
	if m == nil {
		return
	}
	m.EventsPublished.WithLabelValues(result).Inc()
}

func (m *Metrics) SetWSClients(n int) {
	if m == nil {
		return
	}
	m.WSClients.Set(float64(n))
}

func (m *Metrics) ObserveHTTP(method string, code int) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, strconv.Itoa(code)).Inc()
}

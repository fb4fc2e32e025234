package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ait", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ait", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	BackendRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ait", Name: "backend_requests_total", Help: "Generative backend calls by outcome."},
		[]string{"backend", "status"},
	)
	BackendLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "ait", Name: "backend_request_duration_seconds",
			Help:    "Generative backend call duration seconds.",
			Buckets: []float64{.25, .5, 1, 2.5, 5, 10, 20, 30, 60},
		},
		[]string{"backend"},
	)
	ItinerarySources = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ait", Name: "itineraries_total", Help: "Generated itineraries by source."},
		[]string{"source"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ait", Name: "cache_events_total", Help: "Cache hits/misses/sets."},
		[]string{"cache", "event"}, // event: hit|miss|set
	)
	MailDeliveries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ait", Name: "mail_deliveries_total", Help: "Contact mails by outcome."},
		[]string{"backend", "status"},
	)
)

// InitRegistry returns a fresh registry holding every collector of this package.
// A collector may live in several registries, so tests can call it repeatedly.
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, BackendRequests, BackendLatency, ItinerarySources, CacheEvents, MailDeliveries)
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveBackend(backend, status string, dur time.Duration) {
	BackendRequests.WithLabelValues(backend, status).Inc()
	BackendLatency.WithLabelValues(backend).Observe(dur.Seconds())
}

func ObserveItinerary(source string) {
	ItinerarySources.WithLabelValues(source).Inc()
}

func ObserveCache(cache, event string) {
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveMail(backend string, err error) {
	status := "sent"
	if err != nil {
		status = "failed"
	}
	MailDeliveries.WithLabelValues(backend, status).Inc()
}

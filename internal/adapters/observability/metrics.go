package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

const namespace = "stayquery"

// Request counts come from the histograms' _count series.
var (
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds",
			Help:    "Inbound request latency by route and status.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)
	ProviderDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "provider", Name: "request_duration_seconds",
			Help:    "Accommodation provider call latency; status is transport_error when no response arrived.",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint", "status"},
	)
	ProviderBreakerOpen = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace, Subsystem: "provider", Name: "breaker_open",
		Help: "1 while the provider circuit breaker is open.",
	})
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Subsystem: "cache", Name: "events_total", Help: "Search cache events."},
		[]string{"event"}, // hit|miss|set|del
	)
	ParsedQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "parsed_queries_total", Help: "Parsed queries by missing fields."},
		[]string{"missing"}, // none, or a comma-joined subset of city/check-in/check-out
	)
	SearchOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "search_outcomes_total", Help: "Where search results came from."},
		[]string{"source", "reason"}, // source: provider|cache|fallback
	)
)

// Serve exposes reg on a dedicated listener; an empty addr disables it.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

// InitRegistry returns a registry holding the service collectors plus the
// Go runtime and process collectors.
func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
		HTTPDuration, ProviderDuration, ProviderBreakerOpen, CacheEvents, ParsedQueries, SearchOutcomes,
	)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(dur.Seconds())
}

// ObserveProvider records one provider round trip; status 0 means the
// request never got a response.
func ObserveProvider(endpoint string, status int, dur time.Duration) {
	s := "transport_error"
	if status > 0 {
		s = strconv.Itoa(status)
	}
	ProviderDuration.WithLabelValues(endpoint, s).Observe(dur.Seconds())
}

func ObserveBreaker(open bool) {
	if open {
		ProviderBreakerOpen.Set(1)
		return
	}
	ProviderBreakerOpen.Set(0)
}

func ObserveCache(event string) { CacheEvents.WithLabelValues(event).Inc() }

// ObserveParse counts one parse by the fields it could not resolve.
func ObserveParse(missing []string) {
	label := "none"
	if len(missing) > 0 {
		label = strings.Join(missing, ",")
	}
	ParsedQueries.WithLabelValues(label).Inc()
}

// ObserveSearch records one completed search; reason is why fallback data
// was served (unavailable|empty|error) or "ok".
func ObserveSearch(source, reason string) {
	SearchOutcomes.WithLabelValues(source, reason).Inc()
}

func LabelErr(err error) string {
	if err == nil {
		return "none"
	}
	return fmt.Sprintf("%T", err)
}

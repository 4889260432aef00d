package infrastructure

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetricsCollector implements the MetricsCollector port with
// prometheus counters registered on the given registerer
type PrometheusMetricsCollector struct {
	apiCalls     *prometheus.CounterVec
	apiLatency   *prometheus.HistogramVec
	cacheHits    prometheus.Counter
	cacheMisses  prometheus.Counter
	favoritesOps *prometheus.CounterVec
}

func NewPrometheusMetricsCollector(registerer prometheus.Registerer) *PrometheusMetricsCollector {
	factory := promauto.With(registerer)

	return &PrometheusMetricsCollector{
		apiCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherdash_weather_api_calls_total",
				Help: "The total number of weather provider calls by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		apiLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weatherdash_weather_api_duration_seconds",
				Help:    "Weather provider call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "weatherdash_cache_hits_total",
			Help: "The total number of weather cache hits",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "weatherdash_cache_misses_total",
			Help: "The total number of weather cache misses",
		}),
		favoritesOps: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherdash_favorites_mutations_total",
				Help: "The total number of favorites add and remove attempts by result",
			},
			[]string{"action", "result"},
		),
	}
}

func (m *PrometheusMetricsCollector) RecordWeatherAPICall(ctx context.Context, endpoint string, outcome string, duration time.Duration) {
	m.apiCalls.WithLabelValues(endpoint, outcome).Inc()
	m.apiLatency.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordCacheHit(ctx context.Context) {
	m.cacheHits.Inc()
}

func (m *PrometheusMetricsCollector) RecordCacheMiss(ctx context.Context) {
	m.cacheMisses.Inc()
}

func (m *PrometheusMetricsCollector) RecordFavoritesMutation(ctx context.Context, action string, result string) {
	m.favoritesOps.WithLabelValues(action, result).Inc()
}

// Package metrics exposes prometheus collectors for the HTTP API and the matcher.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/gcbaptista/go-label-matcher/model"
)

var (
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "labelmatch",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "labelmatch",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	searchCandidates = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "labelmatch",
			Name:      "search_candidates",
			Help:      "Number of candidates scored per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	matchResultsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "labelmatch",
			Name:      "match_results_total",
			Help:      "Matches returned, by match type",
		},
		[]string{"match_type"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(searchCandidates)
	prometheus.MustRegister(matchResultsTotal)
}

// Middleware records HTTP request duration and count.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		path := normalizePath(c.FullPath())
		method := c.Request.Method

		httpRequestDuration.WithLabelValues(method, path, status).Observe(time.Since(start).Seconds())
		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	}
}

// normalizePath uses the route pattern to keep label cardinality bounded.
func normalizePath(path string) string {
	if path == "" {
		return "unknown"
	}
	return path
}

// ObserveSearch records the candidate count and the match types of a search.
func ObserveSearch(candidates int, results []model.SearchResult) {
	searchCandidates.Observe(float64(candidates))
	for _, r := range results {
		matchResultsTotal.WithLabelValues(string(r.MatchType)).Inc()
	}
}

// ObserveMatch records the match type of a single score call.
func ObserveMatch(result model.MatchResult) {
	matchResultsTotal.WithLabelValues(string(result.MatchType)).Inc()
}

package metrics

import (
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "verus_market_"

var (
	// RPCRequestsTotal counts daemon JSON-RPC calls by method and status
	// Cardinality: ~6 methods x 2 statuses
	RPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "rpc_requests_total",
			Help: "Total number of JSON-RPC requests to the Verus daemon",
		},
		[]string{"method", "status"},
	)

	// RPCRequestDuration tracks daemon call latency per method
	RPCRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "rpc_request_duration_seconds",
			Help: "Time taken by JSON-RPC requests to the Verus daemon",
		},
		[]string{"method"},
	)

	// ResourceBuildDuration tracks how long a derived resource takes to
	// compute (pools list, trending, dex stats, ...)
	// Cardinality: ~8 resource families
	ResourceBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "resource_build_duration_seconds",
			Help: "Time taken to compute a derived resource from chain primitives",
		},
		[]string{"resource"},
	)

	// ResponseCacheRequests counts response cache lookups by resource and
	// outcome (hit/miss)
	ResponseCacheRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "response_cache_requests_total",
			Help: "Response cache lookups by outcome",
		},
		[]string{"resource", "outcome"},
	)

	// ChainHeight is the last block height observed by the chain monitor
	ChainHeight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "chain_height",
			Help: "Last observed Verus block height",
		},
	)

	// PoolCount is the number of baskets seen in the last pool list build
	PoolCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "pool_count",
			Help: "Number of pools synthesized in the last list build",
		},
	)
)

// RecordRPCRequest records one daemon call outcome
func RecordRPCRequest(method, status string, start time.Time) {
	RPCRequestsTotal.WithLabelValues(method, status).Inc()
	RPCRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

// RecordResourceBuild measures and logs a resource computation
func RecordResourceBuild(resource string, start time.Time) {
	duration := time.Since(start)
	ResourceBuildDuration.WithLabelValues(resource).Observe(duration.Seconds())
	if duration > time.Second {
		log.Printf("Metrics: building %s took %.2fs", resource, duration.Seconds())
	}
}

// RecordCacheHit records a response cache hit for a resource
func RecordCacheHit(resource string) {
	ResponseCacheRequests.WithLabelValues(resource, "hit").Inc()
}

// RecordCacheMiss records a response cache miss for a resource
func RecordCacheMiss(resource string) {
	ResponseCacheRequests.WithLabelValues(resource, "miss").Inc()
}

// RecordChainHeight updates the chain height gauge
func RecordChainHeight(height int64) {
	ChainHeight.Set(float64(height))
}

// RecordPoolCount updates the pool count gauge
func RecordPoolCount(count int) {
	PoolCount.Set(float64(count))
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "txmerge"

// Result label values shared by the counters below.
const (
	ResultOK       = "ok"
	ResultError    = "error"
	ResultNotFound = "not_found"
	ResultHit      = "hit"
	ResultMiss     = "miss"
)

var (
	// Updater
	PendingMerged = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "updater",
		Name:      "merged_total",
		Help:      "Total pending transactions merged and stored",
	}, []string{"coin"})

	PendingRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "updater",
		Name:      "rejected_total",
		Help:      "Total pending transactions rejected before storage",
	}, []string{"coin", "reason"})

	// Parser
	FieldsDefaulted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "parser",
		Name:      "defaulted_fields_total",
		Help:      "Total pending transaction fields that fell back to a default",
	}, []string{"field"})

	// Node
	NodeRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "node",
		Name:      "requests_total",
		Help:      "Total node JSON-RPC requests by outcome",
	}, []string{"method", "result"})

	NodeLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "node",
		Name:      "request_duration_seconds",
		Help:      "Node JSON-RPC request duration",
		Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	}, []string{"method"})

	// HTTP
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests served",
	}, []string{"method", "code"})

	HTTPLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"method"})

	// Events
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Total transaction events handed to the broker",
	}, []string{"result"})

	// Cache
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "cache",
		Name:      "lookups_total",
		Help:      "Total transaction cache lookups by outcome",
	}, []string{"result"})
)

package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

// Tracer is the tracer used for spans around loading and indexing.
var Tracer = otel.Tracer("incstate")

// Metrics definitions
var (
	DecodeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "incstate_decode_seconds",
		Help:    "Time spent decoding an analysis or APIs file.",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})

	DecodeErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "incstate_decode_errors_total",
		Help: "Total number of decode failures by error code.",
	}, []string{"code"})

	DecodedClassesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "incstate_decoded_classes_total",
		Help: "Total number of analyzed classes decoded from APIs files.",
	})

	CacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "incstate_cache_hits_total",
		Help: "Total number of loads served from the decode cache.",
	})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "incstate_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})

	StoreWritesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "incstate_store_writes_total",
		Help: "Total number of analysis snapshots written to the store.",
	})
)

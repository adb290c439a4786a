package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Transfer Metrics
var (
	ItemsExported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsExported,
			Help: HelpTextItemsExported,
		},
	)

	ItemsImported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsImported,
			Help: HelpTextItemsImported,
		},
		[]string{LabelStatus},
	)

	ReferenceRebinds = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReferenceRebinds,
			Help: HelpTextReferenceRebinds,
		},
		[]string{LabelOutcome},
	)

	DuplicateConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDuplicateConflicts,
			Help: HelpTextDuplicateConflicts,
		},
	)

	TransferJobs = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTransferJobs,
			Help: HelpTextTransferJobs,
		},
		[]string{LabelStatus},
	)

	ImportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameImportDuration,
			Help:    HelpTextImportDuration,
			Buckets: ImportDurationBuckets,
		},
	)
)

// Histogram buckets
var (
	// HTTPLatencyBuckets covers fast API reads up to slow preview scans.
	HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

	// ImportDurationBuckets covers whole batches, which run far longer
	// than a single request.
	ImportDurationBuckets = []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120, 300, 600}
)

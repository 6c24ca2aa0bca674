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

// Content Metrics
var (
	ReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameReloadsTotal,
			Help: HelpTextReloadsTotal,
		},
		[]string{LabelStatus},
	)

	ReloadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameReloadDuration,
			Help:    HelpTextReloadDuration,
			Buckets: ReloadLatencyBuckets,
		},
	)

	ContentEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameContentEntries,
			Help: HelpTextContentEntries,
		},
		[]string{LabelPool},
	)

	FishTraits = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameFishTraits,
			Help: HelpTextFishTraits,
		},
	)

	RowsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRowsSkipped,
			Help: HelpTextRowsSkipped,
		},
		[]string{LabelReason},
	)

	UnknownPredicates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUnknownPredicates,
			Help: HelpTextUnknownPredicates,
		},
	)
)

// Evaluation Metrics
var (
	EvaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEvaluationsTotal,
			Help: HelpTextEvaluationsTotal,
		},
		[]string{LabelPool, LabelOutcome},
	)

	ItemLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemLookupsTotal,
			Help: HelpTextItemLookupsTotal,
		},
		[]string{LabelResult},
	)
)

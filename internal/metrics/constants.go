package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Content metric names
const (
	MetricNameReloadsTotal      = "catchpool_reloads_total"
	MetricNameReloadDuration    = "catchpool_reload_duration_seconds"
	MetricNameContentEntries    = "catchpool_content_entries"
	MetricNameFishTraits        = "catchpool_fish_traits"
	MetricNameRowsSkipped       = "catchpool_rows_skipped_total"
	MetricNameUnknownPredicates = "catchpool_unknown_predicates_total"
)

// Evaluation metric names
const (
	MetricNameEvaluationsTotal = "catchpool_evaluations_total"
	MetricNameItemLookupsTotal = "catchpool_item_lookups_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Content metric help text
const (
	HelpTextReloadsTotal      = "Total number of content reloads by status"
	HelpTextReloadDuration    = "Content reload latency in seconds"
	HelpTextContentEntries    = "Number of entries in the published snapshot by pool"
	HelpTextFishTraits        = "Number of fish traits in the published snapshot"
	HelpTextRowsSkipped       = "Total number of raw data rows skipped by reason"
	HelpTextUnknownPredicates = "Total number of distinct unregistered clause tokens seen"
)

// Evaluation metric help text
const (
	HelpTextEvaluationsTotal = "Total number of catch evaluations by pool and outcome"
	HelpTextItemLookupsTotal = "Total number of cached item lookups by result"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelPool    = "pool"
	LabelReason  = "reason"
	LabelOutcome = "outcome"
	LabelResult  = "result"
)

// Label values
const (
	StatusSuccess = "success"
	StatusFailure = "failure"

	OutcomeCaught  = "caught"
	OutcomeNothing = "nothing"

	ResultHit  = "hit"
	ResultMiss = "miss"

	UnmatchedRoute = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ReloadLatencyBuckets covers small file loads up to slow database reads.
var ReloadLatencyBuckets = []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPRateLimited      = "http_rate_limited_total"
)

// Crosshair metric names
const (
	MetricNameRendersTotal   = "crosshair_renders_total"
	MetricNameRenderDuration = "crosshair_render_duration_seconds"
	MetricNameDecodeFailures = "crosshair_decode_failures_total"
	MetricNameCacheLookups   = "crosshair_image_cache_lookups_total"
	MetricNameCacheSwept     = "crosshair_image_cache_swept_total"
	MetricNameProfileLookups = "crosshair_profile_lookups_total"
	MetricNameProfileLatency = "crosshair_profile_lookup_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPRateLimited      = "Total number of requests rejected by the rate limiter"
)

// Crosshair metric help text
const (
	HelpTextRendersTotal   = "Total number of crosshair renders by outcome"
	HelpTextRenderDuration = "Crosshair render latency in seconds"
	HelpTextDecodeFailures = "Total number of share codes rejected by reason"
	HelpTextCacheLookups   = "Image cache lookups by tier and result"
	HelpTextCacheSwept     = "Total number of expired images removed from disk"
	HelpTextProfileLookups = "Profile lookups by upstream source and outcome"
	HelpTextProfileLatency = "Upstream profile lookup latency in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelOutcome = "outcome"
	LabelReason  = "reason"
	LabelTier    = "tier"
	LabelResult  = "result"
	LabelSource  = "source"
)

// ============================================================================
// Label Values
// ============================================================================

// Outcomes
const (
	OutcomeSuccess     = "success"
	OutcomeError       = "error"
	OutcomeNotFound    = "not_found"
	OutcomeNoCrosshair = "no_crosshair"
)

// Cache tiers and results
const (
	TierMemory = "memory"
	TierDisk   = "disk"
	ResultHit  = "hit"
	ResultMiss = "miss"
)

// Profile sources
const (
	SourceCache   = "cache"
	SourceSteam   = "steam"
	SourceLeetify = "leetify"
)

// Decode failure reasons
const (
	ReasonMalformed  = "malformed"
	ReasonChecksum   = "checksum"
	ReasonVersion    = "version"
	ReasonFieldRange = "field_range"
	ReasonUnknown    = "unknown"
)

// UnmatchedRoute labels requests that did not match a route, keeping path
// cardinality bounded.
const UnmatchedRoute = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// RenderLatencyBuckets covers sub-millisecond small canvases up to the 2048px maximum
var RenderLatencyBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1}

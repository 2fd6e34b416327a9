package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/cs2-crosshair/internal/domain"
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

	HTTPRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRateLimited,
			Help: HelpTextHTTPRateLimited,
		},
	)
)

// Crosshair Metrics
var (
	RendersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRendersTotal,
			Help: HelpTextRendersTotal,
		},
		[]string{LabelOutcome},
	)

	RenderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameRenderDuration,
			Help:    HelpTextRenderDuration,
			Buckets: RenderLatencyBuckets,
		},
	)

	DecodeFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameDecodeFailures,
			Help: HelpTextDecodeFailures,
		},
		[]string{LabelReason},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheLookups,
			Help: HelpTextCacheLookups,
		},
		[]string{LabelTier, LabelResult},
	)

	CacheSwept = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCacheSwept,
			Help: HelpTextCacheSwept,
		},
	)

	ProfileLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameProfileLookups,
			Help: HelpTextProfileLookups,
		},
		[]string{LabelSource, LabelOutcome},
	)

	ProfileLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameProfileLatency,
			Help:    HelpTextProfileLatency,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelSource},
	)
)

// DecodeReason maps a codec error to its failure label.
func DecodeReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrMalformedCode):
		return ReasonMalformed
	case errors.Is(err, domain.ErrChecksumMismatch):
		return ReasonChecksum
	case errors.Is(err, domain.ErrUnsupportedVersion):
		return ReasonVersion
	case errors.Is(err, domain.ErrFieldOutOfRange):
		return ReasonFieldRange
	default:
		return ReasonUnknown
	}
}

// ProfileOutcome maps a profile lookup error to its outcome label.
func ProfileOutcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, domain.ErrProfileNotFound):
		return OutcomeNotFound
	case errors.Is(err, domain.ErrNoCrosshair):
		return OutcomeNoCrosshair
	default:
		return OutcomeError
	}
}

// Package metrics holds the Prometheus collectors exposed by serve mode.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/tubegrab/tubegrab/constant"
	"github.com/tubegrab/tubegrab/video"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: constant.App,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})

	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: constant.App,
		Name:      "upstream_requests_total",
		Help:      "Requests sent to the video API",
	}, []string{"operation", "outcome"})

	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: constant.App,
		Name:      "upstream_request_duration_seconds",
		Help:      "Duration of video API requests",
		Buckets:   prometheus.ExponentialBuckets(0.05, 2, 8),
	}, []string{"operation"})

	Selections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: constant.App,
		Name:      "selections_total",
		Help:      "Download selections by outcome",
	}, []string{"quality", "outcome"})
)

// ObserveUpstream records one video API request.
func ObserveUpstream(operation string, err error, elapsed time.Duration) {
	UpstreamRequests.WithLabelValues(operation, outcome(err)).Inc()
	UpstreamDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveSelection records the result of one download selection.
func ObserveSelection(quality video.Quality, err error) {
	Selections.WithLabelValues(quality.String(), outcome(err)).Inc()
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	return video.Kind(err).String()
}

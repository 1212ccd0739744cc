package apiclient

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	internal_errors "github.com/itchan-dev/hackorsnooze/shared/errors"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snooze_client",
			Name:      "requests_total",
			Help:      "API calls made by the client, by operation and outcome",
		},
		[]string{"op", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snooze_client",
			Name:      "request_duration_seconds",
			Help:      "API call latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)

func observe(op string, start time.Time, err error) {
	requestsTotal.WithLabelValues(op, outcome(err)).Inc()
	requestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, internal_errors.ErrNetwork):
		return "network"
	case errors.Is(err, internal_errors.ErrAuth):
		return "auth"
	case errors.Is(err, internal_errors.ErrValidation):
		return "validation"
	case errors.Is(err, internal_errors.ErrNotFound):
		return "not_found"
	default:
		return "server"
	}
}

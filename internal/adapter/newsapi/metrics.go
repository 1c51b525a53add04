package newsapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "news_client",
			Name:      "requests_total",
			Help:      "Requests sent to the news summarizer service by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "news_client",
			Name:      "request_duration_seconds",
			Help:      "Latency of news summarizer requests, including body decoding.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"operation"},
	)
)

const (
	outcomeOK        = "ok"
	outcomeStatus    = "http_error"
	outcomeTransport = "transport_error"
)

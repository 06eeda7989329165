package deliveryfeed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FeedPublishRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_feed_publish_retries_total",
			Help: "Total number of delivery feed publish retry attempts",
		},
		[]string{"topic", "event_type", "result"},
	)

	FeedPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "delivery_feed_publish_duration_seconds",
			Help:    "Duration of delivery feed publishes including retries",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"topic", "event_type", "result"},
	)
)

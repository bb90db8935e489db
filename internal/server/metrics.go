package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestsTotal counts process requests by outcome
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paracheck_requests_total",
		Help: "Total process requests by result",
	}, []string{"result"})

	// correctionsTotal counts automatic replacements
	correctionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "paracheck_corrections_total",
		Help: "Total words replaced by auto-correction",
	})

	// categoriesTotal counts assigned categories
	categoriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paracheck_categories_total",
		Help: "Total paragraphs per assigned category",
	}, []string{"category"})

	// processDuration tracks time spent in Process
	processDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "paracheck_process_duration_seconds",
		Help:    "Paragraph processing duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	})
)

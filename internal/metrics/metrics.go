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

// Command Metrics
var (
	CommandsProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCommandsProcessed,
			Help: HelpTextCommandsProcessed,
		},
		[]string{LabelCommand, LabelStatus},
	)

	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCommandDuration,
			Help:    HelpTextCommandDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelCommand},
	)
)

// Board Metrics
var (
	BoardRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBoardRefreshes,
			Help: HelpTextBoardRefreshes,
		},
		[]string{LabelBoard},
	)

	BoardRefreshErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBoardRefreshErrors,
			Help: HelpTextBoardRefreshErrors,
		},
		[]string{LabelBoard},
	)

	BoardRefreshDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameBoardRefreshTime,
			Help:    HelpTextBoardRefreshTime,
			Buckets: BoardLatencyBuckets,
		},
		[]string{LabelBoard},
	)

	BoardPages = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameBoardPages,
			Help: HelpTextBoardPages,
		},
		[]string{LabelBoard},
	)
)

package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewOrgResolverRetriesTotal returns a Prometheus counter for the number of retry attempts performed by the organization resolver gateway
func NewOrgResolverRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "org_resolver_retries_total",
		Help: "Total number of retry attempts performed by the organization resolver gateway",
	})
}

// NewAssignmentConflictsTotal returns a Prometheus counter for open assignments that contended for the same driver or load
func NewAssignmentConflictsTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assignment_conflicts_total",
		Help: "Total number of duplicate open assignments observed during board reconciliation",
	})
}

// NewBoardRecomputeDuration returns a Prometheus histogram for board snapshot computation time
func NewBoardRecomputeDuration() prometheus.Histogram {
	return prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "board_recompute_duration_seconds",
		Help:    "Time spent fetching and reconciling one board snapshot",
		Buckets: prometheus.DefBuckets,
	})
}

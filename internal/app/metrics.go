package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"github.com/fleetops/opsboard/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal   prometheus.Counter   `name:"rate_limit_exceeded_total"`
	OrgResolverRetriesTotal  prometheus.Counter   `name:"org_resolver_retries_total"`
	AssignmentConflictsTotal prometheus.Counter   `name:"assignment_conflicts_total"`
	BoardRecomputeDuration   prometheus.Histogram `name:"board_recompute_duration_seconds"`
}

// provideMetrics registers the service counters on the default registerer.
// Re-registration (container rebuilt in the same process) reuses the
// existing collectors.
func provideMetrics() (metricsOut, error) {
	rl, err := registerCounter(metrics.NewRateLimitExceededTotal())
	if err != nil {
		return metricsOut{}, err
	}
	gr, err := registerCounter(metrics.NewOrgResolverRetriesTotal())
	if err != nil {
		return metricsOut{}, err
	}
	ac, err := registerCounter(metrics.NewAssignmentConflictsTotal())
	if err != nil {
		return metricsOut{}, err
	}
	bd, err := registerHistogram(metrics.NewBoardRecomputeDuration())
	if err != nil {
		return metricsOut{}, err
	}
	return metricsOut{
		RateLimitExceededTotal:   rl,
		OrgResolverRetriesTotal:  gr,
		AssignmentConflictsTotal: ac,
		BoardRecomputeDuration:   bd,
	}, nil
}

func registerCounter(c prometheus.Counter) (prometheus.Counter, error) {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register counter: %w", err)
	}
	return c, nil
}

func registerHistogram(h prometheus.Histogram) (prometheus.Histogram, error) {
	if err := prometheus.Register(h); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register histogram: %w", err)
	}
	return h, nil
}

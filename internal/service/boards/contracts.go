package boards

import (
	"context"

	"github.com/fleetops/opsboard/internal/domain"
)

// loadSource supplies the loads of one organization.
type loadSource interface {
	List(ctx context.Context, orgID int64) ([]domain.Load, error)
}

// driverSource supplies the drivers of one organization.
type driverSource interface {
	List(ctx context.Context, orgID int64) ([]domain.Driver, error)
}

// assignmentSource supplies the open assignments of one organization.
type assignmentSource interface {
	ListActive(ctx context.Context, orgID int64) ([]domain.Assignment, error)
}

// counter abstracts a monotonically increasing metric.
type counter interface {
	Add(float64)
}

// observer abstracts a duration metric.
type observer interface {
	Observe(float64)
}

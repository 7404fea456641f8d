package dispatchtx

import (
	"context"
	"time"

	"github.com/fleetops/opsboard/internal/domain"
)

// Repository groups the assignment operations that must run inside one
// transaction.
type Repository interface {
	GetActiveByLoadForUpdate(ctx context.Context, orgID int64, loadID string) (*domain.Assignment, error)
	GetActiveByDriverForUpdate(ctx context.Context, orgID, driverID int64) (*domain.Assignment, error)
	Insert(ctx context.Context, a *domain.Assignment) error
	Close(ctx context.Context, assignmentID int64, at time.Time) error
	UpdateDriverStatus(ctx context.Context, driverID int64, status domain.DriverStatus) error
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}

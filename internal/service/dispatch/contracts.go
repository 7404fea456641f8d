package dispatch

import (
	"context"

	"github.com/fleetops/opsboard/internal/domain"
	"github.com/fleetops/opsboard/internal/ports/dispatchtx"
)

// txRunner abstracts running a function within an assignment transaction.
type txRunner interface {
	WithTx(ctx context.Context, fn func(tx dispatchtx.Repository) error) error
}

// Port abstracts the subset of dispatch operations needed by the event
// Processor.
type Port interface {
	Assign(ctx context.Context, orgID int64, loadID string, driverID int64) (domain.Assignment, error)
	Unassign(ctx context.Context, orgID int64, loadID string) (domain.Assignment, error)
}

// LoadWriter applies partial load updates on behalf of the event Processor.
type LoadWriter interface {
	UpdatePartial(ctx context.Context, orgID int64, u domain.PartialLoadUpdate) (bool, error)
}

// DriverWriter applies partial driver updates on behalf of the event Processor.
type DriverWriter interface {
	UpdatePartial(ctx context.Context, orgID int64, u domain.PartialDriverUpdate) (bool, error)
}

package drivers

import (
	"context"

	"github.com/fleetops/opsboard/internal/domain"
)

// driverRepository defines storage operations required by the business layer.
type driverRepository interface {
	Get(ctx context.Context, orgID, id int64) (*domain.Driver, error)
	List(ctx context.Context, orgID int64) ([]domain.Driver, error)
	Create(ctx context.Context, d *domain.Driver) (int64, error)
	UpdatePartial(ctx context.Context, orgID int64, u domain.PartialDriverUpdate) (bool, error)
}

package loads

import (
	"context"

	"github.com/fleetops/opsboard/internal/domain"
)

// loadRepository defines storage operations required by the business layer.
type loadRepository interface {
	Get(ctx context.Context, orgID int64, id string) (*domain.Load, error)
	List(ctx context.Context, orgID int64) ([]domain.Load, error)
	Create(ctx context.Context, l *domain.Load) error
	UpdatePartial(ctx context.Context, orgID int64, u domain.PartialLoadUpdate) (bool, error)
}

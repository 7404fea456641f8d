package dispatch

import (
	"context"
	"strings"
	"time"

	"github.com/fleetops/opsboard/internal/apperr"
	"github.com/fleetops/opsboard/internal/domain"
	"github.com/fleetops/opsboard/internal/logx"
	"github.com/fleetops/opsboard/internal/ports/dispatchtx"
)

// Service opens and closes driver↔load assignments. Both operations run in
// one transaction with the driver and load rows locked, so at most one open
// assignment can exist per driver and per load through this path.
type Service struct {
	repo             txRunner
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates and configures a dispatch Service.
func NewService(repo txRunner, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		repo:             repo,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Assign opens an assignment linking a driver to a load. It conflicts when
// either side already has an open assignment.
func (s *Service) Assign(ctx context.Context, orgID int64, loadID string, driverID int64) (domain.Assignment, error) {
	loadID = strings.TrimSpace(loadID)
	if loadID == "" || driverID <= 0 {
		return domain.Assignment{}, apperr.Invalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.Assignment
	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		byLoad, err := tx.GetActiveByLoadForUpdate(ctx, orgID, loadID)
		if err != nil {
			return err
		}
		if byLoad != nil {
			return apperr.Conflict
		}

		byDriver, err := tx.GetActiveByDriverForUpdate(ctx, orgID, driverID)
		if err != nil {
			return err
		}
		if byDriver != nil {
			return apperr.Conflict
		}

		a := &domain.Assignment{
			OrgID:      orgID,
			LoadID:     loadID,
			DriverID:   driverID,
			AssignedAt: s.now(),
		}
		if err := tx.Insert(ctx, a); err != nil {
			return err
		}
		if err := tx.UpdateDriverStatus(ctx, driverID, domain.DriverDispatched); err != nil {
			return err
		}

		result = *a
		return nil
	})
	if err != nil {
		return domain.Assignment{}, err
	}

	s.logger.Info("driver assigned",
		logx.String("event", "driver_assigned"),
		logx.Int64("org_id", orgID),
		logx.String("load_id", result.LoadID),
		logx.Int64("driver_id", result.DriverID),
		logx.Time("assigned_at", result.AssignedAt),
	)

	return result, nil
}

// Unassign closes the open assignment of a load and frees its driver.
func (s *Service) Unassign(ctx context.Context, orgID int64, loadID string) (domain.Assignment, error) {
	loadID = strings.TrimSpace(loadID)
	if loadID == "" {
		return domain.Assignment{}, apperr.Invalid
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var result domain.Assignment
	err := s.repo.WithTx(ctx, func(tx dispatchtx.Repository) error {
		a, err := tx.GetActiveByLoadForUpdate(ctx, orgID, loadID)
		if err != nil {
			return err
		}
		if a == nil {
			return apperr.NotFound
		}

		closedAt := s.now()
		if err := tx.Close(ctx, a.ID, closedAt); err != nil {
			return err
		}
		if err := tx.UpdateDriverStatus(ctx, a.DriverID, domain.DriverAvailable); err != nil {
			return err
		}

		result = *a
		result.UnassignedAt = &closedAt
		return nil
	})
	if err != nil {
		return domain.Assignment{}, err
	}

	s.logger.Info("driver unassigned",
		logx.String("event", "driver_unassigned"),
		logx.Int64("org_id", orgID),
		logx.String("load_id", result.LoadID),
		logx.Int64("driver_id", result.DriverID),
	)

	return result, nil
}

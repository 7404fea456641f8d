package handlers

import (
	"context"

	"github.com/fleetops/opsboard/internal/board"
	"github.com/fleetops/opsboard/internal/domain"
	"github.com/fleetops/opsboard/internal/gateway/org"
	"github.com/fleetops/opsboard/internal/service/boards"
	"github.com/fleetops/opsboard/internal/service/dispatch"
	"github.com/fleetops/opsboard/internal/service/drivers"
	"github.com/fleetops/opsboard/internal/service/loads"
)

type loadUsecase interface {
	Get(ctx context.Context, orgID int64, id string) (*domain.Load, error)
	List(ctx context.Context, orgID int64) ([]domain.Load, error)
	Create(ctx context.Context, l *domain.Load) (string, error)
	UpdatePartial(ctx context.Context, orgID int64, u domain.PartialLoadUpdate) (bool, error)
}

// NewLoadUsecase wires a load Service into a loadUsecase.
func NewLoadUsecase(svc *loads.Service) loadUsecase {
	return svc
}

type driverUsecase interface {
	Get(ctx context.Context, orgID, id int64) (*domain.Driver, error)
	List(ctx context.Context, orgID int64) ([]domain.Driver, error)
	Create(ctx context.Context, d *domain.Driver) (int64, error)
	UpdatePartial(ctx context.Context, orgID int64, u domain.PartialDriverUpdate) (bool, error)
}

// NewDriverUsecase wires a driver Service into a driverUsecase.
func NewDriverUsecase(svc *drivers.Service) driverUsecase {
	return svc
}

type boardUsecase interface {
	Snapshot(ctx context.Context, orgID int64, scope board.Scope) (board.Snapshot, error)
}

// NewBoardUsecase wires a board Service into a boardUsecase.
func NewBoardUsecase(svc *boards.Service) boardUsecase {
	return svc
}

type dispatchUsecase interface {
	Assign(ctx context.Context, orgID int64, loadID string, driverID int64) (domain.Assignment, error)
	Unassign(ctx context.Context, orgID int64, loadID string) (domain.Assignment, error)
}

// NewDispatchUsecase wires a dispatch Service into a dispatchUsecase.
func NewDispatchUsecase(svc *dispatch.Service) dispatchUsecase {
	return svc
}

type orgResolver interface {
	Resolve(ctx context.Context, token string) (org.Org, error)
}

package boards

import (
	"context"
	"fmt"
	"time"

	"github.com/fleetops/opsboard/internal/board"
	"github.com/fleetops/opsboard/internal/logx"
)

// Service builds board snapshots: it fetches the three collections of one
// organization and runs the reconciliation pipeline over them. The fetches
// happen back to back so the pipeline sees a near-coherent snapshot; no
// transactional guarantee spans them.
type Service struct {
	loads            loadSource
	drivers          driverSource
	assignments      assignmentSource
	operationTimeout time.Duration
	logger           logx.Logger
	conflicts        counter
	recompute        observer
	now              func() time.Time
}

// NewService creates and configures a board Service.
func NewService(
	loads loadSource,
	drivers driverSource,
	assignments assignmentSource,
	timeout time.Duration,
	logger logx.Logger,
	conflicts counter,
	recompute observer,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{
		loads:            loads,
		drivers:          drivers,
		assignments:      assignments,
		operationTimeout: timeout,
		logger:           logger,
		conflicts:        conflicts,
		recompute:        recompute,
		now:              time.Now,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Snapshot fetches loads, drivers, and open assignments for one organization
// and reconciles them into a board snapshot.
func (s *Service) Snapshot(ctx context.Context, orgID int64, scope board.Scope) (board.Snapshot, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	started := s.now()

	loads, err := s.loads.List(ctx, orgID)
	if err != nil {
		return board.Snapshot{}, fmt.Errorf("fetch loads: %w", err)
	}
	drivers, err := s.drivers.List(ctx, orgID)
	if err != nil {
		return board.Snapshot{}, fmt.Errorf("fetch drivers: %w", err)
	}
	active, err := s.assignments.ListActive(ctx, orgID)
	if err != nil {
		return board.Snapshot{}, fmt.Errorf("fetch active assignments: %w", err)
	}

	snap := board.Reconcile(board.Input{
		Loads:             loads,
		Drivers:           drivers,
		ActiveAssignments: active,
		Scope:             scope,
	})

	if s.recompute != nil {
		s.recompute.Observe(s.now().Sub(started).Seconds())
	}
	if s.conflicts != nil && snap.Summary.AssignmentConflicts > 0 {
		s.conflicts.Add(float64(snap.Summary.AssignmentConflicts))
	}
	if snap.Summary.AssignmentConflicts > 0 {
		s.logger.Warn("duplicate open assignments resolved",
			logx.Int64("org_id", orgID),
			logx.Int("conflicts", snap.Summary.AssignmentConflicts),
		)
	}

	s.logger.Info("board snapshot",
		logx.String("event", "board_snapshot"),
		logx.Int64("org_id", orgID),
		logx.String("scope", string(scope)),
		logx.Int("loads", len(snap.Loads)),
		logx.Int("drivers", len(snap.Drivers)),
	)

	return snap, nil
}

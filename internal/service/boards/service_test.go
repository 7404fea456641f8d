package boards

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fleetops/opsboard/internal/board"
	"github.com/fleetops/opsboard/internal/domain"
	"github.com/fleetops/opsboard/internal/logx"
)

type mockLoadSource struct {
	listFn func(ctx context.Context, orgID int64) ([]domain.Load, error)
}

func (m *mockLoadSource) List(ctx context.Context, orgID int64) ([]domain.Load, error) {
	return m.listFn(ctx, orgID)
}

type mockDriverSource struct {
	listFn func(ctx context.Context, orgID int64) ([]domain.Driver, error)
}

func (m *mockDriverSource) List(ctx context.Context, orgID int64) ([]domain.Driver, error) {
	return m.listFn(ctx, orgID)
}

type mockAssignmentSource struct {
	listActiveFn func(ctx context.Context, orgID int64) ([]domain.Assignment, error)
}

func (m *mockAssignmentSource) ListActive(ctx context.Context, orgID int64) ([]domain.Assignment, error) {
	return m.listActiveFn(ctx, orgID)
}

type addRecorder struct{ total float64 }

func (a *addRecorder) Add(v float64) { a.total += v }

type observeRecorder struct{ n int }

func (o *observeRecorder) Observe(float64) { o.n++ }

func fixedSources(loads []domain.Load, drivers []domain.Driver, active []domain.Assignment) (*mockLoadSource, *mockDriverSource, *mockAssignmentSource) {
	return &mockLoadSource{listFn: func(context.Context, int64) ([]domain.Load, error) { return loads, nil }},
		&mockDriverSource{listFn: func(context.Context, int64) ([]domain.Driver, error) { return drivers, nil }},
		&mockAssignmentSource{listActiveFn: func(context.Context, int64) ([]domain.Assignment, error) { return active, nil }}
}

func TestNewService_ZeroTimeoutUsesDefault(t *testing.T) {
	t.Parallel()

	ls, ds, as := fixedSources(nil, nil, nil)
	svc := NewService(ls, ds, as, 0, logx.Nop(), nil, nil)
	if svc.operationTimeout != 3*time.Second {
		t.Fatalf("default timeout 3s, got %v", svc.operationTimeout)
	}
}

func TestService_Snapshot_Reconciles(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	ls, ds, as := fixedSources(
		[]domain.Load{{ID: "L1", OrgID: 9, Status: "IN_TRANSIT"}},
		[]domain.Driver{{ID: 1, OrgID: 9, Status: "ON_LOAD"}},
		[]domain.Assignment{{ID: 5, OrgID: 9, LoadID: "L1", DriverID: 1, AssignedAt: at}},
	)

	svc := NewService(ls, ds, as, time.Second, logx.Nop(), nil, nil)
	snap, err := svc.Snapshot(context.Background(), 9, board.ScopeAll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Loads) != 1 || len(snap.Drivers) != 1 {
		t.Fatalf("unexpected snapshot sizes: %d loads, %d drivers", len(snap.Loads), len(snap.Drivers))
	}
	if snap.Drivers[0].Truth != domain.TruthOnLoad {
		t.Fatalf("expected ON_LOAD truth, got %s", snap.Drivers[0].Truth)
	}
}

func TestService_Snapshot_FetchErrorsPropagate(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("db down")
	ls := &mockLoadSource{listFn: func(context.Context, int64) ([]domain.Load, error) { return nil, wantErr }}
	_, ds, as := fixedSources(nil, nil, nil)

	svc := NewService(ls, ds, as, time.Second, logx.Nop(), nil, nil)
	_, err := svc.Snapshot(context.Background(), 9, board.ScopeAll)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
}

func TestService_Snapshot_RecordsMetrics(t *testing.T) {
	t.Parallel()

	at := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	ls, ds, as := fixedSources(
		nil,
		nil,
		[]domain.Assignment{
			{ID: 1, OrgID: 9, LoadID: "L1", DriverID: 1, AssignedAt: at},
			{ID: 2, OrgID: 9, LoadID: "L1", DriverID: 1, AssignedAt: at.Add(time.Hour)},
		},
	)

	conflicts := &addRecorder{}
	recompute := &observeRecorder{}
	svc := NewService(ls, ds, as, time.Second, logx.Nop(), conflicts, recompute)

	_, err := svc.Snapshot(context.Background(), 9, board.ScopeAll)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conflicts.total != 1 {
		t.Fatalf("expected 1 conflict recorded, got %v", conflicts.total)
	}
	if recompute.n != 1 {
		t.Fatalf("expected 1 duration observation, got %d", recompute.n)
	}
}

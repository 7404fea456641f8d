package drivers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fleetops/opsboard/internal/apperr"
	"github.com/fleetops/opsboard/internal/domain"
)

type mockDriverRepo struct {
	getFn           func(ctx context.Context, orgID, id int64) (*domain.Driver, error)
	listFn          func(ctx context.Context, orgID int64) ([]domain.Driver, error)
	createFn        func(ctx context.Context, d *domain.Driver) (int64, error)
	updatePartialFn func(ctx context.Context, orgID int64, u domain.PartialDriverUpdate) (bool, error)
}

func (m *mockDriverRepo) Get(ctx context.Context, orgID, id int64) (*domain.Driver, error) {
	return m.getFn(ctx, orgID, id)
}

func (m *mockDriverRepo) List(ctx context.Context, orgID int64) ([]domain.Driver, error) {
	return m.listFn(ctx, orgID)
}

func (m *mockDriverRepo) Create(ctx context.Context, d *domain.Driver) (int64, error) {
	return m.createFn(ctx, d)
}

func (m *mockDriverRepo) UpdatePartial(ctx context.Context, orgID int64, u domain.PartialDriverUpdate) (bool, error) {
	return m.updatePartialFn(ctx, orgID, u)
}

func TestNewService_TimeoutDefaults(t *testing.T) {
	t.Parallel()

	svc := NewService(&mockDriverRepo{}, 0)
	if svc.operationTimeout != 3*time.Second {
		t.Fatalf("default timeout 3s, got %v", svc.operationTimeout)
	}
	svc = NewService(&mockDriverRepo{}, 5*time.Second)
	if svc.operationTimeout != 5*time.Second {
		t.Fatalf("expected timeout 5s, got %v", svc.operationTimeout)
	}
}

func TestService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := NewService(&mockDriverRepo{}, time.Second)

	cases := []struct {
		name   string
		driver *domain.Driver
	}{
		{"nil", nil},
		{"empty name", &domain.Driver{Phone: "+15551234567"}},
		{"bad phone", &domain.Driver{Name: "A", Phone: "555"}},
	}
	for _, c := range cases {
		if _, err := svc.Create(context.Background(), c.driver); !errors.Is(err, apperr.Invalid) {
			t.Fatalf("%s: expected Invalid, got %v", c.name, err)
		}
	}
}

func TestService_Create_FreeTextStatusAccepted(t *testing.T) {
	t.Parallel()

	repo := &mockDriverRepo{
		createFn: func(ctx context.Context, d *domain.Driver) (int64, error) { return 7, nil },
	}
	svc := NewService(repo, time.Second)

	id, err := svc.Create(context.Background(), &domain.Driver{
		Name: "A", Phone: "+15551234567", Status: "waiting on lumper",
	})
	if err != nil {
		t.Fatalf("free-text status must be accepted: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}
}

func TestService_Get_NotFound(t *testing.T) {
	t.Parallel()

	repo := &mockDriverRepo{
		getFn: func(context.Context, int64, int64) (*domain.Driver, error) { return nil, nil },
	}
	svc := NewService(repo, time.Second)

	if _, err := svc.Get(context.Background(), 1, 5); !errors.Is(err, apperr.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestService_UpdatePartial(t *testing.T) {
	t.Parallel()

	status := domain.DriverStatus("IN_TRANSIT")

	repo := &mockDriverRepo{
		updatePartialFn: func(ctx context.Context, orgID int64, u domain.PartialDriverUpdate) (bool, error) {
			return u.ID == 1, nil
		},
	}
	svc := NewService(repo, time.Second)

	ok, err := svc.UpdatePartial(context.Background(), 1, domain.PartialDriverUpdate{ID: 1, Status: &status})
	if err != nil || !ok {
		t.Fatalf("expected ok, got ok=%v err=%v", ok, err)
	}

	if _, err := svc.UpdatePartial(context.Background(), 1, domain.PartialDriverUpdate{ID: 2, Status: &status}); !errors.Is(err, apperr.NotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if _, err := svc.UpdatePartial(context.Background(), 1, domain.PartialDriverUpdate{ID: 0, Status: &status}); !errors.Is(err, apperr.Invalid) {
		t.Fatalf("expected Invalid, got %v", err)
	}
	if _, err := svc.UpdatePartial(context.Background(), 1, domain.PartialDriverUpdate{ID: 1}); !errors.Is(err, apperr.Invalid) {
		t.Fatalf("expected Invalid for empty update, got %v", err)
	}
}

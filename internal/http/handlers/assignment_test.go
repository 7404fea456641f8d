package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fleetops/opsboard/internal/apperr"
	"github.com/fleetops/opsboard/internal/domain"
	"github.com/fleetops/opsboard/internal/http/handlers"
)

type stubDispatchUsecase struct {
	assignFn   func(ctx context.Context, orgID int64, loadID string, driverID int64) (domain.Assignment, error)
	unassignFn func(ctx context.Context, orgID int64, loadID string) (domain.Assignment, error)
}

func (s *stubDispatchUsecase) Assign(ctx context.Context, orgID int64, loadID string, driverID int64) (domain.Assignment, error) {
	return s.assignFn(ctx, orgID, loadID, driverID)
}

func (s *stubDispatchUsecase) Unassign(ctx context.Context, orgID int64, loadID string) (domain.Assignment, error) {
	return s.unassignFn(ctx, orgID, loadID)
}

func TestAssignmentHandler_Create_Created(t *testing.T) {
	t.Parallel()

	assignedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	uc := &stubDispatchUsecase{
		assignFn: func(_ context.Context, _ int64, loadID string, driverID int64) (domain.Assignment, error) {
			require.Equal(t, "ld-1", loadID)
			require.Equal(t, int64(7), driverID)
			return domain.Assignment{ID: 11, LoadID: "ld-1", DriverID: 7, AssignedAt: assignedAt}, nil
		},
	}
	h := handlers.NewAssignmentHandler(testLogger(), uc)

	body := strings.NewReader(`{"load_id":"ld-1","driver_id":7}`)
	req := httptest.NewRequest(http.MethodPost, "/assignments", body)
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp struct {
		ID       int64  `json:"id"`
		LoadID   string `json:"load_id"`
		DriverID int64  `json:"driver_id"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Equal(t, int64(11), resp.ID)
	require.Equal(t, "ld-1", resp.LoadID)
	require.Equal(t, int64(7), resp.DriverID)
}

func TestAssignmentHandler_Create_Conflict(t *testing.T) {
	t.Parallel()

	uc := &stubDispatchUsecase{
		assignFn: func(context.Context, int64, string, int64) (domain.Assignment, error) {
			return domain.Assignment{}, apperr.Conflict
		},
	}
	h := handlers.NewAssignmentHandler(testLogger(), uc)

	body := strings.NewReader(`{"load_id":"ld-1","driver_id":7}`)
	req := httptest.NewRequest(http.MethodPost, "/assignments", body)
	rr := httptest.NewRecorder()

	h.Create(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestAssignmentHandler_Delete_OK(t *testing.T) {
	t.Parallel()

	closedAt := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	uc := &stubDispatchUsecase{
		unassignFn: func(_ context.Context, _ int64, loadID string) (domain.Assignment, error) {
			require.Equal(t, "ld-1", loadID)
			return domain.Assignment{ID: 11, LoadID: "ld-1", DriverID: 7, UnassignedAt: &closedAt}, nil
		},
	}
	h := handlers.NewAssignmentHandler(testLogger(), uc)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/assignments/ld-1", nil), "loadID", "ld-1")
	rr := httptest.NewRecorder()

	h.Delete(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		UnassignedAt *time.Time `json:"unassigned_at"`
	}
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.NotNil(t, resp.UnassignedAt)
}

func TestAssignmentHandler_Delete_NotFound(t *testing.T) {
	t.Parallel()

	uc := &stubDispatchUsecase{
		unassignFn: func(context.Context, int64, string) (domain.Assignment, error) {
			return domain.Assignment{}, apperr.NotFound
		},
	}
	h := handlers.NewAssignmentHandler(testLogger(), uc)

	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/assignments/ld-x", nil), "loadID", "ld-x")
	rr := httptest.NewRecorder()

	h.Delete(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fleetops/opsboard/internal/apperr"
	"github.com/fleetops/opsboard/internal/logx"
)

// AssignmentHandler serves HTTP endpoints for driver assignments.
type AssignmentHandler struct {
	uc     dispatchUsecase
	logger logx.Logger
}

// NewAssignmentHandler wires a dispatchUsecase into HTTP handlers.
func NewAssignmentHandler(logger logx.Logger, uc dispatchUsecase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc, logger: logger}
}

// Create handles POST /assignments.
func (h *AssignmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req assignRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	a, err := h.uc.Assign(r.Context(), orgFromCtx(r.Context()), req.LoadID, req.DriverID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusCreated, assignmentToResponse(a))
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.Conflict):
		writeError(h.logger, w, r, http.StatusConflict, "load or driver already assigned")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Delete handles DELETE /assignments/{loadID} and closes the load's open
// assignment.
func (h *AssignmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	loadID := strings.TrimSpace(chi.URLParam(r, "loadID"))
	if loadID == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	a, err := h.uc.Unassign(r.Context(), orgFromCtx(r.Context()), loadID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, assignmentToResponse(a))
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "no open assignment for load")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fleetops/opsboard/internal/apperr"
	"github.com/fleetops/opsboard/internal/logx"
)

// DriverHandler serves HTTP endpoints for driver resources.
type DriverHandler struct {
	uc     driverUsecase
	logger logx.Logger
}

// NewDriverHandler wires a driverUsecase into HTTP handlers.
func NewDriverHandler(logger logx.Logger, uc driverUsecase) *DriverHandler {
	return &DriverHandler{uc: uc, logger: logger}
}

// GetByID handles GET /drivers/{id}.
func (h *DriverHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	d, err := h.uc.Get(r.Context(), orgFromCtx(r.Context()), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, driverToResponse(*d))
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "driver not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /drivers.
func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.List(r.Context(), orgFromCtx(r.Context()))
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, driversToResponse(list))
}

// Create handles POST /drivers.
func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDriverRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	id, err := h.uc.Create(r.Context(), req.toModel(orgFromCtx(r.Context())))
	switch {
	case err == nil:
		w.Header().Set("Location", "/drivers/"+strconv.FormatInt(id, 10))
		writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{"id": id})
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.Conflict):
		writeError(h.logger, w, r, http.StatusConflict, "phone already exists")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Update handles PATCH /drivers/{id} with partial updates from the request body.
func (h *DriverHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateDriverRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	_, err = h.uc.UpdatePartial(r.Context(), orgFromCtx(r.Context()), req.toModel(id))
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.Conflict):
		writeError(h.logger, w, r, http.StatusConflict, "phone already exists")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "driver not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

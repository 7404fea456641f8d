package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/fleetops/opsboard/internal/apperr"
	"github.com/fleetops/opsboard/internal/logx"
)

// LoadHandler serves HTTP endpoints for load resources.
type LoadHandler struct {
	uc     loadUsecase
	logger logx.Logger
}

// NewLoadHandler wires a loadUsecase into HTTP handlers.
func NewLoadHandler(logger logx.Logger, uc loadUsecase) *LoadHandler {
	return &LoadHandler{uc: uc, logger: logger}
}

// GetByID handles GET /loads/{id}.
func (h *LoadHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	l, err := h.uc.Get(r.Context(), orgFromCtx(r.Context()), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, loadToResponse(*l))
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "load not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /loads.
func (h *LoadHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.List(r.Context(), orgFromCtx(r.Context()))
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, loadsToResponse(list))
}

// Create handles POST /loads.
func (h *LoadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLoadRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	id, err := h.uc.Create(r.Context(), req.toModel(orgFromCtx(r.Context())))
	switch {
	case err == nil:
		w.Header().Set("Location", "/loads/"+id)
		writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{"id": id})
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.Conflict):
		writeError(h.logger, w, r, http.StatusConflict, "load already exists")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Update handles PATCH /loads/{id} with partial updates from the request body.
func (h *LoadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	var req updateLoadRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	_, err := h.uc.UpdatePartial(r.Context(), orgFromCtx(r.Context()), req.toModel(id))
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "load not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

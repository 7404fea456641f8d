package handlers

import (
	"errors"
	"net/http"

	"github.com/fleetops/opsboard/internal/apperr"
	"github.com/fleetops/opsboard/internal/board"
	"github.com/fleetops/opsboard/internal/logx"
)

// BoardHandler serves the reconciled ops board.
type BoardHandler struct {
	uc     boardUsecase
	logger logx.Logger
}

// NewBoardHandler wires a boardUsecase into HTTP handlers.
func NewBoardHandler(logger logx.Logger, uc boardUsecase) *BoardHandler {
	return &BoardHandler{uc: uc, logger: logger}
}

// Get handles GET /board?scope=. An absent scope means the full board.
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	scope, err := board.ParseScope(r.URL.Query().Get("scope"))
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid scope")
		return
	}

	snap, err := h.uc.Snapshot(r.Context(), orgFromCtx(r.Context()), scope)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, snap)
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

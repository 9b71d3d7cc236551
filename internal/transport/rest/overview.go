package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

type overviewService interface {
	GetOverview(ctx context.Context, churchID uuid.UUID) (*domain.ChurchOverview, error)
}

// OverviewHandler serves the admin dashboard counts.
type OverviewHandler struct {
	svc overviewService
	err errorWriter
}

// NewOverviewHandler creates an OverviewHandler.
func NewOverviewHandler(svc overviewService, logger *slog.Logger) *OverviewHandler {
	return &OverviewHandler{svc: svc, err: errorWriter{log: logger.With("handler", "overview")}}
}

// Get handles GET /churches/{id}/overview.
func (h *OverviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	churchID, err := pathID(r, "id")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	o, err := h.svc.GetOverview(r.Context(), churchID)
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toOverview(o))
}

package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/internal/service/unit"
)

type unitService interface {
	ListUnits(ctx context.Context, churchID uuid.UUID) ([]*domain.Unit, error)
	PublicUnits(ctx context.Context, churchID uuid.UUID) ([]*domain.Unit, error)
	GetUnit(ctx context.Context, unitID uuid.UUID) (*domain.Unit, error)
	CreateUnit(ctx context.Context, input unit.CreateUnitInput) (*domain.Unit, error)
	UpdateUnit(ctx context.Context, input unit.UpdateUnitInput) (*domain.Unit, error)
	DeleteUnit(ctx context.Context, unitID uuid.UUID) error
}

// UnitHandler serves unit configuration.
type UnitHandler struct {
	svc unitService
	err errorWriter
}

// NewUnitHandler creates a UnitHandler.
func NewUnitHandler(svc unitService, logger *slog.Logger) *UnitHandler {
	return &UnitHandler{svc: svc, err: errorWriter{log: logger.With("handler", "unit")}}
}

type unitRequest struct {
	ChurchID string  `json:"churchId"`
	Name     string  `json:"name"`
	HeadID   *string `json:"headId"`
}

// headID parses the optional head. Null and empty both mean no head.
func (u unitRequest) headID() (*uuid.UUID, error) {
	if u.HeadID == nil || *u.HeadID == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*u.HeadID)
	if err != nil {
		return nil, domain.NewValidationError("headId", "invalid id")
	}
	return &id, nil
}

// List handles GET /churches/{id}/units.
func (h *UnitHandler) List(w http.ResponseWriter, r *http.Request) {
	churchID, err := pathID(r, "id")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	units, err := h.svc.ListUnits(r.Context(), churchID)
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	h.writeUnits(w, r, http.StatusOK, units)
}

// Public handles GET /churches/{id}/units/public, the unit picker shown
// during member self-registration.
func (h *UnitHandler) Public(w http.ResponseWriter, r *http.Request) {
	churchID, err := pathID(r, "id")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	units, err := h.svc.PublicUnits(r.Context(), churchID)
	if err != nil {
		h.err.write(w, r, err)
		return
	}

	out := make([]publicUnitResponse, len(units))
	for i, u := range units {
		out[i] = publicUnitResponse{ID: u.ID.String(), Name: u.Name}
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /units/{id}.
func (h *UnitHandler) Get(w http.ResponseWriter, r *http.Request) {
	unitID, err := pathID(r, "id")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	u, err := h.svc.GetUnit(r.Context(), unitID)
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	h.writeUnit(w, r, http.StatusOK, u)
}

// Create handles POST /units.
func (h *UnitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req unitRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	churchID, err := optionalID("churchId", req.ChurchID)
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	headID, err := req.headID()
	if err != nil {
		h.err.write(w, r, err)
		return
	}

	u, err := h.svc.CreateUnit(r.Context(), unit.CreateUnitInput{ChurchID: churchID, Name: req.Name, HeadID: headID})
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	h.writeUnit(w, r, http.StatusCreated, u)
}

// Update handles PUT /units/{id}. The request replaces both name and head.
func (h *UnitHandler) Update(w http.ResponseWriter, r *http.Request) {
	unitID, err := pathID(r, "id")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	var req unitRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	headID, err := req.headID()
	if err != nil {
		h.err.write(w, r, err)
		return
	}

	u, err := h.svc.UpdateUnit(r.Context(), unit.UpdateUnitInput{UnitID: unitID, Name: req.Name, HeadID: headID})
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	h.writeUnit(w, r, http.StatusOK, u)
}

// Delete handles DELETE /units/{id}.
func (h *UnitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	unitID, err := pathID(r, "id")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	if err := h.svc.DeleteUnit(r.Context(), unitID); err != nil {
		h.err.write(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UnitHandler) writeUnits(w http.ResponseWriter, r *http.Request, status int, units []*domain.Unit) {
	out, err := toUnits(r.Context(), units)
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, status, out)
}

func (h *UnitHandler) writeUnit(w http.ResponseWriter, r *http.Request, status int, u *domain.Unit) {
	out, err := toUnits(r.Context(), []*domain.Unit{u})
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, status, out[0])
}

package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/internal/service/actionplan"
)

type actionPlanService interface {
	ListItems(ctx context.Context, churchID, unitID uuid.UUID) ([]*domain.ActionItem, error)
	AddItem(ctx context.Context, input actionplan.AddItemInput) (*domain.ActionItem, error)
	UpdateItem(ctx context.Context, input actionplan.UpdateItemInput) (*domain.ActionItem, error)
}

// ActionPlanHandler serves unit action plans.
type ActionPlanHandler struct {
	svc actionPlanService
	err errorWriter
}

// NewActionPlanHandler creates an ActionPlanHandler.
func NewActionPlanHandler(svc actionPlanService, logger *slog.Logger) *ActionPlanHandler {
	return &ActionPlanHandler{svc: svc, err: errorWriter{log: logger.With("handler", "actionplan")}}
}

type addItemRequest struct {
	ChurchID    string `json:"churchId"`
	UnitID      string `json:"unitId"`
	Description string `json:"description"`
	Executioner string `json:"executioner"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

type updateItemRequest struct {
	Description *string `json:"description"`
	Executioner *string `json:"executioner"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

func (req updateItemRequest) changes() (domain.ActionItemChanges, error) {
	var (
		c    domain.ActionItemChanges
		errs []domain.FieldError
	)
	c.Description = req.Description
	c.Executioner = req.Executioner
	if req.StartDate != nil {
		c.StartDate, errs = requiredDate(errs, "startDate", *req.StartDate)
	}
	if req.EndDate != nil {
		c.EndDate, errs = requiredDate(errs, "endDate", *req.EndDate)
	}
	if req.Status != nil {
		s := domain.ActionStatus(*req.Status)
		c.Status = &s
	}
	if req.Priority != nil {
		p := domain.Priority(*req.Priority)
		c.Priority = &p
	}
	if len(errs) > 0 {
		return c, domain.NewValidationErrors(errs)
	}
	return c, nil
}

// requiredDate parses a date that was explicitly supplied, so blank is an
// error rather than "unset".
func requiredDate(errs []domain.FieldError, field, value string) (*time.Time, []domain.FieldError) {
	t, errs := dateField(errs, field, value)
	if t.IsZero() {
		if len(errs) == 0 || errs[len(errs)-1].Field != field {
			errs = append(errs, domain.FieldError{Field: field, Message: "required"})
		}
		return nil, errs
	}
	return &t, errs
}

// List handles GET /units/{id}/action-items.
func (h *ActionPlanHandler) List(w http.ResponseWriter, r *http.Request) {
	unitID, err := pathID(r, "id")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	churchID, err := queryID(r, "churchId")
	if err != nil {
		h.err.write(w, r, err)
		return
	}

	items, err := h.svc.ListItems(r.Context(), orNil(churchID), unitID)
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	out := make([]actionItemResponse, len(items))
	for i, it := range items {
		out[i] = toActionItem(it)
	}
	writeJSON(w, http.StatusOK, out)
}

// Add handles POST /action-items.
func (h *ActionPlanHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var errs []domain.FieldError
	start, errs := dateField(errs, "startDate", req.StartDate)
	end, errs := dateField(errs, "endDate", req.EndDate)
	churchID, err := optionalID("churchId", req.ChurchID)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "churchId", Message: "invalid id"})
	}
	unitID, err := optionalID("unitId", req.UnitID)
	if err != nil {
		errs = append(errs, domain.FieldError{Field: "unitId", Message: "invalid id"})
	}
	if len(errs) > 0 {
		h.err.write(w, r, domain.NewValidationErrors(errs))
		return
	}

	item, err := h.svc.AddItem(r.Context(), actionplan.AddItemInput{
		ChurchID:    churchID,
		UnitID:      unitID,
		Description: req.Description,
		Executioner: req.Executioner,
		StartDate:   start,
		EndDate:     end,
		Priority:    domain.Priority(req.Priority),
		Status:      domain.ActionStatus(req.Status),
	})
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActionItem(item))
}

// Update handles PATCH /action-items/{id}.
func (h *ActionPlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r, "id")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	var req updateItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	changes, err := req.changes()
	if err != nil {
		h.err.write(w, r, err)
		return
	}

	item, err := h.svc.UpdateItem(r.Context(), actionplan.UpdateItemInput{ItemID: itemID, Changes: changes})
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toActionItem(item))
}

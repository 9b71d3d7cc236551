package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/internal/service/firsttimer"
)

type firstTimerService interface {
	ListFirstTimers(ctx context.Context, churchID uuid.UUID, search string) ([]*domain.FirstTimer, error)
	GetFirstTimer(ctx context.Context, id uuid.UUID) (*domain.FirstTimer, error)
	LogFirstTimer(ctx context.Context, input firsttimer.LogInput) (*domain.FirstTimer, error)
	UpdateFollowUp(ctx context.Context, input firsttimer.FollowUpInput) (*domain.FirstTimer, error)
}

// FirstTimerHandler serves first-timer logging and follow-up.
type FirstTimerHandler struct {
	svc firstTimerService
	err errorWriter
}

// NewFirstTimerHandler creates a FirstTimerHandler.
func NewFirstTimerHandler(svc firstTimerService, logger *slog.Logger) *FirstTimerHandler {
	return &FirstTimerHandler{svc: svc, err: errorWriter{log: logger.With("handler", "firsttimer")}}
}

type logFirstTimerRequest struct {
	ChurchID string `json:"churchId"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type followUpRequest struct {
	Status string  `json:"status"`
	Date   *string `json:"date"`
	Notes  *string `json:"notes"`
}

// List handles GET /first-timers?churchId=&q=.
func (h *FirstTimerHandler) List(w http.ResponseWriter, r *http.Request) {
	churchID, err := queryID(r, "churchId")
	if err != nil {
		h.err.write(w, r, err)
		return
	}

	fts, err := h.svc.ListFirstTimers(r.Context(), orNil(churchID), r.URL.Query().Get("q"))
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	out := make([]firstTimerResponse, len(fts))
	for i, ft := range fts {
		out[i] = toFirstTimer(ft)
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /first-timers/{id}.
func (h *FirstTimerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	ft, err := h.svc.GetFirstTimer(r.Context(), id)
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFirstTimer(ft))
}

// Log handles POST /first-timers.
func (h *FirstTimerHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req logFirstTimerRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	churchID, err := optionalID("churchId", req.ChurchID)
	if err != nil {
		h.err.write(w, r, err)
		return
	}

	ft, err := h.svc.LogFirstTimer(r.Context(), firsttimer.LogInput{ChurchID: churchID, Name: req.Name, Phone: req.Phone})
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toFirstTimer(ft))
}

// FollowUp handles PATCH /first-timers/{id}/follow-up. The date and notes
// are overwritten, so omitting them clears them.
func (h *FirstTimerHandler) FollowUp(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	var req followUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var date *time.Time
	if req.Date != nil && strings.TrimSpace(*req.Date) != "" {
		d, errs := dateField(nil, "date", *req.Date)
		if len(errs) > 0 {
			h.err.write(w, r, domain.NewValidationErrors(errs))
			return
		}
		date = &d
	}

	ft, err := h.svc.UpdateFollowUp(r.Context(), firsttimer.FollowUpInput{
		FirstTimerID: id,
		Status:       domain.FollowUpStatus(req.Status),
		Date:         date,
		Notes:        req.Notes,
	})
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toFirstTimer(ft))
}

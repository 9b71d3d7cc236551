package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/internal/service/announcement"
)

type announcementService interface {
	ListAnnouncements(ctx context.Context, churchID uuid.UUID) ([]*domain.Announcement, error)
	CreateAnnouncement(ctx context.Context, input announcement.CreateInput) (*domain.Announcement, error)
	UpdateAnnouncement(ctx context.Context, input announcement.UpdateInput) (*domain.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id uuid.UUID) error
}

// AnnouncementHandler serves church announcements.
type AnnouncementHandler struct {
	svc announcementService
	err errorWriter
}

// NewAnnouncementHandler creates an AnnouncementHandler.
func NewAnnouncementHandler(svc announcementService, logger *slog.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc, err: errorWriter{log: logger.With("handler", "announcement")}}
}

type announcementRequest struct {
	ChurchID string `json:"churchId"`
	Title    string `json:"title"`
	Content  string `json:"content"`
}

// List handles GET /announcements?churchId=.
func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
	churchID, err := queryID(r, "churchId")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	list, err := h.svc.ListAnnouncements(r.Context(), orNil(churchID))
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	out := make([]announcementResponse, len(list))
	for i, a := range list {
		out[i] = toAnnouncement(a)
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /announcements.
func (h *AnnouncementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req announcementRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	churchID, err := optionalID("churchId", req.ChurchID)
	if err != nil {
		h.err.write(w, r, err)
		return
	}

	a, err := h.svc.CreateAnnouncement(r.Context(), announcement.CreateInput{ChurchID: churchID, Title: req.Title, Content: req.Content})
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAnnouncement(a))
}

// Update handles PUT /announcements/{id}.
func (h *AnnouncementHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	var req announcementRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	a, err := h.svc.UpdateAnnouncement(r.Context(), announcement.UpdateInput{AnnouncementID: id, Title: req.Title, Content: req.Content})
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAnnouncement(a))
}

// Delete handles DELETE /announcements/{id}.
func (h *AnnouncementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	if err := h.svc.DeleteAnnouncement(r.Context(), id); err != nil {
		h.err.write(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

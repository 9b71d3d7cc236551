package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/internal/service/report"
)

type reportService interface {
	ListReports(ctx context.Context, churchID uuid.UUID, unitID *uuid.UUID) ([]*domain.Report, error)
	GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error)
	SubmitReport(ctx context.Context, input report.SubmitInput) (*domain.Report, error)
	ReplyReport(ctx context.Context, input report.ReplyInput) (*domain.Report, error)
}

// ReportHandler serves weekly unit reports.
type ReportHandler struct {
	svc reportService
	err errorWriter
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, err: errorWriter{log: logger.With("handler", "report")}}
}

type submitReportRequest struct {
	ChurchID string `json:"churchId"`
	UnitID   string `json:"unitId"`
	Content  string `json:"content"`
}

type replyRequest struct {
	Reply string `json:"reply"`
}

// List handles GET /reports?churchId=&unitId=.
func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	churchID, err := queryID(r, "churchId")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	unitID, err := queryID(r, "unitId")
	if err != nil {
		h.err.write(w, r, err)
		return
	}

	reports, err := h.svc.ListReports(r.Context(), orNil(churchID), unitID)
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	h.writeReports(w, r, reports)
}

// Get handles GET /reports/{id}.
func (h *ReportHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	rep, err := h.svc.GetReport(r.Context(), id)
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	h.writeReport(w, r, http.StatusOK, rep)
}

// Submit handles POST /reports. The unit defaults to the one the caller heads.
func (h *ReportHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitReportRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	churchID, err := optionalID("churchId", req.ChurchID)
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	var unitID *uuid.UUID
	if req.UnitID != "" {
		id, err := optionalID("unitId", req.UnitID)
		if err != nil {
			h.err.write(w, r, err)
			return
		}
		unitID = &id
	}

	rep, err := h.svc.SubmitReport(r.Context(), report.SubmitInput{ChurchID: churchID, UnitID: unitID, Content: req.Content})
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	h.writeReport(w, r, http.StatusCreated, rep)
}

// Reply handles PATCH /reports/{id}/reply.
func (h *ReportHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	var req replyRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rep, err := h.svc.ReplyReport(r.Context(), report.ReplyInput{ReportID: id, Reply: req.Reply})
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	h.writeReport(w, r, http.StatusOK, rep)
}

func (h *ReportHandler) writeReports(w http.ResponseWriter, r *http.Request, reports []*domain.Report) {
	out, err := toReports(r.Context(), reports)
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ReportHandler) writeReport(w http.ResponseWriter, r *http.Request, status int, rep *domain.Report) {
	out, err := toReports(r.Context(), []*domain.Report{rep})
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, status, out[0])
}

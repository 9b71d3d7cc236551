package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/internal/service/church"
)

type churchService interface {
	ListChurches(ctx context.Context) ([]*domain.Church, error)
	Register(ctx context.Context, input church.RegisterInput) (*church.Registration, error)
}

// ChurchHandler serves church listing and registration.
type ChurchHandler struct {
	svc churchService
	err errorWriter
}

// NewChurchHandler creates a ChurchHandler.
func NewChurchHandler(svc churchService, logger *slog.Logger) *ChurchHandler {
	return &ChurchHandler{svc: svc, err: errorWriter{log: logger.With("handler", "church")}}
}

type registerChurchRequest struct {
	Name       string `json:"name"`
	PastorName string `json:"pastorName"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

type registrationResponse struct {
	Church churchResponse `json:"church"`
	Pastor userResponse   `json:"pastor"`
}

// List handles GET /churches.
func (h *ChurchHandler) List(w http.ResponseWriter, r *http.Request) {
	churches, err := h.svc.ListChurches(r.Context())
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	out := make([]churchResponse, len(churches))
	for i, c := range churches {
		out[i] = toChurch(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// Register handles POST /churches.
func (h *ChurchHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerChurchRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reg, err := h.svc.Register(r.Context(), church.RegisterInput{
		Name:       req.Name,
		PastorName: req.PastorName,
		Phone:      req.Phone,
		Email:      req.Email,
		Password:   req.Password,
	})
	if err != nil {
		h.err.write(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, registrationResponse{
		Church: toChurch(reg.Church),
		Pastor: toUser(reg.Pastor),
	})
}

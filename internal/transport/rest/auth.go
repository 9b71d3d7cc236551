package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/internal/service/auth"
)

type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.Result, error)
}

// AuthHandler serves sign-in.
type AuthHandler struct {
	svc authService
	err errorWriter
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, err: errorWriter{log: logger.With("handler", "auth")}}
}

type loginRequest struct {
	ChurchID string `json:"churchId"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Portal   string `json:"portal"`
}

type loginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresIn   int64        `json:"expiresIn"`
	User        userResponse `json:"user"`
}

// Login handles POST /auth.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// An unparsable church id is left nil; validation reports it as required.
	churchID, _ := uuid.Parse(req.ChurchID)

	res, err := h.svc.Login(r.Context(), auth.LoginInput{
		AuthenticateInput: auth.AuthenticateInput{
			ChurchID: churchID,
			Email:    req.Email,
			Password: req.Password,
		},
		Portal: domain.Portal(req.Portal),
	})
	if err != nil {
		h.err.write(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: res.AccessToken,
		ExpiresIn:   int64(res.ExpiresIn.Seconds()),
		User:        toUser(res.User),
	})
}

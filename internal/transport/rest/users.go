package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/authz"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/internal/service/user"
)

type userService interface {
	Me(ctx context.Context) (*domain.User, error)
	MyPages(ctx context.Context) ([]authz.Page, error)
	ListUsers(ctx context.Context, churchID uuid.UUID) ([]*domain.User, error)
	CreateUser(ctx context.Context, input user.CreateUserInput) (*domain.User, error)
	RegisterMember(ctx context.Context, input user.RegisterMemberInput) (*domain.User, error)
	SetFirstTimerLogger(ctx context.Context, userID uuid.UUID, isLogger bool) (*domain.User, error)
	LoggerCandidates(ctx context.Context, churchID uuid.UUID) ([]*domain.User, error)
	HeadCandidates(ctx context.Context, churchID uuid.UUID, unitID *uuid.UUID) ([]*domain.User, error)
}

// UserHandler serves user accounts, roles and candidate lists.
type UserHandler struct {
	svc userService
	err errorWriter
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, err: errorWriter{log: logger.With("handler", "user")}}
}

type accountRequest struct {
	Name            string   `json:"name"`
	Phone           string   `json:"phone"`
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	MemberOfUnitIDs []string `json:"memberOfUnitIds"`
}

func (a accountRequest) toInput() (user.AccountInput, error) {
	memberOf, err := parseIDs("memberOfUnitIds", a.MemberOfUnitIDs)
	if err != nil {
		return user.AccountInput{}, err
	}
	return user.AccountInput{
		Name:            a.Name,
		Phone:           a.Phone,
		Email:           a.Email,
		Password:        a.Password,
		MemberOfUnitIDs: memberOf,
	}, nil
}

type createUserRequest struct {
	ChurchID string `json:"churchId"`
	Role     string `json:"role"`
	accountRequest
}

type registerMemberRequest struct {
	ChurchID string `json:"churchId"`
	accountRequest
}

type loggerRoleRequest struct {
	IsLogger *bool `json:"isLogger"`
}

type pagesResponse struct {
	Role  string   `json:"role"`
	Pages []string `json:"pages"`
}

// Me handles GET /me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Me(r.Context())
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// Pages handles GET /me/pages.
func (h *UserHandler) Pages(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Me(r.Context())
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	pages, err := h.svc.MyPages(r.Context())
	if err != nil {
		h.err.write(w, r, err)
		return
	}

	resp := pagesResponse{Role: u.Role.String(), Pages: make([]string, len(pages))}
	for i, p := range pages {
		resp.Pages[i] = string(p)
	}
	writeJSON(w, http.StatusOK, resp)
}

// List handles GET /churches/{id}/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	h.listBy(w, r, h.svc.ListUsers)
}

// LoggerCandidates handles GET /churches/{id}/users/logger-candidates.
func (h *UserHandler) LoggerCandidates(w http.ResponseWriter, r *http.Request) {
	h.listBy(w, r, h.svc.LoggerCandidates)
}

// NewUnitHeadCandidates handles GET /churches/{id}/users/head-candidates,
// the candidates for a unit that does not exist yet.
func (h *UserHandler) NewUnitHeadCandidates(w http.ResponseWriter, r *http.Request) {
	h.listBy(w, r, func(ctx context.Context, churchID uuid.UUID) ([]*domain.User, error) {
		return h.svc.HeadCandidates(ctx, churchID, nil)
	})
}

// UnitHeadCandidates handles GET /units/{id}/head-candidates.
func (h *UserHandler) UnitHeadCandidates(w http.ResponseWriter, r *http.Request) {
	unitID, err := pathID(r, "id")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	users, err := h.svc.HeadCandidates(r.Context(), uuid.Nil, &unitID)
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUsers(users))
}

func (h *UserHandler) listBy(w http.ResponseWriter, r *http.Request, list func(context.Context, uuid.UUID) ([]*domain.User, error)) {
	churchID, err := pathID(r, "id")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	users, err := list(r.Context(), churchID)
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUsers(users))
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	churchID, err := optionalID("churchId", req.ChurchID)
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	account, err := req.accountRequest.toInput()
	if err != nil {
		h.err.write(w, r, err)
		return
	}

	u, err := h.svc.CreateUser(r.Context(), user.CreateUserInput{
		ChurchID:     churchID,
		Role:         domain.UserRole(req.Role),
		AccountInput: account,
	})
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUser(u))
}

// Register handles POST /members, member self-registration.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerMemberRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	churchID, err := optionalID("churchId", req.ChurchID)
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	account, err := req.accountRequest.toInput()
	if err != nil {
		h.err.write(w, r, err)
		return
	}

	u, err := h.svc.RegisterMember(r.Context(), user.RegisterMemberInput{ChurchID: churchID, AccountInput: account})
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toUser(u))
}

// SetLoggerRole handles PATCH /users/{id}/logger-role.
func (h *UserHandler) SetLoggerRole(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	var req loggerRoleRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.IsLogger == nil {
		h.err.write(w, r, domain.NewValidationError("isLogger", "required"))
		return
	}

	u, err := h.svc.SetFirstTimerLogger(r.Context(), userID, *req.IsLogger)
	if err != nil {
		h.err.write(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUser(u))
}

// optionalID parses an id from a request body field. Empty yields uuid.Nil.
func optionalID(field, raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(field, "invalid id")
	}
	return id, nil
}

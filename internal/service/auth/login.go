package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Joseph-Edoh/Church-connect/internal/auth"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/internal/metrics"
	"github.com/Joseph-Edoh/Church-connect/pkg/ctxutil"
)

// Result is returned by Login.
type Result struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *domain.User
}

// Authenticate returns the user of the church whose email matches
// (case-insensitively) and whose password is correct. An unknown email and a
// wrong password both yield domain.ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, input AuthenticateInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, input.ChurchID, domain.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth.Authenticate get user: %w", err)
	}

	if err := s.passwords.Compare(u.PasswordHash, input.Password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			s.log.WarnContext(ctx, "stored password hash rejected",
				slog.String("user_id", u.ID.String()),
				slog.String("error", err.Error()))
		}
		return nil, domain.ErrInvalidCredentials
	}

	return u, nil
}

// Login authenticates the user and issues an access token. When a portal is
// given, super admins must use the admin portal and everyone else the worker
// portal.
func (s *Service) Login(ctx context.Context, input LoginInput) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	u, err := s.Authenticate(ctx, input.AuthenticateInput)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.RecordLogin("invalid_credentials")
		}
		return nil, err
	}

	if err := checkPortal(input.Portal, u); err != nil {
		metrics.RecordLogin("wrong_portal")
		return nil, err
	}

	token, err := s.tokens.GenerateAccessToken(ctxutil.Identity{
		UserID:   u.ID,
		ChurchID: u.ChurchID,
		Role:     u.Role.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Login issue token: %w", err)
	}
	metrics.RecordLogin("success")

	s.log.InfoContext(ctx, "user logged in",
		slog.String("church_id", u.ChurchID.String()),
		slog.String("user_id", u.ID.String()),
		slog.String("role", u.Role.String()),
	)

	return &Result{AccessToken: token, ExpiresIn: s.tokens.ExpiresIn(), User: u}, nil
}

func checkPortal(portal domain.Portal, u *domain.User) error {
	switch {
	case portal == domain.PortalWorker && u.IsAdmin():
		return domain.ErrAdminPortalRequired
	case portal == domain.PortalAdmin && !u.IsAdmin():
		return domain.ErrWorkerPortalRequired
	}
	return nil
}

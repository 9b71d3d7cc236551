package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/authz"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// ListUsers returns the users of the caller's church ordered by name.
func (s *Service) ListUsers(ctx context.Context, churchID uuid.UUID) ([]*domain.User, error) {
	actor, err := authz.Require(ctx, authz.ConfigurationManage)
	if err != nil {
		return nil, err
	}
	churchID, err = actor.Tenant(churchID)
	if err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx, churchID)
	if err != nil {
		return nil, fmt.Errorf("user.ListUsers: %w", err)
	}
	return users, nil
}

// Me returns the caller's own account as currently stored.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	actor, err := authz.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.users.GetByID(ctx, actor.ChurchID, actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("user.Me: %w", err)
	}
	return u, nil
}

// MyPages returns the navigation pages the caller's current role may open.
func (s *Service) MyPages(ctx context.Context) ([]authz.Page, error) {
	u, err := s.Me(ctx)
	if err != nil {
		return nil, err
	}
	return authz.Pages(u.Role), nil
}

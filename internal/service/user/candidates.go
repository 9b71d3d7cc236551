package user

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/authz"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// LoggerCandidates returns the users the first-timer logger toggle applies to.
func (s *Service) LoggerCandidates(ctx context.Context, churchID uuid.UUID) ([]*domain.User, error) {
	users, err := s.ListUsers(ctx, churchID)
	if err != nil {
		return nil, err
	}
	return filter(users, (*domain.User).CanToggleLogger), nil
}

// HeadCandidates returns the users that may be offered as head of a unit.
// With a nil unitID the candidates are for a new unit: users who are neither
// admins nor already heading a unit. For an existing unit they are the
// non-admin members of that unit plus its current head.
func (s *Service) HeadCandidates(ctx context.Context, churchID uuid.UUID, unitID *uuid.UUID) ([]*domain.User, error) {
	users, err := s.ListUsers(ctx, churchID)
	if err != nil {
		return nil, err
	}
	if unitID == nil {
		return filter(users, (*domain.User).CanHeadUnit), nil
	}

	actor, err := authz.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	unit, err := s.units.GetByID(ctx, actor.ChurchID, *unitID)
	if err != nil {
		return nil, fmt.Errorf("user.HeadCandidates: %w", err)
	}

	return filter(users, func(u *domain.User) bool {
		if u.IsAdmin() {
			return false
		}
		return u.MemberOf(unit.ID) || unit.HeadedBy(u.ID)
	}), nil
}

func filter(users []*domain.User, keep func(*domain.User) bool) []*domain.User {
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if keep(u) {
			out = append(out, u)
		}
	}
	return out
}

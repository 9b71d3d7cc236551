package user

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/authz"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// CreateUser adds a user to the caller's church (admin only).
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	actor, err := authz.Require(ctx, authz.ConfigurationManage)
	if err != nil {
		return nil, err
	}
	churchID, err := actor.Tenant(input.ChurchID)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.createAccount(ctx, churchID, input.Role, input.AccountInput)
	if err != nil {
		return nil, fmt.Errorf("user.CreateUser: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.String("church_id", churchID.String()),
		slog.String("user_id", created.ID.String()),
		slog.String("role", created.Role.String()),
	)

	return created, nil
}

// RegisterMember signs a visitor up as a general member of a church.
// No caller identity is required.
func (s *Service) RegisterMember(ctx context.Context, input RegisterMemberInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.churches.GetByID(ctx, input.ChurchID); err != nil {
		return nil, fmt.Errorf("user.RegisterMember: %w", err)
	}

	created, err := s.createAccount(ctx, input.ChurchID, domain.RoleGeneralMember, input.AccountInput)
	if err != nil {
		return nil, fmt.Errorf("user.RegisterMember: %w", err)
	}

	s.log.InfoContext(ctx, "member registered",
		slog.String("church_id", input.ChurchID.String()),
		slog.String("user_id", created.ID.String()),
	)

	return created, nil
}

// createAccount checks the requested unit memberships against the church and
// stores the user with a hashed password.
func (s *Service) createAccount(ctx context.Context, churchID uuid.UUID, role domain.UserRole, in AccountInput) (*domain.User, error) {
	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	memberOf := slices.Clone(in.MemberOfUnitIDs)
	slices.SortFunc(memberOf, func(a, b uuid.UUID) int { return strings.Compare(a.String(), b.String()) })
	memberOf = slices.Compact(memberOf)

	var created *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if len(memberOf) > 0 {
			found, err := s.units.GetByIDs(txCtx, churchID, memberOf)
			if err != nil {
				return fmt.Errorf("get units: %w", err)
			}
			if len(found) != len(memberOf) {
				return domain.NewValidationError("memberOfUnitIds", "unknown unit")
			}
		}

		var err error
		created, err = s.users.Create(txCtx, &domain.User{
			ID:              uuid.New(),
			ChurchID:        churchID,
			Name:            domain.NormalizeName(in.Name),
			Email:           strings.TrimSpace(in.Email),
			Phone:           strings.TrimSpace(in.Phone),
			PasswordHash:    hash,
			Role:            role,
			MemberOfUnitIDs: memberOf,
			CreatedAt:       s.calendar.Now(),
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

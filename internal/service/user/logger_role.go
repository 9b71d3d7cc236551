package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/authz"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/internal/metrics"
)

// SetFirstTimerLogger grants or revokes the first-timer logger role.
// Super admins and unit heads are out of reach of the toggle: for them the
// call changes nothing and returns ErrNotFound.
func (s *Service) SetFirstTimerLogger(ctx context.Context, userID uuid.UUID, isLogger bool) (*domain.User, error) {
	actor, err := authz.Require(ctx, authz.ConfigurationManage)
	if err != nil {
		return nil, err
	}

	target, err := s.users.GetByID(ctx, actor.ChurchID, userID)
	if err != nil {
		return nil, fmt.Errorf("user.SetFirstTimerLogger: %w", err)
	}
	if !target.CanToggleLogger() {
		return nil, fmt.Errorf("user.SetFirstTimerLogger: role %q: %w", target.Role, domain.ErrNotFound)
	}

	role := domain.RoleGeneralMember
	if isLogger {
		role = domain.RoleFirstTimerLogger
	}
	if target.Role == role {
		return target, nil
	}

	updated, err := s.users.SetRole(ctx, actor.ChurchID, userID, role, nil)
	if err != nil {
		return nil, fmt.Errorf("user.SetFirstTimerLogger: %w", err)
	}
	metrics.RecordRoleTransition(target.Role.String(), role.String())

	s.log.InfoContext(ctx, "logger role changed",
		slog.String("user_id", userID.String()),
		slog.String("from", target.Role.String()),
		slog.String("to", role.String()),
	)

	return updated, nil
}

package unit

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/internal/metrics"
)

// roleChange records a user role transition made inside a transaction so it
// can be reported once the transaction commits.
type roleChange struct {
	userID uuid.UUID
	from   domain.UserRole
	to     domain.UserRole
}

func recordRoleChanges(changes []roleChange) {
	for _, c := range changes {
		metrics.RecordRoleTransition(c.from.String(), c.to.String())
	}
}

// resolveHead loads the prospective head of a unit. An id that does not name
// a user of the church resolves to nil; the unit is then left without a head.
func (s *Service) resolveHead(ctx context.Context, churchID uuid.UUID, headID *uuid.UUID) (*domain.User, error) {
	if headID == nil {
		return nil, nil
	}
	u, err := s.users.GetByID(ctx, churchID, *headID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get head: %w", err)
	}
	if u.IsAdmin() {
		return nil, domain.NewValidationError("headId", "super admin cannot head a unit")
	}
	return u, nil
}

// promote makes u the head of unit. If u already heads another unit, that
// unit loses its head first, so a user never heads two units.
func (s *Service) promote(ctx context.Context, churchID uuid.UUID, u *domain.User, unitID uuid.UUID) (*roleChange, error) {
	if u.UnitID != nil && *u.UnitID != unitID && u.Role == domain.RoleUnitHead {
		prev, err := s.units.LockByID(ctx, churchID, *u.UnitID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
		case err != nil:
			return nil, fmt.Errorf("lock previous unit: %w", err)
		case prev.HeadedBy(u.ID):
			if _, err := s.units.Update(ctx, churchID, prev.ID, prev.Name, nil); err != nil {
				return nil, fmt.Errorf("clear previous unit head: %w", err)
			}
		}
	}

	if _, err := s.users.SetRole(ctx, churchID, u.ID, domain.RoleUnitHead, &unitID); err != nil {
		return nil, fmt.Errorf("promote head: %w", err)
	}
	return &roleChange{userID: u.ID, from: u.Role, to: domain.RoleUnitHead}, nil
}

// demote turns the head of unit back into a general member. Users that no
// longer head the unit are left untouched.
func (s *Service) demote(ctx context.Context, churchID uuid.UUID, headID, unitID uuid.UUID) (*roleChange, error) {
	u, err := s.users.GetByID(ctx, churchID, headID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get head: %w", err)
	}
	if !u.Heads(unitID) {
		return nil, nil
	}
	if _, err := s.users.SetRole(ctx, churchID, u.ID, domain.RoleGeneralMember, nil); err != nil {
		return nil, fmt.Errorf("demote head: %w", err)
	}
	return &roleChange{userID: u.ID, from: u.Role, to: domain.RoleGeneralMember}, nil
}

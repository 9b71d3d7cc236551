package unit

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/authz"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// ListUnits returns the units of the caller's church ordered by name.
func (s *Service) ListUnits(ctx context.Context, churchID uuid.UUID) ([]*domain.Unit, error) {
	actor, err := authz.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	churchID, err = actor.Tenant(churchID)
	if err != nil {
		return nil, err
	}

	units, err := s.units.List(ctx, churchID)
	if err != nil {
		return nil, fmt.Errorf("unit.ListUnits: %w", err)
	}
	return units, nil
}

// PublicUnits lists a church's units for member self-registration.
// No caller identity is required.
func (s *Service) PublicUnits(ctx context.Context, churchID uuid.UUID) ([]*domain.Unit, error) {
	units, err := s.units.List(ctx, churchID)
	if err != nil {
		return nil, fmt.Errorf("unit.PublicUnits: %w", err)
	}
	return units, nil
}

// GetUnit returns a unit of the caller's church.
func (s *Service) GetUnit(ctx context.Context, unitID uuid.UUID) (*domain.Unit, error) {
	actor, err := authz.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	u, err := s.units.GetByID(ctx, actor.ChurchID, unitID)
	if err != nil {
		return nil, fmt.Errorf("unit.GetUnit: %w", err)
	}
	return u, nil
}

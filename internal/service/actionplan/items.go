package actionplan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/authz"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// ListItems returns a unit's action items ordered by start date.
// Unit heads may only read their own unit's plan.
func (s *Service) ListItems(ctx context.Context, churchID, unitID uuid.UUID) ([]*domain.ActionItem, error) {
	actor, err := authz.Require(ctx, authz.ActionPlanView)
	if err != nil {
		return nil, err
	}
	churchID, err = actor.Tenant(churchID)
	if err != nil {
		return nil, err
	}
	if err := s.checkUnit(ctx, actor, unitID); err != nil {
		return nil, err
	}

	items, err := s.items.List(ctx, churchID, unitID)
	if err != nil {
		return nil, fmt.Errorf("actionplan.ListItems: %w", err)
	}
	return items, nil
}

// AddItem adds an item to a unit's plan.
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (*domain.ActionItem, error) {
	actor, err := authz.Require(ctx, authz.ActionPlanManage)
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
	if err := s.checkUnit(ctx, actor, input.UnitID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.ActionStatusPlanned
	}

	item, err := s.items.Create(ctx, &domain.ActionItem{
		ID:          uuid.New(),
		ChurchID:    churchID,
		UnitID:      input.UnitID,
		Description: strings.TrimSpace(input.Description),
		Executioner: strings.TrimSpace(input.Executioner),
		StartDate:   domain.DateOf(input.StartDate),
		EndDate:     domain.DateOf(input.EndDate),
		Status:      status,
		Priority:    input.Priority,
	})
	if err != nil {
		return nil, fmt.Errorf("actionplan.AddItem: %w", err)
	}

	s.log.InfoContext(ctx, "action item added",
		slog.String("church_id", churchID.String()),
		slog.String("unit_id", item.UnitID.String()),
		slog.String("item_id", item.ID.String()),
	)

	return item, nil
}

// UpdateItem merges a partial update into an action item. The owning unit
// and church never change.
func (s *Service) UpdateItem(ctx context.Context, input UpdateItemInput) (*domain.ActionItem, error) {
	actor, err := authz.Require(ctx, authz.ActionPlanManage)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	current, err := s.items.GetByID(ctx, actor.ChurchID, input.ItemID)
	if err != nil {
		return nil, fmt.Errorf("actionplan.UpdateItem: %w", err)
	}
	if err := s.checkUnit(ctx, actor, current.UnitID); err != nil {
		return nil, err
	}

	changes := trimChanges(input.Changes)
	merged := changes.Apply(*current)
	if merged.EndDate.Before(merged.StartDate) {
		return nil, domain.NewValidationError("endDate", "must not be before startDate")
	}

	updated, err := s.items.Update(ctx, actor.ChurchID, current.ID, changes)
	if err != nil {
		return nil, fmt.Errorf("actionplan.UpdateItem: %w", err)
	}

	s.log.InfoContext(ctx, "action item updated",
		slog.String("item_id", updated.ID.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}

// checkUnit verifies the unit exists in the caller's church and, for unit
// heads, that it is the unit they head.
func (s *Service) checkUnit(ctx context.Context, actor authz.Actor, unitID uuid.UUID) error {
	if _, err := s.units.GetByID(ctx, actor.ChurchID, unitID); err != nil {
		return fmt.Errorf("get unit: %w", err)
	}
	scope, err := authz.UnitScope(ctx, actor, s.users)
	if err != nil {
		return err
	}
	return authz.CheckUnit(scope, unitID)
}

func trimChanges(c domain.ActionItemChanges) domain.ActionItemChanges {
	if c.Description != nil {
		v := strings.TrimSpace(*c.Description)
		c.Description = &v
	}
	if c.Executioner != nil {
		v := strings.TrimSpace(*c.Executioner)
		c.Executioner = &v
	}
	return c
}

package unit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/authz"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// UpdateUnit renames a unit and sets its head. When the head changes the
// previous head becomes a general member and the new one a unit head.
// Keeping the same head changes no user.
func (s *Service) UpdateUnit(ctx context.Context, input UpdateUnitInput) (*domain.Unit, error) {
	actor, err := authz.Require(ctx, authz.ConfigurationManage)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	churchID := actor.ChurchID

	var (
		updated *domain.Unit
		changes []roleChange
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.units.LockByID(txCtx, churchID, input.UnitID)
		if err != nil {
			return fmt.Errorf("lock unit: %w", err)
		}
		name := domain.NormalizeName(input.Name)

		if sameHead(current.HeadID, input.HeadID) {
			updated, err = s.units.Update(txCtx, churchID, current.ID, name, current.HeadID)
			if err != nil {
				return fmt.Errorf("update unit: %w", err)
			}
			return nil
		}

		head, err := s.resolveHead(txCtx, churchID, input.HeadID)
		if err != nil {
			return err
		}

		if current.HeadID != nil {
			change, err := s.demote(txCtx, churchID, *current.HeadID, current.ID)
			if err != nil {
				return err
			}
			if change != nil {
				changes = append(changes, *change)
			}
		}

		var headID *uuid.UUID
		if head != nil {
			change, err := s.promote(txCtx, churchID, head, current.ID)
			if err != nil {
				return err
			}
			changes = append(changes, *change)
			headID = &head.ID
		}

		updated, err = s.units.Update(txCtx, churchID, current.ID, name, headID)
		if err != nil {
			return fmt.Errorf("update unit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	recordRoleChanges(changes)

	s.log.InfoContext(ctx, "unit updated",
		slog.String("church_id", churchID.String()),
		slog.String("unit_id", updated.ID.String()),
		slog.Int("role_changes", len(changes)),
	)

	return updated, nil
}

func sameHead(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

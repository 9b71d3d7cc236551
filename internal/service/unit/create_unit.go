package unit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/authz"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// CreateUnit creates a unit in the caller's church. If HeadID names a user
// of the church, that user becomes the unit's head in the same transaction.
// An unknown HeadID is ignored and the unit is created without a head.
func (s *Service) CreateUnit(ctx context.Context, input CreateUnitInput) (*domain.Unit, error) {
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

	var (
		created *domain.Unit
		changes []roleChange
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		head, err := s.resolveHead(txCtx, churchID, input.HeadID)
		if err != nil {
			return err
		}

		created, err = s.units.Create(txCtx, &domain.Unit{
			ID:       uuid.New(),
			ChurchID: churchID,
			Name:     domain.NormalizeName(input.Name),
		})
		if err != nil {
			return fmt.Errorf("create unit: %w", err)
		}
		if head == nil {
			return nil
		}

		change, err := s.promote(txCtx, churchID, head, created.ID)
		if err != nil {
			return err
		}
		changes = append(changes, *change)

		created, err = s.units.Update(txCtx, churchID, created.ID, created.Name, &head.ID)
		if err != nil {
			return fmt.Errorf("set unit head: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	recordRoleChanges(changes)

	s.log.InfoContext(ctx, "unit created",
		slog.String("church_id", churchID.String()),
		slog.String("unit_id", created.ID.String()),
		slog.Bool("has_head", created.HasHead()),
	)

	return created, nil
}

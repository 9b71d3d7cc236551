package unit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/authz"
)

// DeleteUnit removes a unit. Its head, if any, becomes a general member and
// the unit is dropped from every member list. The unit's action items and
// reports go with it.
func (s *Service) DeleteUnit(ctx context.Context, unitID uuid.UUID) error {
	actor, err := authz.Require(ctx, authz.ConfigurationManage)
	if err != nil {
		return err
	}
	churchID := actor.ChurchID

	var (
		changes []roleChange
		members int
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.units.LockByID(txCtx, churchID, unitID)
		if err != nil {
			return fmt.Errorf("lock unit: %w", err)
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

		members, err = s.users.RemoveUnitMembership(txCtx, churchID, current.ID)
		if err != nil {
			return fmt.Errorf("remove memberships: %w", err)
		}

		if err := s.units.Delete(txCtx, churchID, current.ID); err != nil {
			return fmt.Errorf("delete unit: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	recordRoleChanges(changes)

	s.log.InfoContext(ctx, "unit deleted",
		slog.String("church_id", churchID.String()),
		slog.String("unit_id", unitID.String()),
		slog.Int("members_detached", members),
	)

	return nil
}

package overview

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Joseph-Edoh/Church-connect/internal/authz"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// GetOverview returns the church's dashboard counters. The counters are
// read concurrently and are not a consistent snapshot.
func (s *Service) GetOverview(ctx context.Context, churchID uuid.UUID) (*domain.ChurchOverview, error) {
	actor, err := authz.Require(ctx, authz.ConfigurationManage)
	if err != nil {
		return nil, err
	}
	churchID, err = actor.Tenant(churchID)
	if err != nil {
		return nil, err
	}

	out := domain.ChurchOverview{ChurchID: churchID}
	c := s.counters

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		out.UsersByRole, err = c.Users.CountByRole(gctx, churchID)
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		out.Units, err = c.Units.Count(gctx, churchID)
		if err != nil {
			return fmt.Errorf("count units: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		out.OpenActionItems, err = c.ActionItems.CountOpen(gctx, churchID)
		if err != nil {
			return fmt.Errorf("count action items: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		out.UnrepliedReports, err = c.Reports.CountUnreplied(gctx, churchID)
		if err != nil {
			return fmt.Errorf("count reports: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		out.FirstTimersByStatus, err = c.FirstTimers.CountByStatus(gctx, churchID)
		if err != nil {
			return fmt.Errorf("count first-timers: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		out.Announcements, err = c.Announcements.Count(gctx, churchID)
		if err != nil {
			return fmt.Errorf("count announcements: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("overview.GetOverview: %w", err)
	}

	return &out, nil
}

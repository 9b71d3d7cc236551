package firsttimer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/authz"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// ListFirstTimers returns the church's visitors, most recently logged first.
// A non-empty search matches the name case-insensitively or the phone
// verbatim.
func (s *Service) ListFirstTimers(ctx context.Context, churchID uuid.UUID, search string) ([]*domain.FirstTimer, error) {
	actor, err := authz.Require(ctx, authz.FirstTimersView)
	if err != nil {
		return nil, err
	}
	churchID, err = actor.Tenant(churchID)
	if err != nil {
		return nil, err
	}

	list, err := s.firstTimers.List(ctx, domain.FirstTimerFilter{
		ChurchID: churchID,
		Search:   strings.TrimSpace(search),
	})
	if err != nil {
		return nil, fmt.Errorf("firsttimer.ListFirstTimers: %w", err)
	}
	return list, nil
}

// LogFirstTimer records a visitor as needing follow-up, logged today.
func (s *Service) LogFirstTimer(ctx context.Context, input LogInput) (*domain.FirstTimer, error) {
	actor, err := authz.Require(ctx, authz.FirstTimersManage)
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

	ft, err := s.firstTimers.Create(ctx, &domain.FirstTimer{
		ID:             uuid.New(),
		ChurchID:       churchID,
		Name:           domain.NormalizeName(input.Name),
		Phone:          strings.TrimSpace(input.Phone),
		LoggedAt:       s.calendar.Today(),
		FollowUpStatus: domain.FollowUpNeeded,
	})
	if err != nil {
		return nil, fmt.Errorf("firsttimer.LogFirstTimer: %w", err)
	}

	s.log.InfoContext(ctx, "first-timer logged",
		slog.String("church_id", churchID.String()),
		slog.String("first_timer_id", ft.ID.String()),
	)

	return ft, nil
}

// UpdateFollowUp overwrites all three follow-up fields of a visitor.
func (s *Service) UpdateFollowUp(ctx context.Context, input FollowUpInput) (*domain.FirstTimer, error) {
	actor, err := authz.Require(ctx, authz.FirstTimersManage)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ft, err := s.firstTimers.UpdateFollowUp(ctx, actor.ChurchID, input.FirstTimerID, domain.FollowUp{
		Status: input.Status,
		Date:   input.Date,
		Notes:  input.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("firsttimer.UpdateFollowUp: %w", err)
	}

	s.log.InfoContext(ctx, "follow-up updated",
		slog.String("first_timer_id", ft.ID.String()),
		slog.String("status", ft.FollowUpStatus.String()),
	)

	return ft, nil
}

// GetFirstTimer returns a visitor of the caller's church.
func (s *Service) GetFirstTimer(ctx context.Context, id uuid.UUID) (*domain.FirstTimer, error) {
	actor, err := authz.Require(ctx, authz.FirstTimersView)
	if err != nil {
		return nil, err
	}
	ft, err := s.firstTimers.GetByID(ctx, actor.ChurchID, id)
	if err != nil {
		return nil, fmt.Errorf("firsttimer.GetFirstTimer: %w", err)
	}
	return ft, nil
}

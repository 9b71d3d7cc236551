package overview

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

type userCounter interface {
	CountByRole(ctx context.Context, churchID uuid.UUID) (map[domain.UserRole]int, error)
}

type unitCounter interface {
	Count(ctx context.Context, churchID uuid.UUID) (int, error)
}

type actionItemCounter interface {
	CountOpen(ctx context.Context, churchID uuid.UUID) (int, error)
}

type reportCounter interface {
	CountUnreplied(ctx context.Context, churchID uuid.UUID) (int, error)
}

type firstTimerCounter interface {
	CountByStatus(ctx context.Context, churchID uuid.UUID) (map[domain.FollowUpStatus]int, error)
}

type announcementCounter interface {
	Count(ctx context.Context, churchID uuid.UUID) (int, error)
}

// Counters groups the stores the dashboard reads from.
type Counters struct {
	Users         userCounter
	Units         unitCounter
	ActionItems   actionItemCounter
	Reports       reportCounter
	FirstTimers   firstTimerCounter
	Announcements announcementCounter
}

// Service builds the pastor's dashboard.
type Service struct {
	log      *slog.Logger
	counters Counters
}

// NewService creates a new overview service instance.
func NewService(logger *slog.Logger, counters Counters) *Service {
	return &Service{
		log:      logger.With("service", "overview"),
		counters: counters,
	}
}

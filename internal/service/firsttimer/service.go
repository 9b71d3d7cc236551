package firsttimer

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// firstTimerRepo defines the first-timer repository interface needed by firsttimer service.
type firstTimerRepo interface {
	Create(ctx context.Context, ft *domain.FirstTimer) (*domain.FirstTimer, error)
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.FirstTimer, error)
	UpdateFollowUp(ctx context.Context, churchID, id uuid.UUID, f domain.FollowUp) (*domain.FirstTimer, error)
	List(ctx context.Context, f domain.FirstTimerFilter) ([]*domain.FirstTimer, error)
}

// Service implements the first-timer follow-up pipeline.
type Service struct {
	log         *slog.Logger
	firstTimers firstTimerRepo
	calendar    domain.Calendar
}

// NewService creates a new firsttimer service instance.
func NewService(logger *slog.Logger, firstTimers firstTimerRepo, calendar domain.Calendar) *Service {
	return &Service{
		log:         logger.With("service", "firsttimer"),
		firstTimers: firstTimers,
		calendar:    calendar,
	}
}

package announcement

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// announcementRepo defines the announcement repository interface needed by announcement service.
type announcementRepo interface {
	Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Announcement, error)
	Update(ctx context.Context, churchID, id uuid.UUID, title, content string) (*domain.Announcement, error)
	Delete(ctx context.Context, churchID, id uuid.UUID) error
	List(ctx context.Context, churchID uuid.UUID) ([]*domain.Announcement, error)
}

// Service implements church announcements.
type Service struct {
	log           *slog.Logger
	announcements announcementRepo
	calendar      domain.Calendar
}

// NewService creates a new announcement service instance.
func NewService(logger *slog.Logger, announcements announcementRepo, calendar domain.Calendar) *Service {
	return &Service{
		log:           logger.With("service", "announcement"),
		announcements: announcements,
		calendar:      calendar,
	}
}

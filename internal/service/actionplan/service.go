package actionplan

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// itemRepo defines the action item repository interface needed by actionplan service.
type itemRepo interface {
	Create(ctx context.Context, item *domain.ActionItem) (*domain.ActionItem, error)
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.ActionItem, error)
	Update(ctx context.Context, churchID, id uuid.UUID, changes domain.ActionItemChanges) (*domain.ActionItem, error)
	List(ctx context.Context, churchID, unitID uuid.UUID) ([]*domain.ActionItem, error)
}

// unitRepo defines the unit repository interface needed by actionplan service.
type unitRepo interface {
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Unit, error)
}

// userRepo defines the user repository interface needed by actionplan service.
type userRepo interface {
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.User, error)
}

// Service implements unit action plans.
type Service struct {
	log   *slog.Logger
	items itemRepo
	units unitRepo
	users userRepo
}

// NewService creates a new actionplan service instance.
func NewService(logger *slog.Logger, items itemRepo, units unitRepo, users userRepo) *Service {
	return &Service{
		log:   logger.With("service", "actionplan"),
		items: items,
		units: units,
		users: users,
	}
}

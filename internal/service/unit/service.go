package unit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// unitRepo defines the unit repository interface needed by unit service.
type unitRepo interface {
	Create(ctx context.Context, u *domain.Unit) (*domain.Unit, error)
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Unit, error)
	LockByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Unit, error)
	Update(ctx context.Context, churchID, id uuid.UUID, name string, headID *uuid.UUID) (*domain.Unit, error)
	Delete(ctx context.Context, churchID, id uuid.UUID) error
	List(ctx context.Context, churchID uuid.UUID) ([]*domain.Unit, error)
}

// userRepo defines the user repository interface needed by unit service.
// Unit management is one of the two places allowed to change a user's role.
type userRepo interface {
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.User, error)
	SetRole(ctx context.Context, churchID, id uuid.UUID, role domain.UserRole, unitID *uuid.UUID) (*domain.User, error)
	RemoveUnitMembership(ctx context.Context, churchID, unitID uuid.UUID) (int, error)
}

// txManager defines the transaction manager interface needed by unit service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service keeps units and their heads consistent: every head assignment,
// reassignment and unit deletion updates the affected users' roles in the
// same transaction.
type Service struct {
	log   *slog.Logger
	units unitRepo
	users userRepo
	tx    txManager
}

// NewService creates a new unit service instance.
func NewService(
	logger *slog.Logger,
	units unitRepo,
	users userRepo,
	tx txManager,
) *Service {
	return &Service{
		log:   logger.With("service", "unit"),
		units: units,
		users: users,
		tx:    tx,
	}
}

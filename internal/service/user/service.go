package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, churchID uuid.UUID) ([]*domain.User, error)
	SetRole(ctx context.Context, churchID, id uuid.UUID, role domain.UserRole, unitID *uuid.UUID) (*domain.User, error)
}

// unitRepo defines the unit repository interface needed by user service.
type unitRepo interface {
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Unit, error)
	GetByIDs(ctx context.Context, churchID uuid.UUID, ids []uuid.UUID) ([]*domain.Unit, error)
}

// churchRepo defines the church repository interface needed by user service.
type churchRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Church, error)
}

// passwordHasher defines the password hashing interface needed by user service.
type passwordHasher interface {
	Hash(password string) (string, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user accounts, the first-timer logger toggle and the
// candidate lists used by the configuration screens.
type Service struct {
	log      *slog.Logger
	users    userRepo
	units    unitRepo
	churches churchRepo
	hasher   passwordHasher
	tx       txManager
	calendar domain.Calendar
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	units unitRepo,
	churches churchRepo,
	hasher passwordHasher,
	tx txManager,
	calendar domain.Calendar,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		units:    units,
		churches: churches,
		hasher:   hasher,
		tx:       tx,
		calendar: calendar,
	}
}

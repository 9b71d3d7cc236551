package church

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// churchRepo defines the church repository interface needed by church service.
type churchRepo interface {
	Create(ctx context.Context, c *domain.Church) (*domain.Church, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Church, error)
	List(ctx context.Context) ([]*domain.Church, error)
}

// userRepo defines the user repository interface needed by church service.
type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

// passwordHasher defines the password hashing interface needed by church service.
type passwordHasher interface {
	Hash(password string) (string, error)
}

// txManager defines the transaction manager interface needed by church service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements tenant registration and lookup.
type Service struct {
	log      *slog.Logger
	churches churchRepo
	users    userRepo
	hasher   passwordHasher
	tx       txManager
	calendar domain.Calendar
}

// NewService creates a new church service instance.
func NewService(
	logger *slog.Logger,
	churches churchRepo,
	users userRepo,
	hasher passwordHasher,
	tx txManager,
	calendar domain.Calendar,
) *Service {
	return &Service{
		log:      logger.With("service", "church"),
		churches: churches,
		users:    users,
		hasher:   hasher,
		tx:       tx,
		calendar: calendar,
	}
}

package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/pkg/ctxutil"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, churchID uuid.UUID, email string) (*domain.User, error)
}

// passwordVerifier defines the password check needed by auth service.
type passwordVerifier interface {
	Compare(hash, password string) error
}

// tokenIssuer defines the JWT token management interface needed by auth service.
type tokenIssuer interface {
	GenerateAccessToken(id ctxutil.Identity) (string, error)
	ExpiresIn() time.Duration
}

// Service implements sign-in.
type Service struct {
	log       *slog.Logger
	users     userRepo
	passwords passwordVerifier
	tokens    tokenIssuer
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	passwords passwordVerifier,
	tokens tokenIssuer,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		passwords: passwords,
		tokens:    tokens,
	}
}

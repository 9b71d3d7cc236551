package church

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// Registration is a newly registered church and its pastor.
type Registration struct {
	Church *domain.Church
	Pastor *domain.User
}

// Register creates a church and its pastor, a super admin, in one
// transaction. No caller identity is required.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Registration, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("church.Register: %w", err)
	}
	now := s.calendar.Now()

	var reg Registration
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.churches.Create(txCtx, &domain.Church{
			ID:        uuid.New(),
			Name:      domain.NormalizeName(input.Name),
			CreatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create church: %w", err)
		}

		pastor, err := s.users.Create(txCtx, &domain.User{
			ID:           uuid.New(),
			ChurchID:     c.ID,
			Name:         domain.NormalizeName(input.PastorName),
			Email:        strings.TrimSpace(input.Email),
			Phone:        strings.TrimSpace(input.Phone),
			PasswordHash: hash,
			Role:         domain.RoleSuperAdmin,
			CreatedAt:    now,
		})
		if err != nil {
			return fmt.Errorf("create pastor: %w", err)
		}

		reg = Registration{Church: c, Pastor: pastor}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "church registered",
		slog.String("church_id", reg.Church.ID.String()),
		slog.String("pastor_id", reg.Pastor.ID.String()),
	)

	return &reg, nil
}

// ListChurches returns every church ordered by name. It backs the church
// picker of the sign-in screen, so no caller identity is required.
func (s *Service) ListChurches(ctx context.Context) ([]*domain.Church, error) {
	churches, err := s.churches.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("church.ListChurches: %w", err)
	}
	return churches, nil
}

// GetChurch returns a church by id.
func (s *Service) GetChurch(ctx context.Context, id uuid.UUID) (*domain.Church, error) {
	c, err := s.churches.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("church.GetChurch: %w", err)
	}
	return c, nil
}

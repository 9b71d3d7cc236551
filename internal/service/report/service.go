package report

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// reportRepo defines the report repository interface needed by report service.
type reportRepo interface {
	Create(ctx context.Context, rep *domain.Report) (*domain.Report, error)
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Report, error)
	SetReply(ctx context.Context, churchID, id uuid.UUID, reply string) (*domain.Report, error)
	List(ctx context.Context, f domain.ReportFilter) ([]*domain.Report, error)
}

// unitRepo defines the unit repository interface needed by report service.
type unitRepo interface {
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Unit, error)
}

// userRepo defines the user repository interface needed by report service.
type userRepo interface {
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.User, error)
}

// Service implements weekly unit reports.
type Service struct {
	log      *slog.Logger
	reports  reportRepo
	units    unitRepo
	users    userRepo
	calendar domain.Calendar
}

// NewService creates a new report service instance.
func NewService(logger *slog.Logger, reports reportRepo, units unitRepo, users userRepo, calendar domain.Calendar) *Service {
	return &Service{
		log:      logger.With("service", "report"),
		reports:  reports,
		units:    units,
		users:    users,
		calendar: calendar,
	}
}

package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/Joseph-Edoh/Church-connect/internal/adapter/memory"
	"github.com/Joseph-Edoh/Church-connect/internal/adapter/postgres"
	"github.com/Joseph-Edoh/Church-connect/internal/adapter/postgres/actionitem"
	"github.com/Joseph-Edoh/Church-connect/internal/adapter/postgres/announcement"
	"github.com/Joseph-Edoh/Church-connect/internal/adapter/postgres/church"
	"github.com/Joseph-Edoh/Church-connect/internal/adapter/postgres/firsttimer"
	"github.com/Joseph-Edoh/Church-connect/internal/adapter/postgres/report"
	"github.com/Joseph-Edoh/Church-connect/internal/adapter/postgres/unit"
	"github.com/Joseph-Edoh/Church-connect/internal/adapter/postgres/user"
	"github.com/Joseph-Edoh/Church-connect/internal/config"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/Joseph-Edoh/Church-connect/migrations"
)

// ChurchStore is the church repository both backends provide.
type ChurchStore interface {
	Create(ctx context.Context, c *domain.Church) (*domain.Church, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Church, error)
	List(ctx context.Context) ([]*domain.Church, error)
}

// UserStore is the user repository both backends provide.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, churchID uuid.UUID, email string) (*domain.User, error)
	GetByIDs(ctx context.Context, churchID uuid.UUID, ids []uuid.UUID) ([]*domain.User, error)
	List(ctx context.Context, churchID uuid.UUID) ([]*domain.User, error)
	SetRole(ctx context.Context, churchID, id uuid.UUID, role domain.UserRole, unitID *uuid.UUID) (*domain.User, error)
	RemoveUnitMembership(ctx context.Context, churchID, unitID uuid.UUID) (int, error)
	CountByRole(ctx context.Context, churchID uuid.UUID) (map[domain.UserRole]int, error)
}

// UnitStore is the unit repository both backends provide.
type UnitStore interface {
	Create(ctx context.Context, u *domain.Unit) (*domain.Unit, error)
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Unit, error)
	LockByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Unit, error)
	GetByIDs(ctx context.Context, churchID uuid.UUID, ids []uuid.UUID) ([]*domain.Unit, error)
	GetByHeadID(ctx context.Context, churchID, headID uuid.UUID) (*domain.Unit, error)
	Update(ctx context.Context, churchID, id uuid.UUID, name string, headID *uuid.UUID) (*domain.Unit, error)
	Delete(ctx context.Context, churchID, id uuid.UUID) error
	List(ctx context.Context, churchID uuid.UUID) ([]*domain.Unit, error)
	Count(ctx context.Context, churchID uuid.UUID) (int, error)
}

// ActionItemStore is the action item repository both backends provide.
type ActionItemStore interface {
	Create(ctx context.Context, item *domain.ActionItem) (*domain.ActionItem, error)
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.ActionItem, error)
	Update(ctx context.Context, churchID, id uuid.UUID, changes domain.ActionItemChanges) (*domain.ActionItem, error)
	List(ctx context.Context, churchID, unitID uuid.UUID) ([]*domain.ActionItem, error)
	CountOpen(ctx context.Context, churchID uuid.UUID) (int, error)
}

// ReportStore is the report repository both backends provide.
type ReportStore interface {
	Create(ctx context.Context, rep *domain.Report) (*domain.Report, error)
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Report, error)
	SetReply(ctx context.Context, churchID, id uuid.UUID, reply string) (*domain.Report, error)
	List(ctx context.Context, f domain.ReportFilter) ([]*domain.Report, error)
	CountUnreplied(ctx context.Context, churchID uuid.UUID) (int, error)
}

// FirstTimerStore is the first-timer repository both backends provide.
type FirstTimerStore interface {
	Create(ctx context.Context, ft *domain.FirstTimer) (*domain.FirstTimer, error)
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.FirstTimer, error)
	UpdateFollowUp(ctx context.Context, churchID, id uuid.UUID, f domain.FollowUp) (*domain.FirstTimer, error)
	List(ctx context.Context, f domain.FirstTimerFilter) ([]*domain.FirstTimer, error)
	CountByStatus(ctx context.Context, churchID uuid.UUID) (map[domain.FollowUpStatus]int, error)
}

// AnnouncementStore is the announcement repository both backends provide.
type AnnouncementStore interface {
	Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Announcement, error)
	Update(ctx context.Context, churchID, id uuid.UUID, title, content string) (*domain.Announcement, error)
	Delete(ctx context.Context, churchID, id uuid.UUID) error
	List(ctx context.Context, churchID uuid.UUID) ([]*domain.Announcement, error)
	Count(ctx context.Context, churchID uuid.UUID) (int, error)
}

// TxManager runs fn in a single store transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Storage is the selected backend with all of its repositories.
type Storage struct {
	Driver        string
	Churches      ChurchStore
	Users         UserStore
	Units         UnitStore
	ActionItems   ActionItemStore
	Reports       ReportStore
	FirstTimers   FirstTimerStore
	Announcements AnnouncementStore
	Tx            TxManager

	ping  func(ctx context.Context) error
	close func()
}

// Ping checks that the backend is reachable.
func (s *Storage) Ping(ctx context.Context) error { return s.ping(ctx) }

// Close releases the backend's resources.
func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// NewMemoryStorage returns a fresh in-memory backend.
func NewMemoryStorage() *Storage {
	m := memory.NewStore()
	return &Storage{
		Driver:        config.DriverMemory,
		Churches:      m.Churches(),
		Users:         m.Users(),
		Units:         m.Units(),
		ActionItems:   m.ActionItems(),
		Reports:       m.Reports(),
		FirstTimers:   m.FirstTimers(),
		Announcements: m.Announcements(),
		Tx:            m.TxManager(),
		ping:          m.Ping,
	}
}

// NewPostgresStorage wires the repositories onto pool. The caller owns pool.
func NewPostgresStorage(pool *pgxpool.Pool) *Storage {
	return &Storage{
		Driver:        config.DriverPostgres,
		Churches:      church.New(pool),
		Users:         user.New(pool),
		Units:         unit.New(pool),
		ActionItems:   actionitem.New(pool),
		Reports:       report.New(pool),
		FirstTimers:   firsttimer.New(pool),
		Announcements: announcement.New(pool),
		Tx:            postgres.NewTxManager(pool),
		ping:          pool.Ping,
	}
}

// OpenStorage opens the backend cfg selects, migrating PostgreSQL first when
// AutoMigrate is set.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	if cfg.Storage.Driver != config.DriverPostgres {
		logger.Info("using in-memory storage")
		return NewMemoryStorage(), nil
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	if cfg.Storage.AutoMigrate {
		db := stdlib.OpenDBFromPool(pool)
		applied, err := migrations.Up(ctx, db)
		_ = db.Close()
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("open storage: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	s := NewPostgresStorage(pool)
	s.close = pool.Close
	logger.Info("using postgres storage",
		slog.Int("max_conns", int(cfg.Database.MaxConns)),
	)
	return s, nil
}

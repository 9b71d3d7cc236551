// Package firsttimer implements the first-timer repository using PostgreSQL.
package firsttimer

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/Joseph-Edoh/Church-connect/internal/adapter/postgres"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

const table = "first_timers"

var columns = []string{
	"id", "church_id", "name", "phone", "logged_at",
	"follow_up_status", "follow_up_date", "follow_up_notes",
}

const returning = "RETURNING id, church_id, name, phone, logged_at, follow_up_status, follow_up_date, follow_up_notes"

type row struct {
	ID             uuid.UUID  `db:"id"`
	ChurchID       uuid.UUID  `db:"church_id"`
	Name           string     `db:"name"`
	Phone          string     `db:"phone"`
	LoggedAt       time.Time  `db:"logged_at"`
	FollowUpStatus string     `db:"follow_up_status"`
	FollowUpDate   *time.Time `db:"follow_up_date"`
	FollowUpNotes  *string    `db:"follow_up_notes"`
}

func (r row) toDomain() *domain.FirstTimer {
	ft := &domain.FirstTimer{
		ID:             r.ID,
		ChurchID:       r.ChurchID,
		Name:           r.Name,
		Phone:          r.Phone,
		LoggedAt:       domain.DateOf(r.LoggedAt),
		FollowUpStatus: domain.FollowUpStatus(r.FollowUpStatus),
		FollowUpNotes:  r.FollowUpNotes,
	}
	if r.FollowUpDate != nil {
		d := domain.DateOf(*r.FollowUpDate)
		ft.FollowUpDate = &d
	}
	return ft
}

// Repo provides first-timer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new first-timer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a first-timer.
func (r *Repo) Create(ctx context.Context, ft *domain.FirstTimer) (*domain.FirstTimer, error) {
	q := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			ft.ID, ft.ChurchID, ft.Name, ft.Phone, ft.LoggedAt,
			ft.FollowUpStatus.String(), ft.FollowUpDate, ft.FollowUpNotes,
		).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "first-timer", ft.ID)
	}
	return out.toDomain(), nil
}

// GetByID returns a first-timer of the church or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.FirstTimer, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"church_id": churchID, "id": id})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "first-timer", id)
	}
	return out.toDomain(), nil
}

// UpdateFollowUp overwrites the follow-up status, date and notes.
func (r *Repo) UpdateFollowUp(ctx context.Context, churchID, id uuid.UUID, f domain.FollowUp) (*domain.FirstTimer, error) {
	var date *time.Time
	if f.Date != nil {
		d := domain.DateOf(*f.Date)
		date = &d
	}

	q := postgres.Builder().
		Update(table).
		Set("follow_up_status", f.Status.String()).
		Set("follow_up_date", date).
		Set("follow_up_notes", f.Notes).
		Where(squirrel.Eq{"church_id": churchID, "id": id}).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "first-timer", id)
	}
	return out.toDomain(), nil
}

// List returns first-timers matching f, most recently logged first.
// The search term matches the name case-insensitively or the phone verbatim.
func (r *Repo) List(ctx context.Context, f domain.FirstTimerFilter) ([]*domain.FirstTimer, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"church_id": f.ChurchID}).
		OrderBy("logged_at DESC", `name COLLATE "C"`, "id")
	if f.Search != "" {
		q = q.Where(squirrel.Or{
			squirrel.Expr("strpos(lower(name), lower(?)) > 0", f.Search),
			squirrel.Expr("strpos(phone, ?) > 0", f.Search),
		})
	}

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "first-timers", f.ChurchID)
	}

	out := make([]*domain.FirstTimer, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// CountByStatus returns the number of the church's first-timers per status.
func (r *Repo) CountByStatus(ctx context.Context, churchID uuid.UUID) (map[domain.FollowUpStatus]int, error) {
	q := postgres.Builder().
		Select("follow_up_status", "count(*) AS n").
		From(table).
		Where(squirrel.Eq{"church_id": churchID}).
		GroupBy("follow_up_status")

	var rows []struct {
		Status string `db:"follow_up_status"`
		N      int    `db:"n"`
	}
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "first-timers", churchID)
	}

	out := make(map[domain.FollowUpStatus]int, len(rows))
	for _, rw := range rows {
		out[domain.FollowUpStatus(rw.Status)] = rw.N
	}
	return out, nil
}

// Package report implements the weekly report repository using PostgreSQL.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/Joseph-Edoh/Church-connect/internal/adapter/postgres"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

const table = "reports"

var columns = []string{
	"id", "church_id", "unit_id", "content", "week_ending", "submitted_at", "reply", "created_at",
}

const returning = "RETURNING id, church_id, unit_id, content, week_ending, submitted_at, reply, created_at"

type row struct {
	ID          uuid.UUID `db:"id"`
	ChurchID    uuid.UUID `db:"church_id"`
	UnitID      uuid.UUID `db:"unit_id"`
	Content     string    `db:"content"`
	WeekEnding  time.Time `db:"week_ending"`
	SubmittedAt time.Time `db:"submitted_at"`
	Reply       *string   `db:"reply"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Report {
	return &domain.Report{
		ID:          r.ID,
		ChurchID:    r.ChurchID,
		UnitID:      r.UnitID,
		Content:     r.Content,
		WeekEnding:  domain.DateOf(r.WeekEnding),
		SubmittedAt: domain.DateOf(r.SubmittedAt),
		Reply:       r.Reply,
		CreatedAt:   r.CreatedAt.UTC(),
	}
}

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a report.
func (r *Repo) Create(ctx context.Context, rep *domain.Report) (*domain.Report, error) {
	q := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(rep.ID, rep.ChurchID, rep.UnitID, rep.Content, rep.WeekEnding, rep.SubmittedAt, rep.Reply, rep.CreatedAt).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "report", rep.ID)
	}
	return out.toDomain(), nil
}

// GetByID returns a report of the church or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Report, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"church_id": churchID, "id": id})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "report", id)
	}
	return out.toDomain(), nil
}

// SetReply stores the pastor's reply. The update only matches a report
// without a reply, so concurrent replies cannot both succeed; the loser
// gets domain.ErrConflict.
func (r *Repo) SetReply(ctx context.Context, churchID, id uuid.UUID, reply string) (*domain.Report, error) {
	q := postgres.Builder().
		Update(table).
		Set("reply", reply).
		Where(squirrel.Eq{"church_id": churchID, "id": id, "reply": nil}).
		Suffix(returning)

	var out row
	err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q)
	if err == nil {
		return out.toDomain(), nil
	}

	mapped := postgres.MapError(err, "report", id)
	if !errors.Is(mapped, domain.ErrNotFound) {
		return nil, mapped
	}
	if _, getErr := r.GetByID(ctx, churchID, id); getErr != nil {
		return nil, getErr
	}
	return nil, fmt.Errorf("report %s already replied: %w", id, domain.ErrConflict)
}

// List returns reports matching f, newest submission first.
func (r *Repo) List(ctx context.Context, f domain.ReportFilter) ([]*domain.Report, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"church_id": f.ChurchID}).
		OrderBy("submitted_at DESC", "week_ending DESC", "created_at DESC", "id")
	if f.UnitID != nil {
		q = q.Where(squirrel.Eq{"unit_id": *f.UnitID})
	}

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "reports", f.ChurchID)
	}

	out := make([]*domain.Report, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// CountUnreplied returns the number of the church's reports awaiting a reply.
func (r *Repo) CountUnreplied(ctx context.Context, churchID uuid.UUID) (int, error) {
	q := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"church_id": churchID, "reply": nil})

	var n int
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, q); err != nil {
		return 0, postgres.MapError(err, "reports", churchID)
	}
	return n, nil
}

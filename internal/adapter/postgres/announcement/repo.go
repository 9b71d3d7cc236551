// Package announcement implements the announcement repository using PostgreSQL.
package announcement

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/Joseph-Edoh/Church-connect/internal/adapter/postgres"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

const table = "announcements"

var columns = []string{"id", "church_id", "title", "content", "created_at"}

const returning = "RETURNING id, church_id, title, content, created_at"

type row struct {
	ID        uuid.UUID `db:"id"`
	ChurchID  uuid.UUID `db:"church_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Announcement {
	return &domain.Announcement{
		ID:        r.ID,
		ChurchID:  r.ChurchID,
		Title:     r.Title,
		Content:   r.Content,
		CreatedAt: r.CreatedAt.UTC(),
	}
}

// Repo provides announcement persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new announcement repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts an announcement.
func (r *Repo) Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	q := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(a.ID, a.ChurchID, a.Title, a.Content, a.CreatedAt).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "announcement", a.ID)
	}
	return out.toDomain(), nil
}

// GetByID returns an announcement of the church or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Announcement, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"church_id": churchID, "id": id})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "announcement", id)
	}
	return out.toDomain(), nil
}

// Update replaces the title and content.
func (r *Repo) Update(ctx context.Context, churchID, id uuid.UUID, title, content string) (*domain.Announcement, error) {
	q := postgres.Builder().
		Update(table).
		Set("title", title).
		Set("content", content).
		Where(squirrel.Eq{"church_id": churchID, "id": id}).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "announcement", id)
	}
	return out.toDomain(), nil
}

// Delete removes an announcement.
func (r *Repo) Delete(ctx context.Context, churchID, id uuid.UUID) error {
	q := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"church_id": churchID, "id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "announcement", id)
	}
	if n == 0 {
		return fmt.Errorf("announcement %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List returns the church's announcements, newest first.
func (r *Repo) List(ctx context.Context, churchID uuid.UUID) ([]*domain.Announcement, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"church_id": churchID}).
		OrderBy("created_at DESC", "id")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "announcements", churchID)
	}

	out := make([]*domain.Announcement, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Count returns the number of announcements in the church.
func (r *Repo) Count(ctx context.Context, churchID uuid.UUID) (int, error) {
	q := postgres.Builder().Select("count(*)").From(table).Where(squirrel.Eq{"church_id": churchID})

	var n int
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, q); err != nil {
		return 0, postgres.MapError(err, "announcements", churchID)
	}
	return n, nil
}

// Package church implements the church repository using PostgreSQL.
package church

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/Joseph-Edoh/Church-connect/internal/adapter/postgres"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

var columns = []string{"id", "name", "created_at"}

type row struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() *domain.Church {
	return &domain.Church{ID: r.ID, Name: r.Name, CreatedAt: r.CreatedAt.UTC()}
}

// Repo provides church persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new church repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a church.
func (r *Repo) Create(ctx context.Context, c *domain.Church) (*domain.Church, error) {
	q := postgres.Builder().
		Insert("churches").
		Columns(columns...).
		Values(c.ID, c.Name, c.CreatedAt).
		Suffix("RETURNING id, name, created_at")

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "church", c.ID)
	}
	return out.toDomain(), nil
}

// GetByID returns a church by id.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Church, error) {
	q := postgres.Builder().
		Select(columns...).
		From("churches").
		Where(squirrel.Eq{"id": id})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "church", id)
	}
	return out.toDomain(), nil
}

// List returns every church ordered by name.
func (r *Repo) List(ctx context.Context) ([]*domain.Church, error) {
	q := postgres.Builder().
		Select(columns...).
		From("churches").
		OrderBy(`name COLLATE "C"`, "id")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "church", "list")
	}

	out := make([]*domain.Church, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Package unit implements the unit repository using PostgreSQL.
package unit

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/Joseph-Edoh/Church-connect/internal/adapter/postgres"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

const table = "units"

var columns = []string{"id", "church_id", "name", "head_id"}

const returning = "RETURNING id, church_id, name, head_id"

type row struct {
	ID       uuid.UUID  `db:"id"`
	ChurchID uuid.UUID  `db:"church_id"`
	Name     string     `db:"name"`
	HeadID   *uuid.UUID `db:"head_id"`
}

func (r row) toDomain() *domain.Unit {
	return &domain.Unit{ID: r.ID, ChurchID: r.ChurchID, Name: r.Name, HeadID: r.HeadID}
}

func toDomain(rows []row) []*domain.Unit {
	out := make([]*domain.Unit, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out
}

// Repo provides unit persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new unit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) selectUnits() squirrel.SelectBuilder {
	return postgres.Builder().Select(columns...).From(table)
}

func (r *Repo) getOne(ctx context.Context, q squirrel.SelectBuilder, key any) (*domain.Unit, error) {
	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "unit", key)
	}
	return out.toDomain(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a unit of the church or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Unit, error) {
	return r.getOne(ctx, r.selectUnits().Where(squirrel.Eq{"church_id": churchID, "id": id}), id)
}

// LockByID is GetByID with a row lock held until the surrounding
// transaction ends.
func (r *Repo) LockByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Unit, error) {
	q := r.selectUnits().
		Where(squirrel.Eq{"church_id": churchID, "id": id}).
		Suffix("FOR UPDATE")
	return r.getOne(ctx, q, id)
}

// GetByHeadID returns the unit headed by the user.
func (r *Repo) GetByHeadID(ctx context.Context, churchID, headID uuid.UUID) (*domain.Unit, error) {
	return r.getOne(ctx, r.selectUnits().Where(squirrel.Eq{"church_id": churchID, "head_id": headID}), "head "+headID.String())
}

// GetByIDs returns the church's units among ids. Unknown ids are skipped.
func (r *Repo) GetByIDs(ctx context.Context, churchID uuid.UUID, ids []uuid.UUID) ([]*domain.Unit, error) {
	if len(ids) == 0 {
		return []*domain.Unit{}, nil
	}
	q := r.selectUnits().Where(squirrel.Eq{"church_id": churchID, "id": ids})

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "units", churchID)
	}
	return toDomain(rows), nil
}

// List returns the church's units ordered by name.
func (r *Repo) List(ctx context.Context, churchID uuid.UUID) ([]*domain.Unit, error) {
	q := r.selectUnits().
		Where(squirrel.Eq{"church_id": churchID}).
		OrderBy(`name COLLATE "C"`, "id")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "units", churchID)
	}
	return toDomain(rows), nil
}

// Count returns the number of units in the church.
func (r *Repo) Count(ctx context.Context, churchID uuid.UUID) (int, error) {
	q := postgres.Builder().Select("count(*)").From(table).Where(squirrel.Eq{"church_id": churchID})

	var n int
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, q); err != nil {
		return 0, postgres.MapError(err, "units", churchID)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a unit.
func (r *Repo) Create(ctx context.Context, u *domain.Unit) (*domain.Unit, error) {
	q := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.ChurchID, u.Name, u.HeadID).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "unit", u.ID)
	}
	return out.toDomain(), nil
}

// Update replaces the unit's name and head.
func (r *Repo) Update(ctx context.Context, churchID, id uuid.UUID, name string, headID *uuid.UUID) (*domain.Unit, error) {
	q := postgres.Builder().
		Update(table).
		Set("name", name).
		Set("head_id", headID).
		Where(squirrel.Eq{"church_id": churchID, "id": id}).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "unit", id)
	}
	return out.toDomain(), nil
}

// Delete removes the unit. Its action items and reports go with it
// (ON DELETE CASCADE).
func (r *Repo) Delete(ctx context.Context, churchID, id uuid.UUID) error {
	q := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"church_id": churchID, "id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), q)
	if err != nil {
		return postgres.MapError(err, "unit", id)
	}
	if n == 0 {
		return fmt.Errorf("unit %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

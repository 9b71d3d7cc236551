// Package actionitem implements the action item repository using PostgreSQL.
package actionitem

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/Joseph-Edoh/Church-connect/internal/adapter/postgres"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

const table = "action_items"

var columns = []string{
	"id", "church_id", "unit_id", "description", "executioner",
	"start_date", "end_date", "status", "priority",
}

const returning = "RETURNING id, church_id, unit_id, description, executioner, start_date, end_date, status, priority"

type row struct {
	ID          uuid.UUID `db:"id"`
	ChurchID    uuid.UUID `db:"church_id"`
	UnitID      uuid.UUID `db:"unit_id"`
	Description string    `db:"description"`
	Executioner string    `db:"executioner"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	Status      string    `db:"status"`
	Priority    string    `db:"priority"`
}

func (r row) toDomain() *domain.ActionItem {
	return &domain.ActionItem{
		ID:          r.ID,
		ChurchID:    r.ChurchID,
		UnitID:      r.UnitID,
		Description: r.Description,
		Executioner: r.Executioner,
		StartDate:   domain.DateOf(r.StartDate),
		EndDate:     domain.DateOf(r.EndDate),
		Status:      domain.ActionStatus(r.Status),
		Priority:    domain.Priority(r.Priority),
	}
}

// Repo provides action item persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new action item repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts an action item. A unit outside the item's church yields
// domain.ErrNotFound through the (church_id, unit_id) foreign key.
func (r *Repo) Create(ctx context.Context, item *domain.ActionItem) (*domain.ActionItem, error) {
	q := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			item.ID, item.ChurchID, item.UnitID, item.Description, item.Executioner,
			item.StartDate, item.EndDate, item.Status.String(), item.Priority.String(),
		).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "action item", item.ID)
	}
	return out.toDomain(), nil
}

// GetByID returns an action item of the church or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.ActionItem, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"church_id": churchID, "id": id})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "action item", id)
	}
	return out.toDomain(), nil
}

// Update writes the non-nil fields of changes.
func (r *Repo) Update(ctx context.Context, churchID, id uuid.UUID, changes domain.ActionItemChanges) (*domain.ActionItem, error) {
	set := make(map[string]any, 6)
	if changes.Description != nil {
		set["description"] = *changes.Description
	}
	if changes.Executioner != nil {
		set["executioner"] = *changes.Executioner
	}
	if changes.StartDate != nil {
		set["start_date"] = domain.DateOf(*changes.StartDate)
	}
	if changes.EndDate != nil {
		set["end_date"] = domain.DateOf(*changes.EndDate)
	}
	if changes.Status != nil {
		set["status"] = changes.Status.String()
	}
	if changes.Priority != nil {
		set["priority"] = changes.Priority.String()
	}
	if len(set) == 0 {
		return r.GetByID(ctx, churchID, id)
	}

	q := postgres.Builder().
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"church_id": churchID, "id": id}).
		Suffix(returning)

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, q); err != nil {
		return nil, postgres.MapError(err, "action item", id)
	}
	return out.toDomain(), nil
}

// List returns the unit's items ordered by start date.
func (r *Repo) List(ctx context.Context, churchID, unitID uuid.UUID) ([]*domain.ActionItem, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"church_id": churchID, "unit_id": unitID}).
		OrderBy("start_date", "id")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, q); err != nil {
		return nil, postgres.MapError(err, "action items of unit", unitID)
	}

	out := make([]*domain.ActionItem, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// CountOpen returns the number of items in the church not yet completed.
func (r *Repo) CountOpen(ctx context.Context, churchID uuid.UUID) (int, error) {
	q := postgres.Builder().
		Select("count(*)").
		From(table).
		Where(squirrel.Eq{"church_id": churchID}).
		Where(squirrel.NotEq{"status": domain.ActionStatusCompleted.String()})

	var n int
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, q); err != nil {
		return 0, postgres.MapError(err, "action items", churchID)
	}
	return n, nil
}

package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// UnitRepo stores units.
type UnitRepo struct {
	s *Store
}

// Create inserts a unit.
func (r *UnitRepo) Create(ctx context.Context, u *domain.Unit) (*domain.Unit, error) {
	defer r.s.lock(ctx)()

	if _, ok := r.s.units[u.ID]; ok {
		return nil, fmt.Errorf("unit %s: %w", u.ID, domain.ErrAlreadyExists)
	}
	stored := cloneUnit(*u)
	r.s.units[u.ID] = stored
	return ptr(cloneUnit(stored)), nil
}

// GetByID returns a unit of the church or domain.ErrNotFound.
func (r *UnitRepo) GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Unit, error) {
	defer r.s.rlock(ctx)()

	u, ok := r.s.units[id]
	if !ok || u.ChurchID != churchID {
		return nil, notFound("unit", id)
	}
	return ptr(cloneUnit(u)), nil
}

// LockByID is GetByID; inside RunInTx the whole store is already locked.
func (r *UnitRepo) LockByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Unit, error) {
	return r.GetByID(ctx, churchID, id)
}

// GetByIDs returns the church's units among ids. Unknown ids are skipped.
func (r *UnitRepo) GetByIDs(ctx context.Context, churchID uuid.UUID, ids []uuid.UUID) ([]*domain.Unit, error) {
	defer r.s.rlock(ctx)()

	out := make([]*domain.Unit, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.s.units[id]; ok && u.ChurchID == churchID {
			out = append(out, ptr(cloneUnit(u)))
		}
	}
	return out, nil
}

// GetByHeadID returns the unit headed by headID or domain.ErrNotFound.
func (r *UnitRepo) GetByHeadID(ctx context.Context, churchID, headID uuid.UUID) (*domain.Unit, error) {
	defer r.s.rlock(ctx)()

	for _, u := range r.s.units {
		if u.ChurchID == churchID && u.HeadedBy(headID) {
			return ptr(cloneUnit(u)), nil
		}
	}
	return nil, fmt.Errorf("unit headed by %s: %w", headID, domain.ErrNotFound)
}

// Update replaces the unit's name and head.
func (r *UnitRepo) Update(ctx context.Context, churchID, id uuid.UUID, name string, headID *uuid.UUID) (*domain.Unit, error) {
	defer r.s.lock(ctx)()

	u, ok := r.s.units[id]
	if !ok || u.ChurchID != churchID {
		return nil, notFound("unit", id)
	}
	u.Name = name
	u.HeadID = cloneUUIDPtr(headID)
	r.s.units[id] = u
	return ptr(cloneUnit(u)), nil
}

// Delete removes the unit together with its action items and reports.
func (r *UnitRepo) Delete(ctx context.Context, churchID, id uuid.UUID) error {
	defer r.s.lock(ctx)()

	u, ok := r.s.units[id]
	if !ok || u.ChurchID != churchID {
		return notFound("unit", id)
	}
	delete(r.s.units, id)
	for itemID, item := range r.s.actionItems {
		if item.UnitID == id {
			delete(r.s.actionItems, itemID)
		}
	}
	for reportID, rep := range r.s.reports {
		if rep.UnitID == id {
			delete(r.s.reports, reportID)
		}
	}
	return nil
}

// List returns the church's units ordered by name.
func (r *UnitRepo) List(ctx context.Context, churchID uuid.UUID) ([]*domain.Unit, error) {
	defer r.s.rlock(ctx)()

	out := make([]*domain.Unit, 0)
	for _, u := range r.s.units {
		if u.ChurchID == churchID {
			out = append(out, ptr(cloneUnit(u)))
		}
	}
	slices.SortFunc(out, func(a, b *domain.Unit) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), compareIDs(a.ID, b.ID))
	})
	return out, nil
}

// Count returns the number of units in the church.
func (r *UnitRepo) Count(ctx context.Context, churchID uuid.UUID) (int, error) {
	defer r.s.rlock(ctx)()

	n := 0
	for _, u := range r.s.units {
		if u.ChurchID == churchID {
			n++
		}
	}
	return n, nil
}

func cloneUnit(u domain.Unit) domain.Unit {
	u.HeadID = cloneUUIDPtr(u.HeadID)
	return u
}

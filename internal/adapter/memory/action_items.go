package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// ActionItemRepo stores unit action plan items.
type ActionItemRepo struct {
	s *Store
}

// Create inserts an action item.
func (r *ActionItemRepo) Create(ctx context.Context, item *domain.ActionItem) (*domain.ActionItem, error) {
	defer r.s.lock(ctx)()

	if _, ok := r.s.actionItems[item.ID]; ok {
		return nil, fmt.Errorf("action item %s: %w", item.ID, domain.ErrAlreadyExists)
	}
	if u, ok := r.s.units[item.UnitID]; !ok || u.ChurchID != item.ChurchID {
		return nil, notFound("unit", item.UnitID)
	}
	r.s.actionItems[item.ID] = *item
	return ptr(*item), nil
}

// GetByID returns an action item of the church or domain.ErrNotFound.
func (r *ActionItemRepo) GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.ActionItem, error) {
	defer r.s.rlock(ctx)()

	item, ok := r.s.actionItems[id]
	if !ok || item.ChurchID != churchID {
		return nil, notFound("action item", id)
	}
	return &item, nil
}

// Update merges changes into the stored item.
func (r *ActionItemRepo) Update(ctx context.Context, churchID, id uuid.UUID, changes domain.ActionItemChanges) (*domain.ActionItem, error) {
	defer r.s.lock(ctx)()

	item, ok := r.s.actionItems[id]
	if !ok || item.ChurchID != churchID {
		return nil, notFound("action item", id)
	}
	item = changes.Apply(item)
	r.s.actionItems[id] = item
	return &item, nil
}

// List returns the unit's items ordered by start date.
func (r *ActionItemRepo) List(ctx context.Context, churchID, unitID uuid.UUID) ([]*domain.ActionItem, error) {
	defer r.s.rlock(ctx)()

	out := make([]*domain.ActionItem, 0)
	for _, item := range r.s.actionItems {
		if item.ChurchID == churchID && item.UnitID == unitID {
			out = append(out, &item)
		}
	}
	slices.SortFunc(out, func(a, b *domain.ActionItem) int {
		return cmp.Or(a.StartDate.Compare(b.StartDate), compareIDs(a.ID, b.ID))
	})
	return out, nil
}

// CountOpen returns the number of items in the church not yet completed.
func (r *ActionItemRepo) CountOpen(ctx context.Context, churchID uuid.UUID) (int, error) {
	defer r.s.rlock(ctx)()

	n := 0
	for _, item := range r.s.actionItems {
		if item.ChurchID == churchID && item.Status.IsOpen() {
			n++
		}
	}
	return n, nil
}

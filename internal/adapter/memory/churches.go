package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// ChurchRepo stores churches.
type ChurchRepo struct {
	s *Store
}

// Create inserts a church. A duplicate id yields domain.ErrAlreadyExists.
func (r *ChurchRepo) Create(ctx context.Context, c *domain.Church) (*domain.Church, error) {
	defer r.s.lock(ctx)()

	if _, ok := r.s.churches[c.ID]; ok {
		return nil, fmt.Errorf("church %s: %w", c.ID, domain.ErrAlreadyExists)
	}
	r.s.churches[c.ID] = *c
	out := *c
	return &out, nil
}

// GetByID returns a church or domain.ErrNotFound.
func (r *ChurchRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Church, error) {
	defer r.s.rlock(ctx)()

	c, ok := r.s.churches[id]
	if !ok {
		return nil, notFound("church", id)
	}
	return &c, nil
}

// List returns every church ordered by name.
func (r *ChurchRepo) List(ctx context.Context) ([]*domain.Church, error) {
	defer r.s.rlock(ctx)()

	out := make([]*domain.Church, 0, len(r.s.churches))
	for _, c := range r.s.churches {
		out = append(out, &c)
	}
	slices.SortFunc(out, func(a, b *domain.Church) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), compareIDs(a.ID, b.ID))
	})
	return out, nil
}

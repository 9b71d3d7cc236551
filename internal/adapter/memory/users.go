package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// UserRepo stores users. Emails are unique per church after normalization.
type UserRepo struct {
	s *Store
}

// Create inserts a user. A second user with the same normalized email in the
// same church yields domain.ErrAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	defer r.s.lock(ctx)()

	if _, ok := r.s.users[u.ID]; ok {
		return nil, fmt.Errorf("user %s: %w", u.ID, domain.ErrAlreadyExists)
	}
	key := domain.NormalizeEmail(u.Email)
	for _, existing := range r.s.users {
		if existing.ChurchID == u.ChurchID && domain.NormalizeEmail(existing.Email) == key {
			return nil, fmt.Errorf("user email %q: %w", u.Email, domain.ErrAlreadyExists)
		}
	}

	stored := cloneUser(*u)
	r.s.users[u.ID] = stored
	return ptr(cloneUser(stored)), nil
}

// GetByID returns a user of the church or domain.ErrNotFound.
func (r *UserRepo) GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.User, error) {
	defer r.s.rlock(ctx)()

	u, ok := r.s.users[id]
	if !ok || u.ChurchID != churchID {
		return nil, notFound("user", id)
	}
	return ptr(cloneUser(u)), nil
}

// GetByEmail looks a user up by normalized email within the church.
func (r *UserRepo) GetByEmail(ctx context.Context, churchID uuid.UUID, email string) (*domain.User, error) {
	defer r.s.rlock(ctx)()

	key := domain.NormalizeEmail(email)
	for _, u := range r.s.users {
		if u.ChurchID == churchID && domain.NormalizeEmail(u.Email) == key {
			return ptr(cloneUser(u)), nil
		}
	}
	return nil, fmt.Errorf("user email %q: %w", email, domain.ErrNotFound)
}

// GetByIDs returns the church's users among ids. Unknown ids are skipped.
func (r *UserRepo) GetByIDs(ctx context.Context, churchID uuid.UUID, ids []uuid.UUID) ([]*domain.User, error) {
	defer r.s.rlock(ctx)()

	out := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := r.s.users[id]; ok && u.ChurchID == churchID {
			out = append(out, ptr(cloneUser(u)))
		}
	}
	return out, nil
}

// List returns the church's users ordered by name.
func (r *UserRepo) List(ctx context.Context, churchID uuid.UUID) ([]*domain.User, error) {
	defer r.s.rlock(ctx)()

	out := make([]*domain.User, 0)
	for _, u := range r.s.users {
		if u.ChurchID == churchID {
			out = append(out, ptr(cloneUser(u)))
		}
	}
	slices.SortFunc(out, func(a, b *domain.User) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), compareIDs(a.ID, b.ID))
	})
	return out, nil
}

// SetRole replaces the user's role and headed unit.
func (r *UserRepo) SetRole(ctx context.Context, churchID, id uuid.UUID, role domain.UserRole, unitID *uuid.UUID) (*domain.User, error) {
	defer r.s.lock(ctx)()

	u, ok := r.s.users[id]
	if !ok || u.ChurchID != churchID {
		return nil, notFound("user", id)
	}
	u.Role = role
	u.UnitID = cloneUUIDPtr(unitID)
	r.s.users[id] = u
	return ptr(cloneUser(u)), nil
}

// RemoveUnitMembership strips unitID from every member list in the church
// and returns how many users were changed.
func (r *UserRepo) RemoveUnitMembership(ctx context.Context, churchID, unitID uuid.UUID) (int, error) {
	defer r.s.lock(ctx)()

	n := 0
	for id, u := range r.s.users {
		if u.ChurchID != churchID || !u.MemberOf(unitID) {
			continue
		}
		u.MemberOfUnitIDs = slices.DeleteFunc(slices.Clone(u.MemberOfUnitIDs), func(m uuid.UUID) bool {
			return m == unitID
		})
		r.s.users[id] = u
		n++
	}
	return n, nil
}

// CountByRole returns the number of users per role in the church.
func (r *UserRepo) CountByRole(ctx context.Context, churchID uuid.UUID) (map[domain.UserRole]int, error) {
	defer r.s.rlock(ctx)()

	out := make(map[domain.UserRole]int)
	for _, u := range r.s.users {
		if u.ChurchID == churchID {
			out[u.Role]++
		}
	}
	return out, nil
}

func cloneUser(u domain.User) domain.User {
	u.UnitID = cloneUUIDPtr(u.UnitID)
	u.MemberOfUnitIDs = slices.Clone(u.MemberOfUnitIDs)
	return u
}

func ptr[T any](v T) *T {
	return &v
}

package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// FirstTimerRepo stores first-time visitors.
type FirstTimerRepo struct {
	s *Store
}

// Create inserts a first-timer.
func (r *FirstTimerRepo) Create(ctx context.Context, ft *domain.FirstTimer) (*domain.FirstTimer, error) {
	defer r.s.lock(ctx)()

	if _, ok := r.s.firstTimers[ft.ID]; ok {
		return nil, fmt.Errorf("first-timer %s: %w", ft.ID, domain.ErrAlreadyExists)
	}
	stored := cloneFirstTimer(*ft)
	r.s.firstTimers[ft.ID] = stored
	return ptr(cloneFirstTimer(stored)), nil
}

// GetByID returns a first-timer of the church or domain.ErrNotFound.
func (r *FirstTimerRepo) GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.FirstTimer, error) {
	defer r.s.rlock(ctx)()

	ft, ok := r.s.firstTimers[id]
	if !ok || ft.ChurchID != churchID {
		return nil, notFound("first-timer", id)
	}
	return ptr(cloneFirstTimer(ft)), nil
}

// UpdateFollowUp overwrites the follow-up status, date and notes.
func (r *FirstTimerRepo) UpdateFollowUp(ctx context.Context, churchID, id uuid.UUID, f domain.FollowUp) (*domain.FirstTimer, error) {
	defer r.s.lock(ctx)()

	ft, ok := r.s.firstTimers[id]
	if !ok || ft.ChurchID != churchID {
		return nil, notFound("first-timer", id)
	}
	ft = cloneFirstTimer(f.Apply(ft))
	r.s.firstTimers[id] = ft
	return ptr(cloneFirstTimer(ft)), nil
}

// List returns first-timers matching f, most recently logged first.
func (r *FirstTimerRepo) List(ctx context.Context, f domain.FirstTimerFilter) ([]*domain.FirstTimer, error) {
	defer r.s.rlock(ctx)()

	out := make([]*domain.FirstTimer, 0)
	for _, ft := range r.s.firstTimers {
		if ft.ChurchID != f.ChurchID || !ft.MatchesSearch(f.Search) {
			continue
		}
		out = append(out, ptr(cloneFirstTimer(ft)))
	}
	slices.SortFunc(out, func(a, b *domain.FirstTimer) int {
		return cmp.Or(
			b.LoggedAt.Compare(a.LoggedAt),
			cmp.Compare(a.Name, b.Name),
			compareIDs(a.ID, b.ID),
		)
	})
	return out, nil
}

// CountByStatus returns the number of the church's first-timers per status.
func (r *FirstTimerRepo) CountByStatus(ctx context.Context, churchID uuid.UUID) (map[domain.FollowUpStatus]int, error) {
	defer r.s.rlock(ctx)()

	out := make(map[domain.FollowUpStatus]int)
	for _, ft := range r.s.firstTimers {
		if ft.ChurchID == churchID {
			out[ft.FollowUpStatus]++
		}
	}
	return out, nil
}

func cloneFirstTimer(ft domain.FirstTimer) domain.FirstTimer {
	if ft.FollowUpDate != nil {
		d := *ft.FollowUpDate
		ft.FollowUpDate = &d
	}
	ft.FollowUpNotes = cloneStringPtr(ft.FollowUpNotes)
	return ft
}

package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// AnnouncementRepo stores church announcements.
type AnnouncementRepo struct {
	s *Store
}

// Create inserts an announcement.
func (r *AnnouncementRepo) Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	defer r.s.lock(ctx)()

	if _, ok := r.s.announcements[a.ID]; ok {
		return nil, fmt.Errorf("announcement %s: %w", a.ID, domain.ErrAlreadyExists)
	}
	r.s.announcements[a.ID] = *a
	return ptr(*a), nil
}

// GetByID returns an announcement of the church or domain.ErrNotFound.
func (r *AnnouncementRepo) GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Announcement, error) {
	defer r.s.rlock(ctx)()

	a, ok := r.s.announcements[id]
	if !ok || a.ChurchID != churchID {
		return nil, notFound("announcement", id)
	}
	return &a, nil
}

// Update replaces the title and content.
func (r *AnnouncementRepo) Update(ctx context.Context, churchID, id uuid.UUID, title, content string) (*domain.Announcement, error) {
	defer r.s.lock(ctx)()

	a, ok := r.s.announcements[id]
	if !ok || a.ChurchID != churchID {
		return nil, notFound("announcement", id)
	}
	a.Title = title
	a.Content = content
	r.s.announcements[id] = a
	return &a, nil
}

// Delete removes an announcement.
func (r *AnnouncementRepo) Delete(ctx context.Context, churchID, id uuid.UUID) error {
	defer r.s.lock(ctx)()

	a, ok := r.s.announcements[id]
	if !ok || a.ChurchID != churchID {
		return notFound("announcement", id)
	}
	delete(r.s.announcements, id)
	return nil
}

// List returns the church's announcements, newest first.
func (r *AnnouncementRepo) List(ctx context.Context, churchID uuid.UUID) ([]*domain.Announcement, error) {
	defer r.s.rlock(ctx)()

	out := make([]*domain.Announcement, 0)
	for _, a := range r.s.announcements {
		if a.ChurchID == churchID {
			out = append(out, &a)
		}
	}
	slices.SortFunc(out, func(a, b *domain.Announcement) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), compareIDs(a.ID, b.ID))
	})
	return out, nil
}

// Count returns the number of announcements in the church.
func (r *AnnouncementRepo) Count(ctx context.Context, churchID uuid.UUID) (int, error) {
	defer r.s.rlock(ctx)()

	n := 0
	for _, a := range r.s.announcements {
		if a.ChurchID == churchID {
			n++
		}
	}
	return n, nil
}

package announcement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/authz"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// ListAnnouncements returns the church's announcements, newest first.
// Every member of the church may read them.
func (s *Service) ListAnnouncements(ctx context.Context, churchID uuid.UUID) ([]*domain.Announcement, error) {
	actor, err := authz.Require(ctx, authz.AnnouncementsView)
	if err != nil {
		return nil, err
	}
	churchID, err = actor.Tenant(churchID)
	if err != nil {
		return nil, err
	}

	list, err := s.announcements.List(ctx, churchID)
	if err != nil {
		return nil, fmt.Errorf("announcement.ListAnnouncements: %w", err)
	}
	return list, nil
}

// CreateAnnouncement posts an announcement.
func (s *Service) CreateAnnouncement(ctx context.Context, input CreateInput) (*domain.Announcement, error) {
	actor, err := authz.Require(ctx, authz.AnnouncementsManage)
	if err != nil {
		return nil, err
	}
	churchID, err := actor.Tenant(input.ChurchID)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.announcements.Create(ctx, &domain.Announcement{
		ID:        uuid.New(),
		ChurchID:  churchID,
		Title:     strings.TrimSpace(input.Title),
		Content:   strings.TrimSpace(input.Content),
		CreatedAt: s.calendar.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("announcement.CreateAnnouncement: %w", err)
	}

	s.log.InfoContext(ctx, "announcement created",
		slog.String("church_id", churchID.String()),
		slog.String("announcement_id", a.ID.String()),
	)

	return a, nil
}

// UpdateAnnouncement replaces the title and content. The creation time,
// and so the position in the feed, is kept.
func (s *Service) UpdateAnnouncement(ctx context.Context, input UpdateInput) (*domain.Announcement, error) {
	actor, err := authz.Require(ctx, authz.AnnouncementsManage)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	a, err := s.announcements.Update(ctx, actor.ChurchID, input.AnnouncementID,
		strings.TrimSpace(input.Title), strings.TrimSpace(input.Content))
	if err != nil {
		return nil, fmt.Errorf("announcement.UpdateAnnouncement: %w", err)
	}

	s.log.InfoContext(ctx, "announcement updated", slog.String("announcement_id", a.ID.String()))

	return a, nil
}

// DeleteAnnouncement removes an announcement.
func (s *Service) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	actor, err := authz.Require(ctx, authz.AnnouncementsManage)
	if err != nil {
		return err
	}

	if err := s.announcements.Delete(ctx, actor.ChurchID, id); err != nil {
		return fmt.Errorf("announcement.DeleteAnnouncement: %w", err)
	}

	s.log.InfoContext(ctx, "announcement deleted", slog.String("announcement_id", id.String()))

	return nil
}

// GetAnnouncement returns an announcement of the caller's church.
func (s *Service) GetAnnouncement(ctx context.Context, id uuid.UUID) (*domain.Announcement, error) {
	actor, err := authz.Require(ctx, authz.AnnouncementsView)
	if err != nil {
		return nil, err
	}
	a, err := s.announcements.GetByID(ctx, actor.ChurchID, id)
	if err != nil {
		return nil, fmt.Errorf("announcement.GetAnnouncement: %w", err)
	}
	return a, nil
}

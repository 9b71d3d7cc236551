package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

type churchRepo interface {
	Create(ctx context.Context, c *domain.Church) (*domain.Church, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Church, error)
}

type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

type unitRepo interface {
	Create(ctx context.Context, u *domain.Unit) (*domain.Unit, error)
	Update(ctx context.Context, churchID, id uuid.UUID, name string, headID *uuid.UUID) (*domain.Unit, error)
}

type actionItemRepo interface {
	Create(ctx context.Context, item *domain.ActionItem) (*domain.ActionItem, error)
}

type reportRepo interface {
	Create(ctx context.Context, rep *domain.Report) (*domain.Report, error)
}

type firstTimerRepo interface {
	Create(ctx context.Context, ft *domain.FirstTimer) (*domain.FirstTimer, error)
}

type announcementRepo interface {
	Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

// Repos are the stores the loader writes to.
type Repos struct {
	Churches      churchRepo
	Users         userRepo
	Units         unitRepo
	ActionItems   actionItemRepo
	Reports       reportRepo
	FirstTimers   firstTimerRepo
	Announcements announcementRepo
	Tx            txManager
}

// Loader writes fixtures through the repositories, bypassing the services:
// fixture records carry their own dates and replies.
type Loader struct {
	log    *slog.Logger
	repos  Repos
	hasher passwordHasher
}

// NewLoader creates a Loader.
func NewLoader(logger *slog.Logger, repos Repos, hasher passwordHasher) *Loader {
	return &Loader{log: logger.With("component", "seed"), repos: repos, hasher: hasher}
}

// Summary reports what a Load did.
type Summary struct {
	Created int
	Skipped int
}

// Load inserts every church of f that is not already present. Each church is
// written in its own transaction.
func (l *Loader) Load(ctx context.Context, f *Fixture) (Summary, error) {
	var sum Summary

	hash, err := l.hasher.Hash(f.Password)
	if err != nil {
		return sum, fmt.Errorf("seed.Load: %w", err)
	}

	for i := range f.Churches {
		c := &f.Churches[i]
		churchID := id(c.Key)

		_, err := l.repos.Churches.GetByID(ctx, churchID)
		switch {
		case err == nil:
			sum.Skipped++
			l.log.DebugContext(ctx, "church already seeded", slog.String("church", c.Key))
			continue
		case !errors.Is(err, domain.ErrNotFound):
			return sum, fmt.Errorf("seed.Load: church %q: %w", c.Key, err)
		}

		err = l.repos.Tx.RunInTx(ctx, func(ctx context.Context) error {
			return l.loadChurch(ctx, churchID, c, hash)
		})
		if err != nil {
			return sum, fmt.Errorf("seed.Load: church %q: %w", c.Key, err)
		}
		sum.Created++

		l.log.InfoContext(ctx, "church seeded",
			slog.String("church", c.Key),
			slog.String("church_id", churchID.String()),
			slog.Int("users", len(c.Users)),
			slog.Int("units", len(c.Units)),
		)
	}
	return sum, nil
}

func (l *Loader) loadChurch(ctx context.Context, churchID uuid.UUID, c *Church, hash string) error {
	created, err := parseDate(c.Created)
	if err != nil {
		return fmt.Errorf("created: %w", err)
	}
	if _, err := l.repos.Churches.Create(ctx, &domain.Church{ID: churchID, Name: c.Name, CreatedAt: created}); err != nil {
		return fmt.Errorf("create church: %w", err)
	}

	// Units first without heads, since heads reference their unit.
	unitIDs := make(map[string]uuid.UUID, len(c.Units))
	headOf := make(map[string]uuid.UUID, len(c.Units))
	for _, u := range c.Units {
		unitID := id(c.Key, "unit", u.Key)
		unitIDs[u.Key] = unitID
		if u.Head != "" {
			headOf[u.Head] = unitID
		}
		if _, err := l.repos.Units.Create(ctx, &domain.Unit{ID: unitID, ChurchID: churchID, Name: u.Name}); err != nil {
			return fmt.Errorf("create unit %q: %w", u.Key, err)
		}
	}

	for _, u := range c.Users {
		user := &domain.User{
			ID:           id(c.Key, "user", u.Key),
			ChurchID:     churchID,
			Name:         u.Name,
			Email:        u.Email,
			Phone:        u.Phone,
			PasswordHash: hash,
			Role:         domain.UserRole(u.Role),
			CreatedAt:    created,
		}
		if unitID, ok := headOf[u.Key]; ok {
			user.UnitID = &unitID
		}
		for _, m := range u.MemberOf {
			user.MemberOfUnitIDs = append(user.MemberOfUnitIDs, unitIDs[m])
		}
		if _, err := l.repos.Users.Create(ctx, user); err != nil {
			return fmt.Errorf("create user %q: %w", u.Key, err)
		}
	}

	for _, u := range c.Units {
		if u.Head == "" {
			continue
		}
		headID := id(c.Key, "user", u.Head)
		if _, err := l.repos.Units.Update(ctx, churchID, unitIDs[u.Key], u.Name, &headID); err != nil {
			return fmt.Errorf("set head of %q: %w", u.Key, err)
		}
	}

	for i, a := range c.ActionItems {
		start, err := parseDate(a.Start)
		if err != nil {
			return fmt.Errorf("action item %d start: %w", i, err)
		}
		end, err := parseDate(a.End)
		if err != nil {
			return fmt.Errorf("action item %d end: %w", i, err)
		}
		_, err = l.repos.ActionItems.Create(ctx, &domain.ActionItem{
			ID:          id(c.Key, "action-item", strconv.Itoa(i)),
			ChurchID:    churchID,
			UnitID:      unitIDs[a.Unit],
			Description: a.Description,
			Executioner: a.Executioner,
			StartDate:   start,
			EndDate:     end,
			Status:      domain.ActionStatus(a.Status),
			Priority:    domain.Priority(a.Priority),
		})
		if err != nil {
			return fmt.Errorf("create action item %d: %w", i, err)
		}
	}

	for i, r := range c.Reports {
		week, err := parseDate(r.WeekEnding)
		if err != nil {
			return fmt.Errorf("report %d week ending: %w", i, err)
		}
		submitted, err := parseDate(r.Submitted)
		if err != nil {
			return fmt.Errorf("report %d submitted: %w", i, err)
		}
		_, err = l.repos.Reports.Create(ctx, &domain.Report{
			ID:          id(c.Key, "report", strconv.Itoa(i)),
			ChurchID:    churchID,
			UnitID:      unitIDs[r.Unit],
			Content:     r.Content,
			WeekEnding:  week,
			SubmittedAt: submitted,
			Reply:       optional(r.Reply),
			CreatedAt:   submitted,
		})
		if err != nil {
			return fmt.Errorf("create report %d: %w", i, err)
		}
	}

	for i, ft := range c.FirstTimers {
		logged, err := parseDate(ft.Logged)
		if err != nil {
			return fmt.Errorf("first-timer %d logged: %w", i, err)
		}
		rec := &domain.FirstTimer{
			ID:             id(c.Key, "first-timer", strconv.Itoa(i)),
			ChurchID:       churchID,
			Name:           ft.Name,
			Phone:          ft.Phone,
			LoggedAt:       logged,
			FollowUpStatus: domain.FollowUpStatus(ft.Status),
			FollowUpNotes:  optional(ft.FollowUpNotes),
		}
		if ft.FollowUpDate != "" {
			d, err := parseDate(ft.FollowUpDate)
			if err != nil {
				return fmt.Errorf("first-timer %d follow-up date: %w", i, err)
			}
			rec.FollowUpDate = &d
		}
		if _, err := l.repos.FirstTimers.Create(ctx, rec); err != nil {
			return fmt.Errorf("create first-timer %d: %w", i, err)
		}
	}

	for i, a := range c.Announcements {
		at, err := parseDate(a.Created)
		if err != nil {
			return fmt.Errorf("announcement %d created: %w", i, err)
		}
		_, err = l.repos.Announcements.Create(ctx, &domain.Announcement{
			ID:        id(c.Key, "announcement", strconv.Itoa(i)),
			ChurchID:  churchID,
			Title:     a.Title,
			Content:   a.Content,
			CreatedAt: at,
		})
		if err != nil {
			return fmt.Errorf("create announcement %d: %w", i, err)
		}
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	t, err := domain.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a YYYY-MM-DD date", s)
	}
	return t, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

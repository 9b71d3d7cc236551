package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// FirstTimer is a visitor tracked through the follow-up pipeline.
type FirstTimer struct {
	ID             uuid.UUID
	ChurchID       uuid.UUID
	Name           string
	Phone          string
	LoggedAt       time.Time
	FollowUpStatus FollowUpStatus
	FollowUpDate   *time.Time
	FollowUpNotes  *string
}

// FollowUp replaces all three follow-up fields of a first-timer at once.
// A nil Date or Notes clears the stored value.
type FollowUp struct {
	Status FollowUpStatus
	Date   *time.Time
	Notes  *string
}

// Apply overwrites the follow-up fields of ft.
func (f FollowUp) Apply(ft FirstTimer) FirstTimer {
	ft.FollowUpStatus = f.Status
	ft.FollowUpDate = nil
	if f.Date != nil {
		d := DateOf(*f.Date)
		ft.FollowUpDate = &d
	}
	ft.FollowUpNotes = f.Notes
	return ft
}

// MatchesSearch reports whether the visitor's name contains term
// (case-insensitive) or their phone contains it verbatim.
// An empty term matches everything.
func (ft *FirstTimer) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	return ContainsFold(ft.Name, term) || strings.Contains(ft.Phone, term)
}

// FirstTimerFilter narrows a first-timer listing.
type FirstTimerFilter struct {
	ChurchID uuid.UUID
	Search   string
}

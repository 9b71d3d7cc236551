package domain

import (
	"time"

	"github.com/google/uuid"
)

// Church is a tenant. Every other entity belongs to exactly one church.
type Church struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// Unit is a sub-group within a church (e.g. Choir) with at most one head.
type Unit struct {
	ID       uuid.UUID
	ChurchID uuid.UUID
	Name     string
	HeadID   *uuid.UUID
}

// HasHead reports whether the unit currently has a head assigned.
func (u *Unit) HasHead() bool {
	return u.HeadID != nil
}

// HeadedBy reports whether the given user heads the unit.
func (u *Unit) HeadedBy(userID uuid.UUID) bool {
	return u.HeadID != nil && *u.HeadID == userID
}

// Announcement is a church-wide notice, listed newest first.
type Announcement struct {
	ID        uuid.UUID
	ChurchID  uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
}

// ChurchOverview is a dashboard of per-church counters.
type ChurchOverview struct {
	ChurchID            uuid.UUID
	UsersByRole         map[UserRole]int
	Units               int
	OpenActionItems     int
	UnrepliedReports    int
	FirstTimersByStatus map[FollowUpStatus]int
	Announcements       int
}

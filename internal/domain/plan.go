package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActionItem is a task in a unit's action plan.
// StartDate and EndDate are calendar dates (see DateOf).
type ActionItem struct {
	ID          uuid.UUID
	ChurchID    uuid.UUID
	UnitID      uuid.UUID
	Description string
	Executioner string
	StartDate   time.Time
	EndDate     time.Time
	Status      ActionStatus
	Priority    Priority
}

// ActionItemChanges is a partial update of an action item.
// Nil fields are left unchanged; owner ids are never updatable.
type ActionItemChanges struct {
	Description *string
	Executioner *string
	StartDate   *time.Time
	EndDate     *time.Time
	Status      *ActionStatus
	Priority    *Priority
}

// IsEmpty reports whether no field is set.
func (c ActionItemChanges) IsEmpty() bool {
	return c.Description == nil && c.Executioner == nil && c.StartDate == nil &&
		c.EndDate == nil && c.Status == nil && c.Priority == nil
}

// Apply returns a copy of item with the non-nil changes merged in.
func (c ActionItemChanges) Apply(item ActionItem) ActionItem {
	if c.Description != nil {
		item.Description = *c.Description
	}
	if c.Executioner != nil {
		item.Executioner = *c.Executioner
	}
	if c.StartDate != nil {
		item.StartDate = DateOf(*c.StartDate)
	}
	if c.EndDate != nil {
		item.EndDate = DateOf(*c.EndDate)
	}
	if c.Status != nil {
		item.Status = *c.Status
	}
	if c.Priority != nil {
		item.Priority = *c.Priority
	}
	return item
}

// Report is a weekly report submitted by a unit.
// Content is immutable once submitted; Reply may be set exactly once.
type Report struct {
	ID          uuid.UUID
	ChurchID    uuid.UUID
	UnitID      uuid.UUID
	Content     string
	WeekEnding  time.Time
	SubmittedAt time.Time
	Reply       *string
	CreatedAt   time.Time
}

// HasReply reports whether the report was already answered.
func (r *Report) HasReply() bool {
	return r.Reply != nil
}

// ReportFilter narrows a report listing. The church is always applied first.
type ReportFilter struct {
	ChurchID uuid.UUID
	UnitID   *uuid.UUID
}

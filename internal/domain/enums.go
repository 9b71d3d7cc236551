package domain

// UserRole is the fixed role a user holds inside their church.
type UserRole string

const (
	RoleSuperAdmin       UserRole = "Super Admin"
	RoleUnitHead         UserRole = "Unit Head"
	RoleFirstTimerLogger UserRole = "First-Timer Logger"
	RoleGeneralMember    UserRole = "General Member"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleUnitHead, RoleFirstTimerLogger, RoleGeneralMember:
		return true
	}
	return false
}

// Roles returns every role in display order.
func Roles() []UserRole {
	return []UserRole{RoleSuperAdmin, RoleUnitHead, RoleFirstTimerLogger, RoleGeneralMember}
}

// ActionStatus tracks the progress of an action item.
type ActionStatus string

const (
	ActionStatusPlanned    ActionStatus = "Planned"
	ActionStatusInProgress ActionStatus = "In Progress"
	ActionStatusCompleted  ActionStatus = "Completed"
	ActionStatusBlocked    ActionStatus = "Blocked"
)

func (s ActionStatus) String() string { return string(s) }

func (s ActionStatus) IsValid() bool {
	switch s {
	case ActionStatusPlanned, ActionStatusInProgress, ActionStatusCompleted, ActionStatusBlocked:
		return true
	}
	return false
}

// IsOpen reports whether work on the item is still outstanding.
func (s ActionStatus) IsOpen() bool {
	return s != ActionStatusCompleted
}

// Priority ranks action items within a unit's plan.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// FollowUpStatus is the stage of a first-timer in the follow-up pipeline.
type FollowUpStatus string

const (
	FollowUpNeeded        FollowUpStatus = "Needs Follow-up"
	FollowUpScheduled     FollowUpStatus = "Follow-up Scheduled"
	FollowUpContacted     FollowUpStatus = "Contacted"
	FollowUpJoinedUnit    FollowUpStatus = "Joined Unit"
	FollowUpNotInterested FollowUpStatus = "Not Interested"
)

func (s FollowUpStatus) String() string { return string(s) }

func (s FollowUpStatus) IsValid() bool {
	switch s {
	case FollowUpNeeded, FollowUpScheduled, FollowUpContacted, FollowUpJoinedUnit, FollowUpNotInterested:
		return true
	}
	return false
}

// Portal is the login screen a user signs in through.
type Portal string

const (
	PortalAdmin  Portal = "admin"
	PortalWorker Portal = "worker"
)

func (p Portal) String() string { return string(p) }

func (p Portal) IsValid() bool {
	return p == PortalAdmin || p == PortalWorker
}

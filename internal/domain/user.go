package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// User is a member of a church with exactly one role.
//
// UnitID is set if and only if Role is RoleUnitHead, and then names the unit
// the user heads. Both fields change only through unit management and the
// first-timer logger toggle.
type User struct {
	ID              uuid.UUID
	ChurchID        uuid.UUID
	Name            string
	Email           string
	Phone           string
	PasswordHash    string
	Role            UserRole
	UnitID          *uuid.UUID
	MemberOfUnitIDs []uuid.UUID
	CreatedAt       time.Time
}

// IsAdmin reports whether the user is the church's super admin.
func (u *User) IsAdmin() bool {
	return u.Role == RoleSuperAdmin
}

// Heads reports whether the user is the head of the given unit.
func (u *User) Heads(unitID uuid.UUID) bool {
	return u.Role == RoleUnitHead && u.UnitID != nil && *u.UnitID == unitID
}

// MemberOf reports whether the user belongs to the given unit.
func (u *User) MemberOf(unitID uuid.UUID) bool {
	return slices.Contains(u.MemberOfUnitIDs, unitID)
}

// CanHeadUnit reports whether the user may be offered as a head candidate
// for a brand-new unit: neither an admin nor already heading a unit.
func (u *User) CanHeadUnit() bool {
	return u.Role != RoleSuperAdmin && u.Role != RoleUnitHead
}

// CanToggleLogger reports whether the first-timer logger toggle applies.
func (u *User) CanToggleLogger() bool {
	return u.Role != RoleSuperAdmin && u.Role != RoleUnitHead
}

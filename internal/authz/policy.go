// Package authz is the single role-based authorization policy of the service.
//
// Every entry point (REST handlers, the admin CLI, services) asks this
// package whether a role may perform an action; no other code compares roles
// to decide access.
package authz

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// Permission is an action guarded by the policy.
type Permission string

const (
	AnnouncementsView   Permission = "announcements.view"
	AnnouncementsManage Permission = "announcements.manage"
	ConfigurationManage Permission = "configuration.manage"
	ActionPlanView      Permission = "actionplan.view"
	ActionPlanManage    Permission = "actionplan.manage"
	ReportsView         Permission = "reports.view"
	ReportsSubmit       Permission = "reports.submit"
	ReportsReply        Permission = "reports.reply"
	FirstTimersView     Permission = "firsttimers.view"
	FirstTimersManage   Permission = "firsttimers.manage"
)

func (p Permission) String() string { return string(p) }

// Page is a navigation destination of the client application.
type Page string

const (
	PageAnnouncements  Page = "Announcements"
	PageConfiguration  Page = "Configuration"
	PageUnitActionPlan Page = "Unit Action Plan"
	PageUnitReports    Page = "Unit Reports"
	PageFirstTimers    Page = "First-Timers"
)

func (p Page) String() string { return string(p) }

var (
	everyone  = []domain.UserRole{domain.RoleSuperAdmin, domain.RoleUnitHead, domain.RoleFirstTimerLogger, domain.RoleGeneralMember}
	adminOnly = []domain.UserRole{domain.RoleSuperAdmin}
	unitLeads = []domain.UserRole{domain.RoleSuperAdmin, domain.RoleUnitHead}
	ftLoggers = []domain.UserRole{domain.RoleSuperAdmin, domain.RoleFirstTimerLogger}
	unitHeads = []domain.UserRole{domain.RoleUnitHead}
)

// permissions lists every permission in rendering order.
var permissions = []Permission{
	AnnouncementsView,
	AnnouncementsManage,
	ConfigurationManage,
	ActionPlanView,
	ActionPlanManage,
	ReportsView,
	ReportsSubmit,
	ReportsReply,
	FirstTimersView,
	FirstTimersManage,
}

var policy = map[Permission][]domain.UserRole{
	AnnouncementsView:   everyone,
	AnnouncementsManage: adminOnly,
	ConfigurationManage: adminOnly,
	ActionPlanView:      unitLeads,
	ActionPlanManage:    unitLeads,
	ReportsView:         unitLeads,
	ReportsSubmit:       unitHeads,
	ReportsReply:        adminOnly,
	FirstTimersView:     ftLoggers,
	FirstTimersManage:   ftLoggers,
}

// pages lists navigation pages in menu order with the permission that opens each.
var pages = []struct {
	page Page
	perm Permission
}{
	{PageAnnouncements, AnnouncementsView},
	{PageConfiguration, ConfigurationManage},
	{PageUnitActionPlan, ActionPlanView},
	{PageUnitReports, ReportsView},
	{PageFirstTimers, FirstTimersView},
}

// Permissions returns every permission known to the policy.
func Permissions() []Permission {
	return slices.Clone(permissions)
}

// Allows reports whether role holds perm. Unknown roles and permissions are denied.
func Allows(role domain.UserRole, perm Permission) bool {
	return slices.Contains(policy[perm], role)
}

// RolesFor returns the roles that hold perm.
func RolesFor(perm Permission) []domain.UserRole {
	return slices.Clone(policy[perm])
}

// Pages returns the navigation pages available to role, in menu order.
func Pages(role domain.UserRole) []Page {
	var out []Page
	for _, p := range pages {
		if Allows(role, p.perm) {
			out = append(out, p.page)
		}
	}
	return out
}

// Decision is the outcome of a page access check.
type Decision struct {
	Allowed bool
	Reason  string
}

// AccessDenied is the fixed result for a page outside a role's set.
var AccessDenied = Decision{Allowed: false, Reason: "access denied"}

// Check decides whether role may open page. Unknown pages are denied.
func Check(role domain.UserRole, page Page) Decision {
	for _, p := range pages {
		if p.page == page {
			if Allows(role, p.perm) {
				return Decision{Allowed: true}
			}
			return AccessDenied
		}
	}
	return AccessDenied
}

// RenderMatrix writes the permission and page tables in a stable text form.
func RenderMatrix(w io.Writer) error {
	var b strings.Builder
	b.WriteString("# permissions\n")
	for _, perm := range permissions {
		fmt.Fprintf(&b, "%s: %s\n", perm, joinRoles(policy[perm]))
	}
	b.WriteString("# pages\n")
	for _, p := range pages {
		fmt.Fprintf(&b, "%s: %s\n", p.page, joinRoles(policy[p.perm]))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func joinRoles(roles []domain.UserRole) string {
	names := make([]string, len(roles))
	for i, r := range roles {
		names[i] = r.String()
	}
	return strings.Join(names, ", ")
}

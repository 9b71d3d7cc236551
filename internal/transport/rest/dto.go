package rest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

type churchResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func toChurch(c *domain.Church) churchResponse {
	return churchResponse{ID: c.ID.String(), Name: c.Name, CreatedAt: c.CreatedAt}
}

type userResponse struct {
	ID              string    `json:"id"`
	ChurchID        string    `json:"churchId"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Role            string    `json:"role"`
	UnitID          *string   `json:"unitId"`
	MemberOfUnitIDs []string  `json:"memberOfUnitIds"`
	CreatedAt       time.Time `json:"createdAt"`
}

func toUser(u *domain.User) userResponse {
	return userResponse{
		ID:              u.ID.String(),
		ChurchID:        u.ChurchID.String(),
		Name:            u.Name,
		Email:           u.Email,
		Phone:           u.Phone,
		Role:            u.Role.String(),
		UnitID:          idString(u.UnitID),
		MemberOfUnitIDs: idStrings(u.MemberOfUnitIDs),
		CreatedAt:       u.CreatedAt,
	}
}

func toUsers(us []*domain.User) []userResponse {
	out := make([]userResponse, len(us))
	for i, u := range us {
		out[i] = toUser(u)
	}
	return out
}

type personRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type unitResponse struct {
	ID       string     `json:"id"`
	ChurchID string     `json:"churchId"`
	Name     string     `json:"name"`
	HeadID   *string    `json:"headId"`
	Head     *personRef `json:"head,omitempty"`
}

type publicUnitResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// toUnits renders units with their heads' names resolved through the
// request's user loader in one batch.
func toUnits(ctx context.Context, units []*domain.Unit) ([]unitResponse, error) {
	headIDs := make([]uuid.UUID, 0, len(units))
	for _, u := range units {
		if u.HeadID != nil {
			headIDs = append(headIDs, *u.HeadID)
		}
	}
	heads, err := loadUsers(ctx, headIDs)
	if err != nil {
		return nil, err
	}

	out := make([]unitResponse, len(units))
	for i, u := range units {
		out[i] = unitResponse{
			ID:       u.ID.String(),
			ChurchID: u.ChurchID.String(),
			Name:     u.Name,
			HeadID:   idString(u.HeadID),
		}
		if u.HeadID != nil {
			if h := heads[*u.HeadID]; h != nil {
				out[i].Head = &personRef{ID: h.ID.String(), Name: h.Name}
			}
		}
	}
	return out, nil
}

type actionItemResponse struct {
	ID          string `json:"id"`
	ChurchID    string `json:"churchId"`
	UnitID      string `json:"unitId"`
	Description string `json:"description"`
	Executioner string `json:"executioner"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
}

func toActionItem(a *domain.ActionItem) actionItemResponse {
	return actionItemResponse{
		ID:          a.ID.String(),
		ChurchID:    a.ChurchID.String(),
		UnitID:      a.UnitID.String(),
		Description: a.Description,
		Executioner: a.Executioner,
		StartDate:   domain.FormatDate(a.StartDate),
		EndDate:     domain.FormatDate(a.EndDate),
		Status:      a.Status.String(),
		Priority:    a.Priority.String(),
	}
}

type reportResponse struct {
	ID          string    `json:"id"`
	ChurchID    string    `json:"churchId"`
	UnitID      string    `json:"unitId"`
	UnitName    string    `json:"unitName,omitempty"`
	Content     string    `json:"content"`
	WeekEnding  string    `json:"weekEnding"`
	SubmittedAt string    `json:"submittedAt"`
	Reply       *string   `json:"reply"`
	CreatedAt   time.Time `json:"createdAt"`
}

// toReports renders reports with their unit names resolved through the
// request's unit loader in one batch.
func toReports(ctx context.Context, reports []*domain.Report) ([]reportResponse, error) {
	unitIDs := make([]uuid.UUID, len(reports))
	for i, r := range reports {
		unitIDs[i] = r.UnitID
	}
	units, err := loadUnits(ctx, unitIDs)
	if err != nil {
		return nil, err
	}

	out := make([]reportResponse, len(reports))
	for i, r := range reports {
		out[i] = reportResponse{
			ID:          r.ID.String(),
			ChurchID:    r.ChurchID.String(),
			UnitID:      r.UnitID.String(),
			Content:     r.Content,
			WeekEnding:  domain.FormatDate(r.WeekEnding),
			SubmittedAt: domain.FormatDate(r.SubmittedAt),
			Reply:       r.Reply,
			CreatedAt:   r.CreatedAt,
		}
		if u := units[r.UnitID]; u != nil {
			out[i].UnitName = u.Name
		}
	}
	return out, nil
}

type firstTimerResponse struct {
	ID             string  `json:"id"`
	ChurchID       string  `json:"churchId"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	LoggedAt       string  `json:"loggedAt"`
	FollowUpStatus string  `json:"followUpStatus"`
	FollowUpDate   *string `json:"followUpDate"`
	FollowUpNotes  *string `json:"followUpNotes"`
}

func toFirstTimer(f *domain.FirstTimer) firstTimerResponse {
	resp := firstTimerResponse{
		ID:             f.ID.String(),
		ChurchID:       f.ChurchID.String(),
		Name:           f.Name,
		Phone:          f.Phone,
		LoggedAt:       domain.FormatDate(f.LoggedAt),
		FollowUpStatus: f.FollowUpStatus.String(),
		FollowUpNotes:  f.FollowUpNotes,
	}
	if f.FollowUpDate != nil {
		d := domain.FormatDate(*f.FollowUpDate)
		resp.FollowUpDate = &d
	}
	return resp
}

type announcementResponse struct {
	ID        string    `json:"id"`
	ChurchID  string    `json:"churchId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func toAnnouncement(a *domain.Announcement) announcementResponse {
	return announcementResponse{
		ID:        a.ID.String(),
		ChurchID:  a.ChurchID.String(),
		Title:     a.Title,
		Content:   a.Content,
		CreatedAt: a.CreatedAt,
	}
}

type overviewResponse struct {
	ChurchID            string         `json:"churchId"`
	UsersByRole         map[string]int `json:"usersByRole"`
	Units               int            `json:"units"`
	OpenActionItems     int            `json:"openActionItems"`
	UnrepliedReports    int            `json:"unrepliedReports"`
	FirstTimersByStatus map[string]int `json:"firstTimersByStatus"`
	Announcements       int            `json:"announcements"`
}

func toOverview(o *domain.ChurchOverview) overviewResponse {
	resp := overviewResponse{
		ChurchID:            o.ChurchID.String(),
		UsersByRole:         make(map[string]int, len(o.UsersByRole)),
		Units:               o.Units,
		OpenActionItems:     o.OpenActionItems,
		UnrepliedReports:    o.UnrepliedReports,
		FirstTimersByStatus: make(map[string]int, len(o.FirstTimersByStatus)),
		Announcements:       o.Announcements,
	}
	for role, n := range o.UsersByRole {
		resp.UsersByRole[role.String()] = n
	}
	for status, n := range o.FirstTimersByStatus {
		resp.FirstTimersByStatus[status.String()] = n
	}
	return resp
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func idStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func parseIDs(field string, raw []string) ([]uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, domain.NewValidationError(field, "invalid id")
		}
		out[i] = id
	}
	return out, nil
}

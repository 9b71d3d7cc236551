package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/authz"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// SubmitReport files a report for the unit the caller heads. The week
// ending is the Sunday on or after today.
func (s *Service) SubmitReport(ctx context.Context, input SubmitInput) (*domain.Report, error) {
	actor, err := authz.Require(ctx, authz.ReportsSubmit)
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

	scope, err := authz.UnitScope(ctx, actor, s.users)
	if err != nil {
		return nil, err
	}
	if scope == nil {
		return nil, domain.ErrForbidden
	}
	unitID := *scope
	if input.UnitID != nil {
		if err := authz.CheckUnit(scope, *input.UnitID); err != nil {
			return nil, err
		}
	}
	if _, err := s.units.GetByID(ctx, churchID, unitID); err != nil {
		return nil, fmt.Errorf("report.SubmitReport: get unit: %w", err)
	}

	today := s.calendar.Today()
	rep, err := s.reports.Create(ctx, &domain.Report{
		ID:          uuid.New(),
		ChurchID:    churchID,
		UnitID:      unitID,
		Content:     strings.TrimSpace(input.Content),
		WeekEnding:  domain.WeekEnding(today),
		SubmittedAt: today,
		CreatedAt:   s.calendar.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("report.SubmitReport: %w", err)
	}

	s.log.InfoContext(ctx, "report submitted",
		slog.String("church_id", churchID.String()),
		slog.String("unit_id", unitID.String()),
		slog.String("week_ending", domain.FormatDate(rep.WeekEnding)),
	)

	return rep, nil
}

// ReplyReport stores the pastor's reply. A report can be answered once;
// a second reply yields domain.ErrConflict.
func (s *Service) ReplyReport(ctx context.Context, input ReplyInput) (*domain.Report, error) {
	actor, err := authz.Require(ctx, authz.ReportsReply)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	rep, err := s.reports.SetReply(ctx, actor.ChurchID, input.ReportID, strings.TrimSpace(input.Reply))
	if err != nil {
		return nil, fmt.Errorf("report.ReplyReport: %w", err)
	}

	s.log.InfoContext(ctx, "report replied", slog.String("report_id", rep.ID.String()))

	return rep, nil
}

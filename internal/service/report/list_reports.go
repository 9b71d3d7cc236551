package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/authz"
	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// ListReports returns reports newest first. A nil unitID lists the whole
// church for super admins; unit heads always see only their own unit.
func (s *Service) ListReports(ctx context.Context, churchID uuid.UUID, unitID *uuid.UUID) ([]*domain.Report, error) {
	actor, err := authz.Require(ctx, authz.ReportsView)
	if err != nil {
		return nil, err
	}
	churchID, err = actor.Tenant(churchID)
	if err != nil {
		return nil, err
	}

	scope, err := authz.UnitScope(ctx, actor, s.users)
	if err != nil {
		return nil, err
	}
	if scope != nil {
		if unitID != nil {
			if err := authz.CheckUnit(scope, *unitID); err != nil {
				return nil, err
			}
		}
		unitID = scope
	}

	reports, err := s.reports.List(ctx, domain.ReportFilter{ChurchID: churchID, UnitID: unitID})
	if err != nil {
		return nil, fmt.Errorf("report.ListReports: %w", err)
	}
	return reports, nil
}

// GetReport returns a single report, subject to the same unit scoping as
// ListReports.
func (s *Service) GetReport(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	actor, err := authz.Require(ctx, authz.ReportsView)
	if err != nil {
		return nil, err
	}

	rep, err := s.reports.GetByID(ctx, actor.ChurchID, id)
	if err != nil {
		return nil, fmt.Errorf("report.GetReport: %w", err)
	}

	scope, err := authz.UnitScope(ctx, actor, s.users)
	if err != nil {
		return nil, err
	}
	if err := authz.CheckUnit(scope, rep.UnitID); err != nil {
		return nil, err
	}
	return rep, nil
}

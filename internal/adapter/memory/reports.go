package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
)

// ReportRepo stores weekly unit reports.
type ReportRepo struct {
	s *Store
}

// Create inserts a report.
func (r *ReportRepo) Create(ctx context.Context, rep *domain.Report) (*domain.Report, error) {
	defer r.s.lock(ctx)()

	if _, ok := r.s.reports[rep.ID]; ok {
		return nil, fmt.Errorf("report %s: %w", rep.ID, domain.ErrAlreadyExists)
	}
	if u, ok := r.s.units[rep.UnitID]; !ok || u.ChurchID != rep.ChurchID {
		return nil, notFound("unit", rep.UnitID)
	}
	stored := cloneReport(*rep)
	r.s.reports[rep.ID] = stored
	return ptr(cloneReport(stored)), nil
}

// GetByID returns a report of the church or domain.ErrNotFound.
func (r *ReportRepo) GetByID(ctx context.Context, churchID, id uuid.UUID) (*domain.Report, error) {
	defer r.s.rlock(ctx)()

	rep, ok := r.s.reports[id]
	if !ok || rep.ChurchID != churchID {
		return nil, notFound("report", id)
	}
	return ptr(cloneReport(rep)), nil
}

// SetReply stores the pastor's reply. A report that already has a reply
// yields domain.ErrConflict.
func (r *ReportRepo) SetReply(ctx context.Context, churchID, id uuid.UUID, reply string) (*domain.Report, error) {
	defer r.s.lock(ctx)()

	rep, ok := r.s.reports[id]
	if !ok || rep.ChurchID != churchID {
		return nil, notFound("report", id)
	}
	if rep.HasReply() {
		return nil, fmt.Errorf("report %s already replied: %w", id, domain.ErrConflict)
	}
	rep.Reply = &reply
	r.s.reports[id] = rep
	return ptr(cloneReport(rep)), nil
}

// List returns reports matching f, newest submission first.
func (r *ReportRepo) List(ctx context.Context, f domain.ReportFilter) ([]*domain.Report, error) {
	defer r.s.rlock(ctx)()

	out := make([]*domain.Report, 0)
	for _, rep := range r.s.reports {
		if rep.ChurchID != f.ChurchID {
			continue
		}
		if f.UnitID != nil && rep.UnitID != *f.UnitID {
			continue
		}
		out = append(out, ptr(cloneReport(rep)))
	}
	slices.SortFunc(out, func(a, b *domain.Report) int {
		return cmp.Or(
			b.SubmittedAt.Compare(a.SubmittedAt),
			b.WeekEnding.Compare(a.WeekEnding),
			b.CreatedAt.Compare(a.CreatedAt),
			compareIDs(a.ID, b.ID),
		)
	})
	return out, nil
}

// CountUnreplied returns the number of the church's reports awaiting a reply.
func (r *ReportRepo) CountUnreplied(ctx context.Context, churchID uuid.UUID) (int, error) {
	defer r.s.rlock(ctx)()

	n := 0
	for _, rep := range r.s.reports {
		if rep.ChurchID == churchID && !rep.HasReply() {
			n++
		}
	}
	return n, nil
}

func cloneReport(rep domain.Report) domain.Report {
	rep.Reply = cloneStringPtr(rep.Reply)
	return rep
}

package report

import (
	"context"
	"sync"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/google/uuid"
)

var _ reportRepo = &reportRepoMock{}

type reportRepoMock struct {
	CreateFunc   func(ctx context.Context, rep *domain.Report) (*domain.Report, error)
	GetByIDFunc  func(ctx context.Context, churchID uuid.UUID, id uuid.UUID) (*domain.Report, error)
	SetReplyFunc func(ctx context.Context, churchID uuid.UUID, id uuid.UUID, reply string) (*domain.Report, error)
	ListFunc     func(ctx context.Context, f domain.ReportFilter) ([]*domain.Report, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rep *domain.Report
		}
		GetByID []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
			ID       uuid.UUID
		}
		SetReply []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
			ID       uuid.UUID
			Reply    string
		}
		List []struct {
			Ctx context.Context
			F   domain.ReportFilter
		}
	}
	lockCreate   sync.RWMutex
	lockGetByID  sync.RWMutex
	lockSetReply sync.RWMutex
	lockList     sync.RWMutex
}

func (mock *reportRepoMock) Create(ctx context.Context, rep *domain.Report) (*domain.Report, error) {
	if mock.CreateFunc == nil {
		panic("reportRepoMock.CreateFunc: method is nil but reportRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rep *domain.Report
	}{Ctx: ctx, Rep: rep}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rep)
}

func (mock *reportRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rep *domain.Report
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reportRepoMock) GetByID(ctx context.Context, churchID uuid.UUID, id uuid.UUID) (*domain.Report, error) {
	if mock.GetByIDFunc == nil {
		panic("reportRepoMock.GetByIDFunc: method is nil but reportRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
		ID       uuid.UUID
	}{Ctx: ctx, ChurchID: churchID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, churchID, id)
}

func (mock *reportRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	ID       uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *reportRepoMock) SetReply(ctx context.Context, churchID uuid.UUID, id uuid.UUID, reply string) (*domain.Report, error) {
	if mock.SetReplyFunc == nil {
		panic("reportRepoMock.SetReplyFunc: method is nil but reportRepo.SetReply was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
		ID       uuid.UUID
		Reply    string
	}{Ctx: ctx, ChurchID: churchID, ID: id, Reply: reply}
	mock.lockSetReply.Lock()
	mock.calls.SetReply = append(mock.calls.SetReply, callInfo)
	mock.lockSetReply.Unlock()
	return mock.SetReplyFunc(ctx, churchID, id, reply)
}

func (mock *reportRepoMock) SetReplyCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	ID       uuid.UUID
	Reply    string
} {
	mock.lockSetReply.RLock()
	calls := mock.calls.SetReply
	mock.lockSetReply.RUnlock()
	return calls
}

func (mock *reportRepoMock) List(ctx context.Context, f domain.ReportFilter) ([]*domain.Report, error) {
	if mock.ListFunc == nil {
		panic("reportRepoMock.ListFunc: method is nil but reportRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.ReportFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *reportRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.ReportFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

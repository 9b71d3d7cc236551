package firsttimer

import (
	"context"
	"sync"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/google/uuid"
)

var _ firstTimerRepo = &firstTimerRepoMock{}

type firstTimerRepoMock struct {
	CreateFunc         func(ctx context.Context, ft *domain.FirstTimer) (*domain.FirstTimer, error)
	GetByIDFunc        func(ctx context.Context, churchID uuid.UUID, id uuid.UUID) (*domain.FirstTimer, error)
	UpdateFollowUpFunc func(ctx context.Context, churchID uuid.UUID, id uuid.UUID, f domain.FollowUp) (*domain.FirstTimer, error)
	ListFunc           func(ctx context.Context, f domain.FirstTimerFilter) ([]*domain.FirstTimer, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Ft  *domain.FirstTimer
		}
		GetByID []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
			ID       uuid.UUID
		}
		UpdateFollowUp []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
			ID       uuid.UUID
			F        domain.FollowUp
		}
		List []struct {
			Ctx context.Context
			F   domain.FirstTimerFilter
		}
	}
	lockCreate         sync.RWMutex
	lockGetByID        sync.RWMutex
	lockUpdateFollowUp sync.RWMutex
	lockList           sync.RWMutex
}

func (mock *firstTimerRepoMock) Create(ctx context.Context, ft *domain.FirstTimer) (*domain.FirstTimer, error) {
	if mock.CreateFunc == nil {
		panic("firstTimerRepoMock.CreateFunc: method is nil but firstTimerRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ft  *domain.FirstTimer
	}{Ctx: ctx, Ft: ft}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, ft)
}

func (mock *firstTimerRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Ft  *domain.FirstTimer
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *firstTimerRepoMock) GetByID(ctx context.Context, churchID uuid.UUID, id uuid.UUID) (*domain.FirstTimer, error) {
	if mock.GetByIDFunc == nil {
		panic("firstTimerRepoMock.GetByIDFunc: method is nil but firstTimerRepo.GetByID was just called")
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

func (mock *firstTimerRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	ID       uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *firstTimerRepoMock) UpdateFollowUp(ctx context.Context, churchID uuid.UUID, id uuid.UUID, f domain.FollowUp) (*domain.FirstTimer, error) {
	if mock.UpdateFollowUpFunc == nil {
		panic("firstTimerRepoMock.UpdateFollowUpFunc: method is nil but firstTimerRepo.UpdateFollowUp was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
		ID       uuid.UUID
		F        domain.FollowUp
	}{Ctx: ctx, ChurchID: churchID, ID: id, F: f}
	mock.lockUpdateFollowUp.Lock()
	mock.calls.UpdateFollowUp = append(mock.calls.UpdateFollowUp, callInfo)
	mock.lockUpdateFollowUp.Unlock()
	return mock.UpdateFollowUpFunc(ctx, churchID, id, f)
}

func (mock *firstTimerRepoMock) UpdateFollowUpCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	ID       uuid.UUID
	F        domain.FollowUp
} {
	mock.lockUpdateFollowUp.RLock()
	calls := mock.calls.UpdateFollowUp
	mock.lockUpdateFollowUp.RUnlock()
	return calls
}

func (mock *firstTimerRepoMock) List(ctx context.Context, f domain.FirstTimerFilter) ([]*domain.FirstTimer, error) {
	if mock.ListFunc == nil {
		panic("firstTimerRepoMock.ListFunc: method is nil but firstTimerRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.FirstTimerFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *firstTimerRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.FirstTimerFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

package church

import (
	"context"
	"sync"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/google/uuid"
)

var _ churchRepo = &churchRepoMock{}

type churchRepoMock struct {
	CreateFunc  func(ctx context.Context, c *domain.Church) (*domain.Church, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Church, error)
	ListFunc    func(ctx context.Context) ([]*domain.Church, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			C   *domain.Church
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *churchRepoMock) Create(ctx context.Context, c *domain.Church) (*domain.Church, error) {
	if mock.CreateFunc == nil {
		panic("churchRepoMock.CreateFunc: method is nil but churchRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   *domain.Church
	}{Ctx: ctx, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, c)
}

func (mock *churchRepoMock) CreateCalls() []struct {
	Ctx context.Context
	C   *domain.Church
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *churchRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Church, error) {
	if mock.GetByIDFunc == nil {
		panic("churchRepoMock.GetByIDFunc: method is nil but churchRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *churchRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *churchRepoMock) List(ctx context.Context) ([]*domain.Church, error) {
	if mock.ListFunc == nil {
		panic("churchRepoMock.ListFunc: method is nil but churchRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *churchRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

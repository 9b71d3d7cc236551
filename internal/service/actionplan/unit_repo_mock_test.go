package actionplan

import (
	"context"
	"sync"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/google/uuid"
)

var _ unitRepo = &unitRepoMock{}

type unitRepoMock struct {
	GetByIDFunc func(ctx context.Context, churchID uuid.UUID, id uuid.UUID) (*domain.Unit, error)

	calls struct {
		GetByID []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
			ID       uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *unitRepoMock) GetByID(ctx context.Context, churchID uuid.UUID, id uuid.UUID) (*domain.Unit, error) {
	if mock.GetByIDFunc == nil {
		panic("unitRepoMock.GetByIDFunc: method is nil but unitRepo.GetByID was just called")
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

func (mock *unitRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	ID       uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

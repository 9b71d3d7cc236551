package actionplan

import (
	"context"
	"sync"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/google/uuid"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, churchID uuid.UUID, id uuid.UUID) (*domain.User, error)

	calls struct {
		GetByID []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
			ID       uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *userRepoMock) GetByID(ctx context.Context, churchID uuid.UUID, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
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

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	ID       uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

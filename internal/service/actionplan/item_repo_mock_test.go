package actionplan

import (
	"context"
	"sync"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/google/uuid"
)

var _ itemRepo = &itemRepoMock{}

type itemRepoMock struct {
	CreateFunc  func(ctx context.Context, item *domain.ActionItem) (*domain.ActionItem, error)
	GetByIDFunc func(ctx context.Context, churchID uuid.UUID, id uuid.UUID) (*domain.ActionItem, error)
	UpdateFunc  func(ctx context.Context, churchID uuid.UUID, id uuid.UUID, changes domain.ActionItemChanges) (*domain.ActionItem, error)
	ListFunc    func(ctx context.Context, churchID uuid.UUID, unitID uuid.UUID) ([]*domain.ActionItem, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Item *domain.ActionItem
		}
		GetByID []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
			ID       uuid.UUID
		}
		Update []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
			ID       uuid.UUID
			Changes  domain.ActionItemChanges
		}
		List []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
			UnitID   uuid.UUID
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockUpdate  sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *itemRepoMock) Create(ctx context.Context, item *domain.ActionItem) (*domain.ActionItem, error) {
	if mock.CreateFunc == nil {
		panic("itemRepoMock.CreateFunc: method is nil but itemRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.ActionItem
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *itemRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item *domain.ActionItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *itemRepoMock) GetByID(ctx context.Context, churchID uuid.UUID, id uuid.UUID) (*domain.ActionItem, error) {
	if mock.GetByIDFunc == nil {
		panic("itemRepoMock.GetByIDFunc: method is nil but itemRepo.GetByID was just called")
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

func (mock *itemRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	ID       uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *itemRepoMock) Update(ctx context.Context, churchID uuid.UUID, id uuid.UUID, changes domain.ActionItemChanges) (*domain.ActionItem, error) {
	if mock.UpdateFunc == nil {
		panic("itemRepoMock.UpdateFunc: method is nil but itemRepo.Update was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
		ID       uuid.UUID
		Changes  domain.ActionItemChanges
	}{Ctx: ctx, ChurchID: churchID, ID: id, Changes: changes}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, churchID, id, changes)
}

func (mock *itemRepoMock) UpdateCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	ID       uuid.UUID
	Changes  domain.ActionItemChanges
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *itemRepoMock) List(ctx context.Context, churchID uuid.UUID, unitID uuid.UUID) ([]*domain.ActionItem, error) {
	if mock.ListFunc == nil {
		panic("itemRepoMock.ListFunc: method is nil but itemRepo.List was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
		UnitID   uuid.UUID
	}{Ctx: ctx, ChurchID: churchID, UnitID: unitID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, churchID, unitID)
}

func (mock *itemRepoMock) ListCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	UnitID   uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

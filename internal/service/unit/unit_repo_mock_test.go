package unit

import (
	"context"
	"sync"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/google/uuid"
)

var _ unitRepo = &unitRepoMock{}

type unitRepoMock struct {
	CreateFunc   func(ctx context.Context, u *domain.Unit) (*domain.Unit, error)
	GetByIDFunc  func(ctx context.Context, churchID uuid.UUID, id uuid.UUID) (*domain.Unit, error)
	LockByIDFunc func(ctx context.Context, churchID uuid.UUID, id uuid.UUID) (*domain.Unit, error)
	UpdateFunc   func(ctx context.Context, churchID uuid.UUID, id uuid.UUID, name string, headID *uuid.UUID) (*domain.Unit, error)
	DeleteFunc   func(ctx context.Context, churchID uuid.UUID, id uuid.UUID) error
	ListFunc     func(ctx context.Context, churchID uuid.UUID) ([]*domain.Unit, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			U   *domain.Unit
		}
		GetByID []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
			ID       uuid.UUID
		}
		LockByID []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
			ID       uuid.UUID
		}
		Update []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
			ID       uuid.UUID
			Name     string
			HeadID   *uuid.UUID
		}
		Delete []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
			ID       uuid.UUID
		}
		List []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
		}
	}
	lockCreate   sync.RWMutex
	lockGetByID  sync.RWMutex
	lockLockByID sync.RWMutex
	lockUpdate   sync.RWMutex
	lockDelete   sync.RWMutex
	lockList     sync.RWMutex
}

func (mock *unitRepoMock) Create(ctx context.Context, u *domain.Unit) (*domain.Unit, error) {
	if mock.CreateFunc == nil {
		panic("unitRepoMock.CreateFunc: method is nil but unitRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.Unit
	}{Ctx: ctx, U: u}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, u)
}

func (mock *unitRepoMock) CreateCalls() []struct {
	Ctx context.Context
	U   *domain.Unit
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
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

func (mock *unitRepoMock) LockByID(ctx context.Context, churchID uuid.UUID, id uuid.UUID) (*domain.Unit, error) {
	if mock.LockByIDFunc == nil {
		panic("unitRepoMock.LockByIDFunc: method is nil but unitRepo.LockByID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
		ID       uuid.UUID
	}{Ctx: ctx, ChurchID: churchID, ID: id}
	mock.lockLockByID.Lock()
	mock.calls.LockByID = append(mock.calls.LockByID, callInfo)
	mock.lockLockByID.Unlock()
	return mock.LockByIDFunc(ctx, churchID, id)
}

func (mock *unitRepoMock) LockByIDCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	ID       uuid.UUID
} {
	mock.lockLockByID.RLock()
	calls := mock.calls.LockByID
	mock.lockLockByID.RUnlock()
	return calls
}

func (mock *unitRepoMock) Update(ctx context.Context, churchID uuid.UUID, id uuid.UUID, name string, headID *uuid.UUID) (*domain.Unit, error) {
	if mock.UpdateFunc == nil {
		panic("unitRepoMock.UpdateFunc: method is nil but unitRepo.Update was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
		ID       uuid.UUID
		Name     string
		HeadID   *uuid.UUID
	}{Ctx: ctx, ChurchID: churchID, ID: id, Name: name, HeadID: headID}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, churchID, id, name, headID)
}

func (mock *unitRepoMock) UpdateCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	ID       uuid.UUID
	Name     string
	HeadID   *uuid.UUID
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *unitRepoMock) Delete(ctx context.Context, churchID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("unitRepoMock.DeleteFunc: method is nil but unitRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
		ID       uuid.UUID
	}{Ctx: ctx, ChurchID: churchID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, churchID, id)
}

func (mock *unitRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	ID       uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *unitRepoMock) List(ctx context.Context, churchID uuid.UUID) ([]*domain.Unit, error) {
	if mock.ListFunc == nil {
		panic("unitRepoMock.ListFunc: method is nil but unitRepo.List was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
	}{Ctx: ctx, ChurchID: churchID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, churchID)
}

func (mock *unitRepoMock) ListCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

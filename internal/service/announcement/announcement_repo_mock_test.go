package announcement

import (
	"context"
	"sync"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/google/uuid"
)

var _ announcementRepo = &announcementRepoMock{}

type announcementRepoMock struct {
	CreateFunc  func(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error)
	GetByIDFunc func(ctx context.Context, churchID uuid.UUID, id uuid.UUID) (*domain.Announcement, error)
	UpdateFunc  func(ctx context.Context, churchID uuid.UUID, id uuid.UUID, title string, content string) (*domain.Announcement, error)
	DeleteFunc  func(ctx context.Context, churchID uuid.UUID, id uuid.UUID) error
	ListFunc    func(ctx context.Context, churchID uuid.UUID) ([]*domain.Announcement, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   *domain.Announcement
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
			Title    string
			Content  string
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
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *announcementRepoMock) Create(ctx context.Context, a *domain.Announcement) (*domain.Announcement, error) {
	if mock.CreateFunc == nil {
		panic("announcementRepoMock.CreateFunc: method is nil but announcementRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   *domain.Announcement
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *announcementRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   *domain.Announcement
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *announcementRepoMock) GetByID(ctx context.Context, churchID uuid.UUID, id uuid.UUID) (*domain.Announcement, error) {
	if mock.GetByIDFunc == nil {
		panic("announcementRepoMock.GetByIDFunc: method is nil but announcementRepo.GetByID was just called")
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

func (mock *announcementRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	ID       uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *announcementRepoMock) Update(ctx context.Context, churchID uuid.UUID, id uuid.UUID, title string, content string) (*domain.Announcement, error) {
	if mock.UpdateFunc == nil {
		panic("announcementRepoMock.UpdateFunc: method is nil but announcementRepo.Update was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
		ID       uuid.UUID
		Title    string
		Content  string
	}{Ctx: ctx, ChurchID: churchID, ID: id, Title: title, Content: content}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, churchID, id, title, content)
}

func (mock *announcementRepoMock) UpdateCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	ID       uuid.UUID
	Title    string
	Content  string
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *announcementRepoMock) Delete(ctx context.Context, churchID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("announcementRepoMock.DeleteFunc: method is nil but announcementRepo.Delete was just called")
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

func (mock *announcementRepoMock) DeleteCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	ID       uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *announcementRepoMock) List(ctx context.Context, churchID uuid.UUID) ([]*domain.Announcement, error) {
	if mock.ListFunc == nil {
		panic("announcementRepoMock.ListFunc: method is nil but announcementRepo.List was just called")
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

func (mock *announcementRepoMock) ListCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

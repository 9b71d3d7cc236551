package auth

import (
	"context"
	"sync"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/google/uuid"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByEmailFunc func(ctx context.Context, churchID uuid.UUID, email string) (*domain.User, error)

	calls struct {
		GetByEmail []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
			Email    string
		}
	}
	lockGetByEmail sync.RWMutex
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, churchID uuid.UUID, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
		Email    string
	}{Ctx: ctx, ChurchID: churchID, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, churchID, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
	Email    string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

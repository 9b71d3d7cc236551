package overview

import (
	"context"
	"sync"

	"github.com/Joseph-Edoh/Church-connect/internal/domain"
	"github.com/google/uuid"
)

var _ userCounter = &userCounterMock{}

type userCounterMock struct {
	CountByRoleFunc func(ctx context.Context, churchID uuid.UUID) (map[domain.UserRole]int, error)

	calls struct {
		CountByRole []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
		}
	}
	lockCountByRole sync.RWMutex
}

func (mock *userCounterMock) CountByRole(ctx context.Context, churchID uuid.UUID) (map[domain.UserRole]int, error) {
	if mock.CountByRoleFunc == nil {
		panic("userCounterMock.CountByRoleFunc: method is nil but userCounter.CountByRole was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
	}{Ctx: ctx, ChurchID: churchID}
	mock.lockCountByRole.Lock()
	mock.calls.CountByRole = append(mock.calls.CountByRole, callInfo)
	mock.lockCountByRole.Unlock()
	return mock.CountByRoleFunc(ctx, churchID)
}

func (mock *userCounterMock) CountByRoleCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
} {
	mock.lockCountByRole.RLock()
	calls := mock.calls.CountByRole
	mock.lockCountByRole.RUnlock()
	return calls
}

package overview

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ unitCounter = &unitCounterMock{}

type unitCounterMock struct {
	CountFunc func(ctx context.Context, churchID uuid.UUID) (int, error)

	calls struct {
		Count []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
		}
	}
	lockCount sync.RWMutex
}

func (mock *unitCounterMock) Count(ctx context.Context, churchID uuid.UUID) (int, error) {
	if mock.CountFunc == nil {
		panic("unitCounterMock.CountFunc: method is nil but unitCounter.Count was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
	}{Ctx: ctx, ChurchID: churchID}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, churchID)
}

func (mock *unitCounterMock) CountCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

package overview

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ reportCounter = &reportCounterMock{}

type reportCounterMock struct {
	CountUnrepliedFunc func(ctx context.Context, churchID uuid.UUID) (int, error)

	calls struct {
		CountUnreplied []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
		}
	}
	lockCountUnreplied sync.RWMutex
}

func (mock *reportCounterMock) CountUnreplied(ctx context.Context, churchID uuid.UUID) (int, error) {
	if mock.CountUnrepliedFunc == nil {
		panic("reportCounterMock.CountUnrepliedFunc: method is nil but reportCounter.CountUnreplied was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
	}{Ctx: ctx, ChurchID: churchID}
	mock.lockCountUnreplied.Lock()
	mock.calls.CountUnreplied = append(mock.calls.CountUnreplied, callInfo)
	mock.lockCountUnreplied.Unlock()
	return mock.CountUnrepliedFunc(ctx, churchID)
}

func (mock *reportCounterMock) CountUnrepliedCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
} {
	mock.lockCountUnreplied.RLock()
	calls := mock.calls.CountUnreplied
	mock.lockCountUnreplied.RUnlock()
	return calls
}

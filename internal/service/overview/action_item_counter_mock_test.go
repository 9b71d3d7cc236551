package overview

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ actionItemCounter = &actionItemCounterMock{}

type actionItemCounterMock struct {
	CountOpenFunc func(ctx context.Context, churchID uuid.UUID) (int, error)

	calls struct {
		CountOpen []struct {
			Ctx      context.Context
			ChurchID uuid.UUID
		}
	}
	lockCountOpen sync.RWMutex
}

func (mock *actionItemCounterMock) CountOpen(ctx context.Context, churchID uuid.UUID) (int, error) {
	if mock.CountOpenFunc == nil {
		panic("actionItemCounterMock.CountOpenFunc: method is nil but actionItemCounter.CountOpen was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ChurchID uuid.UUID
	}{Ctx: ctx, ChurchID: churchID}
	mock.lockCountOpen.Lock()
	mock.calls.CountOpen = append(mock.calls.CountOpen, callInfo)
	mock.lockCountOpen.Unlock()
	return mock.CountOpenFunc(ctx, churchID)
}

func (mock *actionItemCounterMock) CountOpenCalls() []struct {
	Ctx      context.Context
	ChurchID uuid.UUID
} {
	mock.lockCountOpen.RLock()
	calls := mock.calls.CountOpen
	mock.lockCountOpen.RUnlock()
	return calls
}

package rest

import (
	"context"
	"sync"
)

var _ streakService = &streakServiceMock{}

type streakServiceMock struct {
	GetFunc func(ctx context.Context) (int, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
	}
	lockGet sync.RWMutex
}

func (mock *streakServiceMock) Get(ctx context.Context) (int, error) {
	if mock.GetFunc == nil {
		panic("streakServiceMock.GetFunc: method is nil but streakService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *streakServiceMock) GetCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

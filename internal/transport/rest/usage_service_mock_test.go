package rest

import (
	"context"
	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"sync"
)

var _ usageService = &usageServiceMock{}

type usageServiceMock struct {
	CurrentFunc func(ctx context.Context) (domain.UsageInfo, error)

	calls struct {
		Current []struct {
			Ctx context.Context
		}
	}
	lockCurrent sync.RWMutex
}

func (mock *usageServiceMock) Current(ctx context.Context) (domain.UsageInfo, error) {
	if mock.CurrentFunc == nil {
		panic("usageServiceMock.CurrentFunc: method is nil but usageService.Current was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCurrent.Lock()
	mock.calls.Current = append(mock.calls.Current, callInfo)
	mock.lockCurrent.Unlock()
	return mock.CurrentFunc(ctx)
}

func (mock *usageServiceMock) CurrentCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCurrent.RLock()
	calls = mock.calls.Current
	mock.lockCurrent.RUnlock()
	return calls
}

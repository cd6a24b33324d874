package processing

import (
	"context"
	"sync"
)

var _ analyzer = &analyzerMock{}

type analyzerMock struct {
	CompleteFunc func(ctx context.Context, systemPrompt string, userPrompt string) (string, error)

	calls struct {
		Complete []struct {
			Ctx          context.Context
			SystemPrompt string
			UserPrompt   string
		}
	}
	lockComplete sync.RWMutex
}

func (mock *analyzerMock) Complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	if mock.CompleteFunc == nil {
		panic("analyzerMock.CompleteFunc: method is nil but analyzer.Complete was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		SystemPrompt string
		UserPrompt   string
	}{
		Ctx:          ctx,
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
	}
	mock.lockComplete.Lock()
	mock.calls.Complete = append(mock.calls.Complete, callInfo)
	mock.lockComplete.Unlock()
	return mock.CompleteFunc(ctx, systemPrompt, userPrompt)
}

func (mock *analyzerMock) CompleteCalls() []struct {
	Ctx          context.Context
	SystemPrompt string
	UserPrompt   string
} {
	var calls []struct {
		Ctx          context.Context
		SystemPrompt string
		UserPrompt   string
	}
	mock.lockComplete.RLock()
	calls = mock.calls.Complete
	mock.lockComplete.RUnlock()
	return calls
}

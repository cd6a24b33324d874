package rest

import (
	"context"
	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"sync"
)

var _ statsService = &statsServiceMock{}

type statsServiceMock struct {
	GetStatsFunc func(ctx context.Context, period string) (domain.EmotionStats, error)

	calls struct {
		GetStats []struct {
			Ctx    context.Context
			Period string
		}
	}
	lockGetStats sync.RWMutex
}

func (mock *statsServiceMock) GetStats(ctx context.Context, period string) (domain.EmotionStats, error) {
	if mock.GetStatsFunc == nil {
		panic("statsServiceMock.GetStatsFunc: method is nil but statsService.GetStats was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Period string
	}{
		Ctx:    ctx,
		Period: period,
	}
	mock.lockGetStats.Lock()
	mock.calls.GetStats = append(mock.calls.GetStats, callInfo)
	mock.lockGetStats.Unlock()
	return mock.GetStatsFunc(ctx, period)
}

func (mock *statsServiceMock) GetStatsCalls() []struct {
	Ctx    context.Context
	Period string
} {
	var calls []struct {
		Ctx    context.Context
		Period string
	}
	mock.lockGetStats.RLock()
	calls = mock.calls.GetStats
	mock.lockGetStats.RUnlock()
	return calls
}

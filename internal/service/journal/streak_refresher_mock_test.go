package journal

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ streakRefresher = &streakRefresherMock{}

type streakRefresherMock struct {
	RefreshFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		Refresh []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockRefresh sync.RWMutex
}

func (mock *streakRefresherMock) Refresh(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.RefreshFunc == nil {
		panic("streakRefresherMock.RefreshFunc: method is nil but streakRefresher.Refresh was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx, userID)
}

func (mock *streakRefresherMock) RefreshCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockRefresh.RLock()
	calls = mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}

package streak

import (
	"context"
	"github.com/google/uuid"
	"sync"
	"time"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	ListCreatedAtFunc func(ctx context.Context, userID uuid.UUID) ([]time.Time, error)

	calls struct {
		ListCreatedAt []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockListCreatedAt sync.RWMutex
}

func (mock *entryRepoMock) ListCreatedAt(ctx context.Context, userID uuid.UUID) ([]time.Time, error) {
	if mock.ListCreatedAtFunc == nil {
		panic("entryRepoMock.ListCreatedAtFunc: method is nil but entryRepo.ListCreatedAt was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockListCreatedAt.Lock()
	mock.calls.ListCreatedAt = append(mock.calls.ListCreatedAt, callInfo)
	mock.lockListCreatedAt.Unlock()
	return mock.ListCreatedAtFunc(ctx, userID)
}

func (mock *entryRepoMock) ListCreatedAtCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockListCreatedAt.RLock()
	calls = mock.calls.ListCreatedAt
	mock.lockListCreatedAt.RUnlock()
	return calls
}

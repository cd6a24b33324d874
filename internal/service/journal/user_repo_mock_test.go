package journal

import (
	"context"
	"github.com/google/uuid"
	"sync"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	EnsureFunc func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Ensure []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockEnsure sync.RWMutex
}

func (mock *userRepoMock) Ensure(ctx context.Context, id uuid.UUID) error {
	if mock.EnsureFunc == nil {
		panic("userRepoMock.EnsureFunc: method is nil but userRepo.Ensure was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockEnsure.Lock()
	mock.calls.Ensure = append(mock.calls.Ensure, callInfo)
	mock.lockEnsure.Unlock()
	return mock.EnsureFunc(ctx, id)
}

func (mock *userRepoMock) EnsureCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockEnsure.RLock()
	calls = mock.calls.Ensure
	mock.lockEnsure.RUnlock()
	return calls
}

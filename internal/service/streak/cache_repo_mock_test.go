package streak

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"sync"
)

var _ cacheRepo = &cacheRepoMock{}

type cacheRepoMock struct {
	GetStreakCacheFunc    func(ctx context.Context, id uuid.UUID) (domain.StreakCache, error)
	ListStaleStreaksFunc  func(ctx context.Context, cutoff domain.Date, afterID uuid.UUID, limit int) ([]uuid.UUID, error)
	LockFunc              func(ctx context.Context, id uuid.UUID) error
	UpdateStreakCacheFunc func(ctx context.Context, id uuid.UUID, cache domain.StreakCache) error

	calls struct {
		GetStreakCache []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListStaleStreaks []struct {
			Ctx     context.Context
			Cutoff  domain.Date
			AfterID uuid.UUID
			Limit   int
		}
		Lock []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpdateStreakCache []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Cache domain.StreakCache
		}
	}
	lockGetStreakCache    sync.RWMutex
	lockListStaleStreaks  sync.RWMutex
	lockLock              sync.RWMutex
	lockUpdateStreakCache sync.RWMutex
}

func (mock *cacheRepoMock) GetStreakCache(ctx context.Context, id uuid.UUID) (domain.StreakCache, error) {
	if mock.GetStreakCacheFunc == nil {
		panic("cacheRepoMock.GetStreakCacheFunc: method is nil but cacheRepo.GetStreakCache was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetStreakCache.Lock()
	mock.calls.GetStreakCache = append(mock.calls.GetStreakCache, callInfo)
	mock.lockGetStreakCache.Unlock()
	return mock.GetStreakCacheFunc(ctx, id)
}

func (mock *cacheRepoMock) GetStreakCacheCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetStreakCache.RLock()
	calls = mock.calls.GetStreakCache
	mock.lockGetStreakCache.RUnlock()
	return calls
}

func (mock *cacheRepoMock) ListStaleStreaks(ctx context.Context, cutoff domain.Date, afterID uuid.UUID, limit int) ([]uuid.UUID, error) {
	if mock.ListStaleStreaksFunc == nil {
		panic("cacheRepoMock.ListStaleStreaksFunc: method is nil but cacheRepo.ListStaleStreaks was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Cutoff  domain.Date
		AfterID uuid.UUID
		Limit   int
	}{
		Ctx:     ctx,
		Cutoff:  cutoff,
		AfterID: afterID,
		Limit:   limit,
	}
	mock.lockListStaleStreaks.Lock()
	mock.calls.ListStaleStreaks = append(mock.calls.ListStaleStreaks, callInfo)
	mock.lockListStaleStreaks.Unlock()
	return mock.ListStaleStreaksFunc(ctx, cutoff, afterID, limit)
}

func (mock *cacheRepoMock) ListStaleStreaksCalls() []struct {
	Ctx     context.Context
	Cutoff  domain.Date
	AfterID uuid.UUID
	Limit   int
} {
	var calls []struct {
		Ctx     context.Context
		Cutoff  domain.Date
		AfterID uuid.UUID
		Limit   int
	}
	mock.lockListStaleStreaks.RLock()
	calls = mock.calls.ListStaleStreaks
	mock.lockListStaleStreaks.RUnlock()
	return calls
}

func (mock *cacheRepoMock) Lock(ctx context.Context, id uuid.UUID) error {
	if mock.LockFunc == nil {
		panic("cacheRepoMock.LockFunc: method is nil but cacheRepo.Lock was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockLock.Lock()
	mock.calls.Lock = append(mock.calls.Lock, callInfo)
	mock.lockLock.Unlock()
	return mock.LockFunc(ctx, id)
}

func (mock *cacheRepoMock) LockCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockLock.RLock()
	calls = mock.calls.Lock
	mock.lockLock.RUnlock()
	return calls
}

func (mock *cacheRepoMock) UpdateStreakCache(ctx context.Context, id uuid.UUID, cache domain.StreakCache) error {
	if mock.UpdateStreakCacheFunc == nil {
		panic("cacheRepoMock.UpdateStreakCacheFunc: method is nil but cacheRepo.UpdateStreakCache was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Cache domain.StreakCache
	}{
		Ctx:   ctx,
		ID:    id,
		Cache: cache,
	}
	mock.lockUpdateStreakCache.Lock()
	mock.calls.UpdateStreakCache = append(mock.calls.UpdateStreakCache, callInfo)
	mock.lockUpdateStreakCache.Unlock()
	return mock.UpdateStreakCacheFunc(ctx, id, cache)
}

func (mock *cacheRepoMock) UpdateStreakCacheCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Cache domain.StreakCache
} {
	var calls []struct {
		Ctx   context.Context
		ID    uuid.UUID
		Cache domain.StreakCache
	}
	mock.lockUpdateStreakCache.RLock()
	calls = mock.calls.UpdateStreakCache
	mock.lockUpdateStreakCache.RUnlock()
	return calls
}

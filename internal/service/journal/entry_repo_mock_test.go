package journal

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"sync"
	"time"
)

var _ entryRepo = &entryRepoMock{}

type entryRepoMock struct {
	CreateFunc           func(ctx context.Context, e *domain.JournalEntry) (*domain.JournalEntry, error)
	DeleteFunc           func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) error
	GetByIDFunc          func(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.JournalEntry, error)
	GetLatestInRangeFunc func(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) (*domain.JournalEntry, error)
	ListFunc             func(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*domain.JournalEntry, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			E   *domain.JournalEntry
		}
		Delete []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
		GetByID []struct {
			Ctx     context.Context
			UserID  uuid.UUID
			EntryID uuid.UUID
		}
		GetLatestInRange []struct {
			Ctx    context.Context
			UserID uuid.UUID
			From   time.Time
			To     time.Time
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
			Offset int
		}
	}
	lockCreate           sync.RWMutex
	lockDelete           sync.RWMutex
	lockGetByID          sync.RWMutex
	lockGetLatestInRange sync.RWMutex
	lockList             sync.RWMutex
}

func (mock *entryRepoMock) Create(ctx context.Context, e *domain.JournalEntry) (*domain.JournalEntry, error) {
	if mock.CreateFunc == nil {
		panic("entryRepoMock.CreateFunc: method is nil but entryRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   *domain.JournalEntry
	}{
		Ctx: ctx,
		E:   e,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, e)
}

func (mock *entryRepoMock) CreateCalls() []struct {
	Ctx context.Context
	E   *domain.JournalEntry
} {
	var calls []struct {
		Ctx context.Context
		E   *domain.JournalEntry
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *entryRepoMock) Delete(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but entryRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		EntryID: entryID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, entryID)
}

func (mock *entryRepoMock) DeleteCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetByID(ctx context.Context, userID uuid.UUID, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if mock.GetByIDFunc == nil {
		panic("entryRepoMock.GetByIDFunc: method is nil but entryRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}{
		Ctx:     ctx,
		UserID:  userID,
		EntryID: entryID,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, entryID)
}

func (mock *entryRepoMock) GetByIDCalls() []struct {
	Ctx     context.Context
	UserID  uuid.UUID
	EntryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		UserID  uuid.UUID
		EntryID uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *entryRepoMock) GetLatestInRange(ctx context.Context, userID uuid.UUID, from time.Time, to time.Time) (*domain.JournalEntry, error) {
	if mock.GetLatestInRangeFunc == nil {
		panic("entryRepoMock.GetLatestInRangeFunc: method is nil but entryRepo.GetLatestInRange was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}{
		Ctx:    ctx,
		UserID: userID,
		From:   from,
		To:     to,
	}
	mock.lockGetLatestInRange.Lock()
	mock.calls.GetLatestInRange = append(mock.calls.GetLatestInRange, callInfo)
	mock.lockGetLatestInRange.Unlock()
	return mock.GetLatestInRangeFunc(ctx, userID, from, to)
}

func (mock *entryRepoMock) GetLatestInRangeCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	From   time.Time
	To     time.Time
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		From   time.Time
		To     time.Time
	}
	mock.lockGetLatestInRange.RLock()
	calls = mock.calls.GetLatestInRange
	mock.lockGetLatestInRange.RUnlock()
	return calls
}

func (mock *entryRepoMock) List(ctx context.Context, userID uuid.UUID, limit int, offset int) ([]*domain.JournalEntry, error) {
	if mock.ListFunc == nil {
		panic("entryRepoMock.ListFunc: method is nil but entryRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		UserID: userID,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, limit, offset)
}

func (mock *entryRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
	Offset int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
		Offset int
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

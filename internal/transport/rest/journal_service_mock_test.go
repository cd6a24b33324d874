package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"github.com/heartmarshall/voicejournal-backend/internal/service/journal"
	"sync"
)

var _ journalService = &journalServiceMock{}

type journalServiceMock struct {
	CreateFunc      func(ctx context.Context, input journal.CreateInput) (*domain.JournalEntry, error)
	DeleteFunc      func(ctx context.Context, entryID uuid.UUID) error
	GetFunc         func(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error)
	ListFunc        func(ctx context.Context, input journal.ListInput) ([]*domain.JournalEntry, error)
	TimeCapsuleFunc func(ctx context.Context) (*domain.JournalEntry, domain.Date, error)

	calls struct {
		Create []struct {
			Ctx   context.Context
			Input journal.CreateInput
		}
		Delete []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		Get []struct {
			Ctx     context.Context
			EntryID uuid.UUID
		}
		List []struct {
			Ctx   context.Context
			Input journal.ListInput
		}
		TimeCapsule []struct {
			Ctx context.Context
		}
	}
	lockCreate      sync.RWMutex
	lockDelete      sync.RWMutex
	lockGet         sync.RWMutex
	lockList        sync.RWMutex
	lockTimeCapsule sync.RWMutex
}

func (mock *journalServiceMock) Create(ctx context.Context, input journal.CreateInput) (*domain.JournalEntry, error) {
	if mock.CreateFunc == nil {
		panic("journalServiceMock.CreateFunc: method is nil but journalService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.CreateInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *journalServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input journal.CreateInput
} {
	var calls []struct {
		Ctx   context.Context
		Input journal.CreateInput
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *journalServiceMock) Delete(ctx context.Context, entryID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("journalServiceMock.DeleteFunc: method is nil but journalService.Delete was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{
		Ctx:     ctx,
		EntryID: entryID,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, entryID)
}

func (mock *journalServiceMock) DeleteCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *journalServiceMock) Get(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error) {
	if mock.GetFunc == nil {
		panic("journalServiceMock.GetFunc: method is nil but journalService.Get was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}{
		Ctx:     ctx,
		EntryID: entryID,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, entryID)
}

func (mock *journalServiceMock) GetCalls() []struct {
	Ctx     context.Context
	EntryID uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		EntryID uuid.UUID
	}
	mock.lockGet.RLock()
	calls = mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *journalServiceMock) List(ctx context.Context, input journal.ListInput) ([]*domain.JournalEntry, error) {
	if mock.ListFunc == nil {
		panic("journalServiceMock.ListFunc: method is nil but journalService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input journal.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *journalServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input journal.ListInput
} {
	var calls []struct {
		Ctx   context.Context
		Input journal.ListInput
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *journalServiceMock) TimeCapsule(ctx context.Context) (*domain.JournalEntry, domain.Date, error) {
	if mock.TimeCapsuleFunc == nil {
		panic("journalServiceMock.TimeCapsuleFunc: method is nil but journalService.TimeCapsule was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockTimeCapsule.Lock()
	mock.calls.TimeCapsule = append(mock.calls.TimeCapsule, callInfo)
	mock.lockTimeCapsule.Unlock()
	return mock.TimeCapsuleFunc(ctx)
}

func (mock *journalServiceMock) TimeCapsuleCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockTimeCapsule.RLock()
	calls = mock.calls.TimeCapsule
	mock.lockTimeCapsule.RUnlock()
	return calls
}

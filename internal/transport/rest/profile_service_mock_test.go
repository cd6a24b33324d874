package rest

import (
	"context"
	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"github.com/heartmarshall/voicejournal-backend/internal/service/profile"
	"sync"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	GetFunc    func(ctx context.Context) (*domain.Profile, error)
	UpsertFunc func(ctx context.Context, input profile.UpsertInput) (*domain.Profile, error)

	calls struct {
		Get []struct {
			Ctx context.Context
		}
		Upsert []struct {
			Ctx   context.Context
			Input profile.UpsertInput
		}
	}
	lockGet    sync.RWMutex
	lockUpsert sync.RWMutex
}

func (mock *profileServiceMock) Get(ctx context.Context) (*domain.Profile, error) {
	if mock.GetFunc == nil {
		panic("profileServiceMock.GetFunc: method is nil but profileService.Get was just called")
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

func (mock *profileServiceMock) GetCalls() []struct {
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

func (mock *profileServiceMock) Upsert(ctx context.Context, input profile.UpsertInput) (*domain.Profile, error) {
	if mock.UpsertFunc == nil {
		panic("profileServiceMock.UpsertFunc: method is nil but profileService.Upsert was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input profile.UpsertInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, input)
}

func (mock *profileServiceMock) UpsertCalls() []struct {
	Ctx   context.Context
	Input profile.UpsertInput
} {
	var calls []struct {
		Ctx   context.Context
		Input profile.UpsertInput
	}
	mock.lockUpsert.RLock()
	calls = mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

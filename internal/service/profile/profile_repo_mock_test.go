package profile

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"sync"
)

var _ profileRepo = &profileRepoMock{}

type profileRepoMock struct {
	GetProfileFunc    func(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	UpsertProfileFunc func(ctx context.Context, id uuid.UUID, nickname string, notificationTime *string) (*domain.Profile, error)

	calls struct {
		GetProfile []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		UpsertProfile []struct {
			Ctx              context.Context
			ID               uuid.UUID
			Nickname         string
			NotificationTime *string
		}
	}
	lockGetProfile    sync.RWMutex
	lockUpsertProfile sync.RWMutex
}

func (mock *profileRepoMock) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	if mock.GetProfileFunc == nil {
		panic("profileRepoMock.GetProfileFunc: method is nil but profileRepo.GetProfile was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{
		Ctx: ctx,
		ID:  id,
	}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx, id)
}

func (mock *profileRepoMock) GetProfileCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		ID  uuid.UUID
	}
	mock.lockGetProfile.RLock()
	calls = mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *profileRepoMock) UpsertProfile(ctx context.Context, id uuid.UUID, nickname string, notificationTime *string) (*domain.Profile, error) {
	if mock.UpsertProfileFunc == nil {
		panic("profileRepoMock.UpsertProfileFunc: method is nil but profileRepo.UpsertProfile was just called")
	}
	callInfo := struct {
		Ctx              context.Context
		ID               uuid.UUID
		Nickname         string
		NotificationTime *string
	}{
		Ctx:              ctx,
		ID:               id,
		Nickname:         nickname,
		NotificationTime: notificationTime,
	}
	mock.lockUpsertProfile.Lock()
	mock.calls.UpsertProfile = append(mock.calls.UpsertProfile, callInfo)
	mock.lockUpsertProfile.Unlock()
	return mock.UpsertProfileFunc(ctx, id, nickname, notificationTime)
}

func (mock *profileRepoMock) UpsertProfileCalls() []struct {
	Ctx              context.Context
	ID               uuid.UUID
	Nickname         string
	NotificationTime *string
} {
	var calls []struct {
		Ctx              context.Context
		ID               uuid.UUID
		Nickname         string
		NotificationTime *string
	}
	mock.lockUpsertProfile.RLock()
	calls = mock.calls.UpsertProfile
	mock.lockUpsertProfile.RUnlock()
	return calls
}

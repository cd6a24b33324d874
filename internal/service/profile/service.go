// Package profile implements the user profile used for onboarding and reminders.
package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"github.com/heartmarshall/voicejournal-backend/pkg/ctxutil"
)

// profileRepo defines the user repository interface needed by the profile service.
type profileRepo interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	UpsertProfile(ctx context.Context, id uuid.UUID, nickname string, notificationTime *string) (*domain.Profile, error)
}

// Service implements profile operations.
type Service struct {
	log   *slog.Logger
	users profileRepo
}

// NewService creates a new profile service instance.
func NewService(logger *slog.Logger, users profileRepo) *Service {
	return &Service{
		log:   logger.With("service", "profile"),
		users: users,
	}
}

// Get returns the profile of the user in ctx. A user that has not finished
// onboarding yields domain.ErrNotFound.
func (s *Service) Get(ctx context.Context) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.users.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("profile.Get: %w", err)
	}

	return p, nil
}

// Upsert creates or replaces the profile of the user in ctx.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (*domain.Profile, error) {
	input = input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.users.UpsertProfile(ctx, userID, input.Nickname, input.NotificationTime)
	if err != nil {
		return nil, fmt.Errorf("profile.Upsert: %w", err)
	}

	s.log.InfoContext(ctx, "profile saved",
		slog.String("user_id", userID.String()),
		slog.Bool("reminder", p.NotificationTime != nil),
	)

	return p, nil
}

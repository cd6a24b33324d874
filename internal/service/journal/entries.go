package journal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"github.com/heartmarshall/voicejournal-backend/pkg/ctxutil"
)

// Create persists a processed entry for the user in ctx and refreshes the
// streak cache. Quota is not consumed here.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.JournalEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry := input.toEntry(userID)
	entry.CreatedAt = s.now().UTC()

	var created *domain.JournalEntry
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.users.Ensure(ctx, userID); err != nil {
			return fmt.Errorf("ensure user: %w", err)
		}

		var err error
		created, err = s.entries.Create(ctx, entry)
		if err != nil {
			return fmt.Errorf("create entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("journal.Create: %w", err)
	}

	s.refreshStreak(ctx, userID)

	s.log.InfoContext(ctx, "journal entry created",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", created.ID.String()),
		slog.String("emotion", created.Emotion.String()),
	)

	return created, nil
}

// Get returns an entry of the user in ctx.
func (s *Service) Get(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.entries.GetByID(ctx, userID, entryID)
	if err != nil {
		return nil, fmt.Errorf("journal.Get: %w", err)
	}

	return entry, nil
}

// List returns entries of the user in ctx, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]*domain.JournalEntry, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.entries.List(ctx, userID, input.limit(), input.Offset)
	if err != nil {
		return nil, fmt.Errorf("journal.List: %w", err)
	}

	return entries, nil
}

// Delete removes an entry of the user in ctx and refreshes the streak cache.
func (s *Service) Delete(ctx context.Context, entryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.entries.Delete(ctx, userID, entryID); err != nil {
		return fmt.Errorf("journal.Delete: %w", err)
	}

	s.refreshStreak(ctx, userID)

	s.log.InfoContext(ctx, "journal entry deleted",
		slog.String("user_id", userID.String()),
		slog.String("entry_id", entryID.String()),
	)

	return nil
}

// TimeCapsule returns the newest entry written on the local calendar day one
// year before today, or nil when there is none, together with that day.
func (s *Service) TimeCapsule(ctx context.Context) (*domain.JournalEntry, domain.Date, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.Date{}, domain.ErrUnauthorized
	}

	today := domain.DateOf(s.now(), s.loc)
	day := domain.NewDate(today.Year-1, today.Month, today.Day)

	entry, err := s.entries.GetLatestInRange(ctx, userID, day.Start(s.loc), day.AddDays(1).Start(s.loc))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, day, nil
	}
	if err != nil {
		return nil, domain.Date{}, fmt.Errorf("journal.TimeCapsule: %w", err)
	}

	return entry, day, nil
}

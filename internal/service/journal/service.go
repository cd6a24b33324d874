// Package journal implements journal entry operations.
package journal

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
)

// entryRepo defines the entry repository interface needed by the journal service.
type entryRepo interface {
	GetByID(ctx context.Context, userID, entryID uuid.UUID) (*domain.JournalEntry, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, error)
	GetLatestInRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (*domain.JournalEntry, error)
	Create(ctx context.Context, e *domain.JournalEntry) (*domain.JournalEntry, error)
	Delete(ctx context.Context, userID, entryID uuid.UUID) error
}

// userRepo makes sure the owning user row exists.
type userRepo interface {
	Ensure(ctx context.Context, id uuid.UUID) error
}

// streakRefresher rebuilds the streak cache after history changes.
type streakRefresher interface {
	Refresh(ctx context.Context, userID uuid.UUID) (int, error)
}

// txManager defines the transaction manager interface needed by the journal service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements journal entry operations.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	users   userRepo
	streaks streakRefresher
	tx      txManager
	loc     *time.Location
	now     func() time.Time
}

// NewService creates a new journal service.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	users userRepo,
	streaks streakRefresher,
	tx txManager,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:     logger.With("service", "journal"),
		entries: entries,
		users:   users,
		streaks: streaks,
		tx:      tx,
		loc:     loc,
		now:     time.Now,
	}
}

// refreshStreak keeps the cache in step with history. The entry write has
// already succeeded, so a failure only leaves the cache stale.
func (s *Service) refreshStreak(ctx context.Context, userID uuid.UUID) {
	if _, err := s.streaks.Refresh(ctx, userID); err != nil {
		s.log.WarnContext(ctx, "streak cache refresh failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
	}
}

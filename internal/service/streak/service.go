// Package streak computes and caches the consecutive-day journaling streak.
package streak

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"github.com/heartmarshall/voicejournal-backend/pkg/ctxutil"
)

// entryRepo provides entry history.
type entryRepo interface {
	ListCreatedAt(ctx context.Context, userID uuid.UUID) ([]time.Time, error)
}

// cacheRepo stores the per-user streak cache.
type cacheRepo interface {
	Lock(ctx context.Context, id uuid.UUID) error
	GetStreakCache(ctx context.Context, id uuid.UUID) (domain.StreakCache, error)
	UpdateStreakCache(ctx context.Context, id uuid.UUID, cache domain.StreakCache) error
	ListStaleStreaks(ctx context.Context, cutoff domain.Date, afterID uuid.UUID, limit int) ([]uuid.UUID, error)
}

// txManager defines the transaction manager interface needed by the streak service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// refreshRecorder counts cache refresh outcomes. Implemented by the metrics registry.
type refreshRecorder interface {
	StreakRefresh(ok bool)
}

// Service reads and maintains the streak cache.
type Service struct {
	log      *slog.Logger
	entries  entryRepo
	cache    cacheRepo
	tx       txManager
	recorder refreshRecorder
	loc      *time.Location
	now      func() time.Time
}

// NewService creates a new streak service. recorder may be nil.
func NewService(
	logger *slog.Logger,
	entries entryRepo,
	cache cacheRepo,
	tx txManager,
	recorder refreshRecorder,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		log:      logger.With("service", "streak"),
		entries:  entries,
		cache:    cache,
		tx:       tx,
		recorder: recorder,
		loc:      loc,
		now:      time.Now,
	}
}

func (s *Service) today() domain.Date {
	return domain.DateOf(s.now(), s.loc)
}

// Get returns the current streak of the user in ctx. A valid cache is
// returned as is; otherwise the streak is recomputed from the full history.
func (s *Service) Get(ctx context.Context) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	return s.GetForUser(ctx, userID)
}

// GetForUser is Get for an explicit user.
func (s *Service) GetForUser(ctx context.Context, userID uuid.UUID) (int, error) {
	today := s.today()

	cache, err := s.cache.GetStreakCache(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("streak.Get: %w", err)
	}
	if CacheValid(cache, today) {
		return cache.Count, nil
	}

	times, err := s.entries.ListCreatedAt(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("streak.Get: %w", err)
	}

	return Compute(DaysOf(times, s.loc), today), nil
}

// Refresh recomputes the streak from the full history and stores it together
// with the most recent entry day. The user row is locked for the duration so
// concurrent refreshes of the same user serialize.
func (s *Service) Refresh(ctx context.Context, userID uuid.UUID) (int, error) {
	today := s.today()
	var count int

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.cache.Lock(ctx, userID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}

		times, err := s.entries.ListCreatedAt(ctx, userID)
		if err != nil {
			return fmt.Errorf("list entry times: %w", err)
		}

		days := DaysOf(times, s.loc)
		count = Compute(days, today)

		if err := s.cache.UpdateStreakCache(ctx, userID, domain.StreakCache{
			Count:       count,
			LastEntryOn: days.Latest(),
		}); err != nil {
			return fmt.Errorf("update cache: %w", err)
		}

		return nil
	})
	if err != nil {
		s.recorder.StreakRefresh(false)
		return 0, fmt.Errorf("streak.Refresh: %w", err)
	}

	s.recorder.StreakRefresh(true)
	s.log.DebugContext(ctx, "streak refreshed",
		slog.String("user_id", userID.String()),
		slog.Int("streak", count),
	)

	return count, nil
}

// RecomputeStale refreshes every user whose cached streak is positive but
// whose last entry day is before yesterday. It returns the number of users
// refreshed. Failures for single users are logged and skipped.
func (s *Service) RecomputeStale(ctx context.Context, batchSize int) (int, error) {
	if batchSize <= 0 {
		return 0, errors.New("streak.RecomputeStale: batch size must be positive")
	}

	cutoff := s.today().AddDays(-1)
	after := uuid.Nil
	refreshed := 0

	for {
		ids, err := s.cache.ListStaleStreaks(ctx, cutoff, after, batchSize)
		if err != nil {
			return refreshed, fmt.Errorf("streak.RecomputeStale: %w", err)
		}

		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return refreshed, err
			}
			if _, err := s.Refresh(ctx, id); err != nil {
				s.log.WarnContext(ctx, "stale streak refresh failed",
					slog.String("user_id", id.String()),
					slog.String("error", err.Error()),
				)
				continue
			}
			refreshed++
		}

		if len(ids) < batchSize {
			break
		}
		after = ids[len(ids)-1]
	}

	s.log.InfoContext(ctx, "stale streaks recomputed",
		slog.String("cutoff", cutoff.String()),
		slog.Int("refreshed", refreshed),
	)

	return refreshed, nil
}

type nopRecorder struct{}

func (nopRecorder) StreakRefresh(bool) {}

// Package stats aggregates journal emotions over a trailing window.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"github.com/heartmarshall/voicejournal-backend/pkg/ctxutil"
)

// Reporting periods and their window lengths in days.
const (
	PeriodWeek  = "week"
	PeriodMonth = "month"

	weekDays  = 7
	monthDays = 30
)

// entryRepo provides the emotion history.
type entryRepo interface {
	ListEmotionsSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]domain.EntryEmotion, error)
}

// streakReader returns the current streak of the user in ctx.
type streakReader interface {
	Get(ctx context.Context) (int, error)
}

// Service serves emotion statistics.
type Service struct {
	log     *slog.Logger
	entries entryRepo
	streaks streakReader
	loc     *time.Location
	now     func() time.Time
}

// NewService creates a new stats service.
func NewService(logger *slog.Logger, entries entryRepo, streaks streakReader, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:     logger.With("service", "stats"),
		entries: entries,
		streaks: streaks,
		loc:     loc,
		now:     time.Now,
	}
}

// WindowDays maps a period name to its window length. An empty period is a week.
func WindowDays(period string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "", PeriodWeek:
		return weekDays, nil
	case PeriodMonth:
		return monthDays, nil
	default:
		return 0, domain.NewValidationError("period", "must be week or month")
	}
}

// GetStats returns the aggregate for the user in ctx over the given period.
func (s *Service) GetStats(ctx context.Context, period string) (domain.EmotionStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.EmotionStats{}, domain.ErrUnauthorized
	}

	days, err := WindowDays(period)
	if err != nil {
		return domain.EmotionStats{}, err
	}

	now := s.now()

	entries, err := s.entries.ListEmotionsSince(ctx, userID, WindowStart(now, days, s.loc))
	if err != nil {
		s.log.ErrorContext(ctx, "load emotion history",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return domain.EmotionStats{}, fmt.Errorf("stats.GetStats: %w", err)
	}

	result := Aggregate(entries, days, now, s.loc)

	streak, err := s.streaks.Get(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "load streak",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return domain.EmotionStats{}, fmt.Errorf("stats.GetStats: %w", err)
	}
	result.Streak = streak

	s.log.InfoContext(ctx, "stats computed",
		slog.String("user_id", userID.String()),
		slog.Int("window_days", days),
		slog.Int("total_entries", result.TotalEntries),
	)

	return result, nil
}

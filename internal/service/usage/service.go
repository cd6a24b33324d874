// Package usage implements the per-user daily quota for processing calls.
package usage

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
)

// usageRepo defines the storage operations needed by the usage service.
type usageRepo interface {
	GetUsage(ctx context.Context, id uuid.UUID) (domain.UsageCounter, error)
	IncrementUsage(ctx context.Context, id uuid.UUID, today domain.Date, limit int) (int, bool, error)
}

// decisionRecorder receives every quota decision. Implemented by the metrics registry.
type decisionRecorder interface {
	QuotaDecision(allowed bool)
}

// Service implements the daily usage counter.
type Service struct {
	log      *slog.Logger
	repo     usageRepo
	recorder decisionRecorder
	loc      *time.Location
	limit    int
	now      func() time.Time
}

// NewService creates a new usage service. loc is the zone that defines the
// calendar day; limit is the number of processing calls allowed per day.
// recorder may be nil.
func NewService(
	logger *slog.Logger,
	repo usageRepo,
	recorder decisionRecorder,
	loc *time.Location,
	limit int,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		log:      logger.With("service", "usage"),
		repo:     repo,
		recorder: recorder,
		loc:      loc,
		limit:    limit,
		now:      time.Now,
	}
}

// Limit returns the configured daily limit.
func (s *Service) Limit() int { return s.limit }

// Today returns the current calendar day in the service zone.
func (s *Service) Today() domain.Date {
	return domain.DateOf(s.now(), s.loc)
}

// EffectiveCount returns the stored count if it was recorded today, else 0.
func EffectiveCount(counter domain.UsageCounter, today domain.Date) int {
	if counter.CountedOn == nil || *counter.CountedOn != today {
		return 0
	}
	return counter.Count
}

func remaining(limit, used int) int {
	return max(0, limit-used)
}

type nopRecorder struct{}

func (nopRecorder) QuotaDecision(bool) {}

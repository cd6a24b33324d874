package usage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"github.com/heartmarshall/voicejournal-backend/pkg/ctxutil"
)

// CheckAndIncrement consumes one unit of today's quota for the user in ctx.
// A denied decision leaves storage untouched. The caller must invoke the
// quota-consuming action only after an allowed decision.
func (s *Service) CheckAndIncrement(ctx context.Context) (domain.QuotaDecision, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.QuotaDecision{}, domain.ErrUnauthorized
	}

	if s.limit <= 0 {
		s.recorder.QuotaDecision(false)
		return domain.QuotaDecision{Allowed: false}, nil
	}

	today := s.Today()

	used, allowed, err := s.repo.IncrementUsage(ctx, userID, today, s.limit)
	if err != nil {
		return domain.QuotaDecision{}, fmt.Errorf("usage.CheckAndIncrement: %w", err)
	}

	s.recorder.QuotaDecision(allowed)

	decision := domain.QuotaDecision{
		Allowed:   allowed,
		Used:      used,
		Remaining: remaining(s.limit, used),
	}

	if !allowed {
		s.log.InfoContext(ctx, "daily quota exhausted",
			slog.String("user_id", userID.String()),
			slog.String("day", today.String()),
			slog.Int("limit", s.limit),
		)
		return decision, nil
	}

	s.log.DebugContext(ctx, "quota consumed",
		slog.String("user_id", userID.String()),
		slog.Int("used", used),
		slog.Int("remaining", decision.Remaining),
	)

	return decision, nil
}

// Current returns today's usage for the user in ctx without mutating it.
func (s *Service) Current(ctx context.Context) (domain.UsageInfo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.UsageInfo{}, domain.ErrUnauthorized
	}

	counter, err := s.repo.GetUsage(ctx, userID)
	if err != nil {
		return domain.UsageInfo{}, fmt.Errorf("usage.Current: %w", err)
	}

	used := EffectiveCount(counter, s.Today())
	left := remaining(s.limit, used)

	return domain.UsageInfo{
		Used:      used,
		Limit:     s.limit,
		Remaining: left,
		CanCreate: left > 0,
	}, nil
}

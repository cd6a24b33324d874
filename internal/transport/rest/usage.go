package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
)

type usageService interface {
	Current(ctx context.Context) (domain.UsageInfo, error)
}

type streakService interface {
	Get(ctx context.Context) (int, error)
}

// UsageHandler serves the daily quota endpoint.
type UsageHandler struct {
	usage   usageService
	streaks streakService
	log     *slog.Logger
}

// NewUsageHandler creates a UsageHandler.
func NewUsageHandler(usage usageService, streaks streakService, logger *slog.Logger) *UsageHandler {
	return &UsageHandler{usage: usage, streaks: streaks, log: logger.With("handler", "usage")}
}

type usageResponse struct {
	Success   bool `json:"success"`
	Used      int  `json:"used"`
	Limit     int  `json:"limit"`
	Remaining int  `json:"remaining"`
	CanCreate bool `json:"canCreate"`
	Streak    int  `json:"streak"`
}

// Get handles GET /api/usage.
func (h *UsageHandler) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.usage.Current(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	streak, err := h.streaks.Get(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, usageResponse{
		Success:   true,
		Used:      info.Used,
		Limit:     info.Limit,
		Remaining: info.Remaining,
		CanCreate: info.CanCreate,
		Streak:    streak,
	})
}

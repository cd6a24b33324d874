package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
)

type statsService interface {
	GetStats(ctx context.Context, period string) (domain.EmotionStats, error)
}

// StatsHandler serves the emotion statistics endpoint.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

// Get handles GET /api/stats?period=week|month.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context(), r.URL.Query().Get("period"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"stats":   toStatsResponse(stats),
	})
}

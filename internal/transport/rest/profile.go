package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"github.com/heartmarshall/voicejournal-backend/internal/service/profile"
)

type profileService interface {
	Get(ctx context.Context) (*domain.Profile, error)
	Upsert(ctx context.Context, input profile.UpsertInput) (*domain.Profile, error)
}

// ProfileHandler serves the profile endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

// Get handles GET /api/profile. A user that has not onboarded yet gets a
// null profile rather than 404.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context())
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"profile": toProfileResponse(p),
	})
}

type upsertProfileRequest struct {
	Nickname         string  `json:"nickname"`
	NotificationTime *string `json:"notificationTime"`
}

// Upsert handles PUT and POST /api/profile.
func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req upsertProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidInput, "invalid request body")
		return
	}

	p, err := h.svc.Upsert(r.Context(), profile.UpsertInput{
		Nickname:         req.Nickname,
		NotificationTime: req.NotificationTime,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"profile": toProfileResponse(p),
	})
}

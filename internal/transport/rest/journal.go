package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"github.com/heartmarshall/voicejournal-backend/internal/service/journal"
)

type journalService interface {
	Create(ctx context.Context, input journal.CreateInput) (*domain.JournalEntry, error)
	Get(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error)
	List(ctx context.Context, input journal.ListInput) ([]*domain.JournalEntry, error)
	Delete(ctx context.Context, entryID uuid.UUID) error
	TimeCapsule(ctx context.Context) (*domain.JournalEntry, domain.Date, error)
}

// JournalHandler serves journal entry endpoints.
type JournalHandler struct {
	svc journalService
	log *slog.Logger
}

// NewJournalHandler creates a JournalHandler.
func NewJournalHandler(svc journalService, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{svc: svc, log: logger.With("handler", "journal")}
}

type createJournalRequest struct {
	Transcript       string `json:"transcript"`
	Summary          string `json:"summary"`
	Emotion          string `json:"emotion"`
	EmotionScore     int    `json:"emotionScore"`
	Scene            string `json:"scene"`
	CharacterMessage string `json:"characterMessage"`
	ImageURL         string `json:"imageUrl"`
	AudioDuration    int    `json:"audioDuration"`
}

// Create handles POST /api/journals.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createJournalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidInput, "invalid request body")
		return
	}

	entry, err := h.svc.Create(r.Context(), journal.CreateInput{
		Transcript:       req.Transcript,
		Summary:          req.Summary,
		Emotion:          req.Emotion,
		EmotionScore:     req.EmotionScore,
		Scene:            req.Scene,
		CharacterMessage: req.CharacterMessage,
		ImageURL:         req.ImageURL,
		AudioDuration:    req.AudioDuration,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"journal": toJournalResponse(entry),
	})
}

// List handles GET /api/journals?limit=&offset=.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(w, r, "limit")
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset")
	if !ok {
		return
	}

	entries, err := h.svc.List(r.Context(), journal.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]*journalResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toJournalResponse(e))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"journals": out,
	})
}

// Get handles GET /api/journals/{id}.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"journal": toJournalResponse(entry),
	})
}

// Delete handles DELETE /api/journals/{id}.
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// TimeCapsule handles GET /api/timecapsule.
func (h *JournalHandler) TimeCapsule(w http.ResponseWriter, r *http.Request) {
	entry, day, err := h.svc.TimeCapsule(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"journal":        toJournalResponse(entry),
		"oneYearAgoDate": day,
	})
}

func pathUUID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidInput, "invalid journal id")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter; absent means 0.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidInput, name+" must be an integer")
		return 0, false
	}
	return n, true
}

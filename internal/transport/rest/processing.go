package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"github.com/heartmarshall/voicejournal-backend/internal/service/processing"
)

type processingService interface {
	Transcribe(ctx context.Context, input processing.TranscribeInput) (processing.TranscribeResult, error)
	Analyze(ctx context.Context, input processing.AnalyzeInput) (domain.Analysis, error)
	GenerateImage(ctx context.Context, input processing.GenerateImageInput) (domain.GeneratedImage, error)
}

// multipart overhead allowed on top of the audio itself
const multipartSlack = 1 << 20

// ProcessingHandler serves transcription, analysis and illustration.
type ProcessingHandler struct {
	svc processingService
	log *slog.Logger
}

// NewProcessingHandler creates a ProcessingHandler.
func NewProcessingHandler(svc processingService, logger *slog.Logger) *ProcessingHandler {
	return &ProcessingHandler{svc: svc, log: logger.With("handler", "processing")}
}

// Transcribe handles POST /api/transcribe with a multipart "audio" file.
func (h *ProcessingHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, processing.MaxAudioBytes+multipartSlack)

	file, header, err := r.FormFile("audio")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusBadRequest, codeInvalidInput, "audio must be at most 25MB")
			return
		}
		writeError(w, http.StatusBadRequest, codeInvalidInput, "audio file is required")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, processing.MaxAudioBytes+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidInput, "could not read audio")
		return
	}

	result, err := h.svc.Transcribe(r.Context(), processing.TranscribeInput{
		Filename: header.Filename,
		Audio:    audio,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"transcript": result.Transcript,
		"usage":      quotaResponse{Used: result.Usage.Used, Remaining: result.Usage.Remaining},
	})
}

type analyzeRequest struct {
	Transcript string `json:"transcript"`
}

type analyzeResponse struct {
	Success          bool   `json:"success"`
	Scene            string `json:"scene"`
	Emotion          string `json:"emotion"`
	EmotionScore     int    `json:"emotionScore"`
	Summary          string `json:"summary"`
	CharacterMessage string `json:"characterMessage"`
}

// Analyze handles POST /api/analyze.
func (h *ProcessingHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidInput, "invalid request body")
		return
	}

	a, err := h.svc.Analyze(r.Context(), processing.AnalyzeInput{Transcript: req.Transcript})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, analyzeResponse{
		Success:          true,
		Scene:            a.Scene,
		Emotion:          a.Emotion.String(),
		EmotionScore:     a.EmotionScore,
		Summary:          a.Summary,
		CharacterMessage: a.CharacterMessage,
	})
}

type generateImageRequest struct {
	Scene   string `json:"scene"`
	Emotion string `json:"emotion"`
}

// GenerateImage handles POST /api/generate-image.
func (h *ProcessingHandler) GenerateImage(w http.ResponseWriter, r *http.Request) {
	var req generateImageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidInput, "invalid request body")
		return
	}

	img, err := h.svc.GenerateImage(r.Context(), processing.GenerateImageInput{
		Scene:   req.Scene,
		Emotion: req.Emotion,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"imageUrl": img.URL,
		"prompt":   img.Prompt,
	})
}

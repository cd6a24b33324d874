package processing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"github.com/heartmarshall/voicejournal-backend/pkg/ctxutil"
)

// Transcribe consumes one unit of quota and then transcribes the recording.
// The quota stays consumed when transcription fails.
func (s *Service) Transcribe(ctx context.Context, input TranscribeInput) (TranscribeResult, error) {
	if err := input.Validate(); err != nil {
		return TranscribeResult{}, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return TranscribeResult{}, domain.ErrUnauthorized
	}

	decision, err := s.quota.CheckAndIncrement(ctx)
	if err != nil {
		return TranscribeResult{}, fmt.Errorf("processing.Transcribe: %w", err)
	}
	if !decision.Allowed {
		return TranscribeResult{Usage: decision}, domain.ErrQuotaExceeded
	}

	filename := input.Filename
	if filename == "" {
		filename = "recording.webm"
	}

	text, err := s.transcriber.Transcribe(ctx, filename, input.Audio)
	if err != nil {
		s.log.ErrorContext(ctx, "transcription failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return TranscribeResult{Usage: decision}, fmt.Errorf("processing.Transcribe: %w: %w", domain.ErrUpstream, err)
	}

	s.log.InfoContext(ctx, "audio transcribed",
		slog.String("user_id", userID.String()),
		slog.Int("audio_bytes", len(input.Audio)),
		slog.Int("remaining", decision.Remaining),
	)

	return TranscribeResult{Transcript: text, Usage: decision}, nil
}

// Package processing orchestrates the hosted inference calls that turn a
// recording into a journal draft: transcription, analysis and illustration.
package processing

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
)

// transcriber converts speech to text.
type transcriber interface {
	Transcribe(ctx context.Context, filename string, audio []byte) (string, error)
}

// analyzer runs a JSON-mode completion and returns the raw model text.
type analyzer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// imageGenerator renders a prompt and returns the encoded image.
type imageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// imageStore persists generated images.
type imageStore interface {
	Upload(ctx context.Context, path, contentType, cacheControl string, data []byte) error
	PublicURL(path string) string
}

// quota consumes one unit of the daily allowance of the user in ctx.
type quota interface {
	CheckAndIncrement(ctx context.Context) (domain.QuotaDecision, error)
}

// Service implements the processing pipeline steps.
type Service struct {
	log         *slog.Logger
	transcriber transcriber
	analyzer    analyzer
	images      imageGenerator
	store       imageStore
	quota       quota
	now         func() time.Time
}

// NewService creates a new processing service.
func NewService(
	logger *slog.Logger,
	transcriber transcriber,
	analyzer analyzer,
	images imageGenerator,
	store imageStore,
	quota quota,
) *Service {
	return &Service{
		log:         logger.With("service", "processing"),
		transcriber: transcriber,
		analyzer:    analyzer,
		images:      images,
		store:       store,
		quota:       quota,
		now:         time.Now,
	}
}

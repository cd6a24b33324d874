package processing

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"github.com/heartmarshall/voicejournal-backend/pkg/ctxutil"
)

const (
	imageContentType  = "image/png"
	imageCacheControl = "31536000"
	imageDir          = "journals"
)

// GenerateImage illustrates a scene, stores the image permanently and
// returns its public URL together with the prompt used.
func (s *Service) GenerateImage(ctx context.Context, input GenerateImageInput) (domain.GeneratedImage, error) {
	if err := input.Validate(); err != nil {
		return domain.GeneratedImage{}, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.GeneratedImage{}, domain.ErrUnauthorized
	}

	prompt := BuildImagePrompt(input.Scene, input.Emotion)

	data, err := s.images.GenerateImage(ctx, prompt)
	if err != nil {
		s.log.ErrorContext(ctx, "image generation failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return domain.GeneratedImage{}, fmt.Errorf("processing.GenerateImage: %w: %w", domain.ErrUpstream, err)
	}

	path := s.imagePath()
	if err := s.store.Upload(ctx, path, imageContentType, imageCacheControl, data); err != nil {
		s.log.ErrorContext(ctx, "image upload failed",
			slog.String("user_id", userID.String()),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return domain.GeneratedImage{}, fmt.Errorf("processing.GenerateImage: %w: %w", domain.ErrUpstream, err)
	}

	s.log.InfoContext(ctx, "image stored",
		slog.String("user_id", userID.String()),
		slog.String("path", path),
		slog.Int("bytes", len(data)),
	)

	return domain.GeneratedImage{URL: s.store.PublicURL(path), Prompt: prompt}, nil
}

// imagePath returns journals/<unix ms>-<random>.png.
func (s *Service) imagePath() string {
	var b [4]byte
	_, _ = rand.Read(b[:])
	return fmt.Sprintf("%s/%d-%s.png", imageDir, s.now().UnixMilli(), hex.EncodeToString(b[:]))
}

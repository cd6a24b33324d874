package processing

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
	"github.com/heartmarshall/voicejournal-backend/pkg/ctxutil"
)

type analysisPayload struct {
	Scene            string      `json:"scene"`
	Emotion          string      `json:"emotion"`
	EmotionScore     json.Number `json:"emotionScore"`
	Summary          string      `json:"summary"`
	CharacterMessage string      `json:"characterMessage"`
}

// Analyze extracts scene, emotion, summary and a character message from a
// transcript. Unknown emotions become neutral and the score is clamped.
func (s *Service) Analyze(ctx context.Context, input AnalyzeInput) (domain.Analysis, error) {
	if err := input.Validate(); err != nil {
		return domain.Analysis{}, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Analysis{}, domain.ErrUnauthorized
	}

	raw, err := s.analyzer.Complete(ctx, AnalysisSystemPrompt, AnalysisUserPrompt(input.Transcript))
	if err != nil {
		s.log.ErrorContext(ctx, "analysis failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return domain.Analysis{}, fmt.Errorf("processing.Analyze: %w: %w", domain.ErrUpstream, err)
	}

	analysis, err := ParseAnalysis(raw)
	if err != nil {
		s.log.ErrorContext(ctx, "analysis response unusable",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()),
		)
		return domain.Analysis{}, fmt.Errorf("processing.Analyze: %w: %w", domain.ErrUpstream, err)
	}

	s.log.InfoContext(ctx, "transcript analyzed",
		slog.String("user_id", userID.String()),
		slog.String("emotion", analysis.Emotion.String()),
		slog.Int("emotion_score", analysis.EmotionScore),
	)

	return analysis, nil
}

// ParseAnalysis decodes the model output. Fenced or prefixed JSON is accepted.
func ParseAnalysis(raw string) (domain.Analysis, error) {
	body := extractJSON(raw)
	if body == "" {
		return domain.Analysis{}, errors.New("empty analysis response")
	}

	var p analysisPayload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return domain.Analysis{}, fmt.Errorf("decode analysis: %w", err)
	}

	score := 0
	if p.EmotionScore != "" {
		f, err := p.EmotionScore.Float64()
		if err != nil {
			return domain.Analysis{}, fmt.Errorf("decode emotionScore: %w", err)
		}
		score = int(f)
	}

	return domain.Analysis{
		Scene:            strings.TrimSpace(p.Scene),
		Emotion:          domain.NormalizeEmotion(p.Emotion),
		EmotionScore:     domain.ClampEmotionScore(score),
		Summary:          strings.TrimSpace(p.Summary),
		CharacterMessage: strings.TrimSpace(p.CharacterMessage),
	}, nil
}

// extractJSON returns the outermost object in s.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return ""
	}
	return s[start : end+1]
}

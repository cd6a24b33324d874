package processing

import (
	"strings"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
)

// MaxAudioBytes is the upload limit of the speech-to-text API.
const MaxAudioBytes = 25 << 20

// TranscribeInput holds the uploaded recording.
type TranscribeInput struct {
	Filename string
	Audio    []byte
}

// Validate validates the transcribe input.
func (i TranscribeInput) Validate() error {
	switch {
	case len(i.Audio) == 0:
		return domain.NewValidationError("audio", "required")
	case len(i.Audio) > MaxAudioBytes:
		return domain.NewValidationError("audio", "must be at most 25MB")
	}
	return nil
}

// AnalyzeInput holds the transcript to analyze.
type AnalyzeInput struct {
	Transcript string
}

// Validate validates the analyze input.
func (i AnalyzeInput) Validate() error {
	if strings.TrimSpace(i.Transcript) == "" {
		return domain.NewValidationError("transcript", "required")
	}
	return nil
}

// GenerateImageInput holds the scene to illustrate. An empty Emotion means neutral.
type GenerateImageInput struct {
	Scene   string
	Emotion string
}

// Validate validates the generate image input.
func (i GenerateImageInput) Validate() error {
	if strings.TrimSpace(i.Scene) == "" {
		return domain.NewValidationError("scene", "required")
	}
	return nil
}

// TranscribeResult is the transcript together with the quota after the call.
type TranscribeResult struct {
	Transcript string
	Usage      domain.QuotaDecision
}

package journal

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
)

// List pagination bounds.
const (
	DefaultListLimit = 30
	MaxListLimit     = 100
)

// CreateInput holds parameters for creating a journal entry.
type CreateInput struct {
	Transcript       string
	Summary          string
	Emotion          string
	EmotionScore     int
	Scene            string
	CharacterMessage string
	ImageURL         string
	AudioDuration    int
}

// Validate validates the create input.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Transcript == "" {
		errs = append(errs, domain.FieldError{Field: "transcript", Message: "required"})
	}
	if i.Summary == "" {
		errs = append(errs, domain.FieldError{Field: "summary", Message: "required"})
	}
	if i.Emotion == "" {
		errs = append(errs, domain.FieldError{Field: "emotion", Message: "required"})
	} else if _, ok := domain.ParseEmotion(i.Emotion); !ok {
		errs = append(errs, domain.FieldError{Field: "emotion", Message: "unknown emotion"})
	}
	if i.ImageURL == "" {
		errs = append(errs, domain.FieldError{Field: "imageUrl", Message: "required"})
	}
	if i.AudioDuration < 0 {
		errs = append(errs, domain.FieldError{Field: "audioDuration", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// toEntry builds the entry to persist. The score is clamped, not rejected.
func (i CreateInput) toEntry(userID uuid.UUID) *domain.JournalEntry {
	emotion, _ := domain.ParseEmotion(i.Emotion)
	return &domain.JournalEntry{
		ID:               uuid.New(),
		UserID:           userID,
		Transcript:       i.Transcript,
		Summary:          i.Summary,
		Emotion:          emotion,
		EmotionScore:     domain.ClampEmotionScore(i.EmotionScore),
		Scene:            i.Scene,
		CharacterMessage: i.CharacterMessage,
		ImageURL:         i.ImageURL,
		AudioDuration:    i.AudioDuration,
	}
}

// ListInput holds pagination parameters. Zero Limit means the default.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	} else if i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be at most 100"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ListInput) limit() int {
	if i.Limit == 0 {
		return DefaultListLimit
	}
	return i.Limit
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// EmotionScore bounds.
const (
	MinEmotionScore = -5
	MaxEmotionScore = 5
)

// JournalEntry is one recorded and processed voice journal. Entries are
// immutable once created.
type JournalEntry struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Transcript       string
	Summary          string
	Emotion          Emotion
	EmotionScore     int
	Scene            string
	CharacterMessage string
	ImageURL         string
	AudioDuration    int // seconds
	CreatedAt        time.Time
}

// ClampEmotionScore limits s to [MinEmotionScore, MaxEmotionScore].
func ClampEmotionScore(s int) int {
	return max(MinEmotionScore, min(MaxEmotionScore, s))
}

// EntryEmotion is the projection of an entry used by emotion aggregation.
type EntryEmotion struct {
	Emotion   string
	CreatedAt time.Time
}

// Analysis is the structured result of analyzing a transcript.
type Analysis struct {
	Scene            string
	Emotion          Emotion
	EmotionScore     int
	Summary          string
	CharacterMessage string
}

// GeneratedImage is an illustration persisted to object storage.
type GeneratedImage struct {
	URL    string
	Prompt string
}

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user row with a nickname and zeroed counters.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:        uuid.New(),
		Nickname:  "tester-" + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, nickname, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Nickname, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedEntry inserts a journal entry for userID with the given emotion and
// creation time.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, emotion domain.Emotion, createdAt time.Time) domain.JournalEntry {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	entry := domain.JournalEntry{
		ID:               uuid.New(),
		UserID:           userID,
		Transcript:       "transcript " + suffix,
		Summary:          "summary " + suffix,
		Emotion:          emotion,
		EmotionScore:     1,
		Scene:            "a quiet street at dusk",
		CharacterMessage: "you did well today",
		ImageURL:         "https://storage.example.com/journals/" + suffix + ".png",
		AudioDuration:    42,
		CreatedAt:        createdAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO journal_entries
		   (id, user_id, transcript, summary, emotion, emotion_score, scene, character_message, image_url, audio_duration, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		entry.ID, entry.UserID, entry.Transcript, entry.Summary, string(entry.Emotion), entry.EmotionScore,
		entry.Scene, entry.CharacterMessage, entry.ImageURL, entry.AudioDuration, entry.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEntry insert: %v", err)
	}

	return entry
}

package rest

import (
	"time"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
)

// Journal and profile bodies keep the column naming the web client reads.

type journalResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Transcript       string    `json:"transcript"`
	Summary          string    `json:"summary"`
	Emotion          string    `json:"emotion"`
	EmotionScore     int       `json:"emotion_score"`
	Scene            string    `json:"scene"`
	CharacterMessage string    `json:"character_message"`
	ImageURL         string    `json:"image_url"`
	AudioDuration    int       `json:"audio_duration"`
	CreatedAt        time.Time `json:"created_at"`
}

func toJournalResponse(e *domain.JournalEntry) *journalResponse {
	if e == nil {
		return nil
	}
	return &journalResponse{
		ID:               e.ID.String(),
		UserID:           e.UserID.String(),
		Transcript:       e.Transcript,
		Summary:          e.Summary,
		Emotion:          e.Emotion.String(),
		EmotionScore:     e.EmotionScore,
		Scene:            e.Scene,
		CharacterMessage: e.CharacterMessage,
		ImageURL:         e.ImageURL,
		AudioDuration:    e.AudioDuration,
		CreatedAt:        e.CreatedAt,
	}
}

type profileResponse struct {
	ID               string    `json:"id"`
	Nickname         string    `json:"nickname"`
	NotificationTime *string   `json:"notification_time"`
	StreakCount      int       `json:"streak_count"`
	CreatedAt        time.Time `json:"created_at"`
}

func toProfileResponse(p *domain.Profile) *profileResponse {
	if p == nil {
		return nil
	}
	return &profileResponse{
		ID:               p.UserID.String(),
		Nickname:         p.Nickname,
		NotificationTime: p.NotificationTime,
		StreakCount:      p.StreakCount,
		CreatedAt:        p.CreatedAt,
	}
}

type dailyEmotionResponse struct {
	Date    domain.Date `json:"date"`
	Emotion string      `json:"emotion"`
	Count   int         `json:"count"`
}

type statsResponse struct {
	TotalEntries        int                    `json:"totalEntries"`
	Streak              int                    `json:"streak"`
	EmotionDistribution map[string]int         `json:"emotionDistribution"`
	DailySeries         []dailyEmotionResponse `json:"dailySeries"`
}

func toStatsResponse(s domain.EmotionStats) statsResponse {
	dist := make(map[string]int, len(s.EmotionDistribution))
	for e, n := range s.EmotionDistribution {
		dist[e.String()] = n
	}

	series := make([]dailyEmotionResponse, 0, len(s.DailySeries))
	for _, d := range s.DailySeries {
		series = append(series, dailyEmotionResponse{Date: d.Date, Emotion: d.Emotion.String(), Count: d.Count})
	}

	return statsResponse{
		TotalEntries:        s.TotalEntries,
		Streak:              s.Streak,
		EmotionDistribution: dist,
		DailySeries:         series,
	}
}

type quotaResponse struct {
	Used      int `json:"used"`
	Remaining int `json:"remaining"`
}

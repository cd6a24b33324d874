package domain

// UsageInfo is the read-only view of today's quota.
type UsageInfo struct {
	Used      int
	Limit     int
	Remaining int
	CanCreate bool
}

// QuotaDecision is the outcome of a check-and-increment call.
type QuotaDecision struct {
	Allowed   bool
	Used      int
	Remaining int
}

// DailyEmotion is the dominant emotion of one calendar day.
type DailyEmotion struct {
	Date    Date
	Emotion Emotion
	Count   int
}

// EmotionStats is the aggregate over a trailing window. Never persisted.
type EmotionStats struct {
	TotalEntries        int
	Streak              int
	EmotionDistribution map[Emotion]int
	DailySeries         []DailyEmotion
}

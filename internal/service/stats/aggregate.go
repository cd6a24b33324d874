package stats

import (
	"slices"
	"time"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
)

// Aggregate builds the histogram and the daily dominant-emotion series over
// entries created in [now - windowDays, now], bucketed by calendar day of loc.
// Entries with a zero timestamp or an unknown emotion are skipped. The
// returned Streak is always zero.
func Aggregate(entries []domain.EntryEmotion, windowDays int, now time.Time, loc *time.Location) domain.EmotionStats {
	if loc == nil {
		loc = time.UTC
	}
	start := WindowStart(now, windowDays, loc)

	histogram := make(map[domain.Emotion]int, len(domain.AllEmotions()))
	for _, e := range domain.AllEmotions() {
		histogram[e] = 0
	}

	perDay := make(map[domain.Date]map[domain.Emotion]int)
	total := 0

	for _, entry := range entries {
		if entry.CreatedAt.IsZero() || entry.CreatedAt.Before(start) || entry.CreatedAt.After(now) {
			continue
		}
		emotion, ok := domain.ParseEmotion(entry.Emotion)
		if !ok {
			continue
		}

		total++
		histogram[emotion]++

		day := domain.DateOf(entry.CreatedAt, loc)
		counts, ok := perDay[day]
		if !ok {
			counts = make(map[domain.Emotion]int)
			perDay[day] = counts
		}
		counts[emotion]++
	}

	series := make([]domain.DailyEmotion, 0, len(perDay))
	for day, counts := range perDay {
		emotion, count := dominant(counts)
		series = append(series, domain.DailyEmotion{Date: day, Emotion: emotion, Count: count})
	}
	slices.SortFunc(series, func(a, b domain.DailyEmotion) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})

	return domain.EmotionStats{
		TotalEntries:        total,
		EmotionDistribution: histogram,
		DailySeries:         series,
	}
}

// WindowStart returns the inclusive lower bound of a trailing window.
func WindowStart(now time.Time, windowDays int, loc *time.Location) time.Time {
	return now.In(loc).AddDate(0, 0, -windowDays)
}

// dominant picks the highest count; ties go to the emotion earlier in the
// fixed category order.
func dominant(counts map[domain.Emotion]int) (domain.Emotion, int) {
	best, bestCount := domain.EmotionNeutral, -1
	for _, e := range domain.AllEmotions() {
		if c := counts[e]; c > bestCount && c > 0 {
			best, bestCount = e, c
		}
	}
	return best, bestCount
}

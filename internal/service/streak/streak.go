package streak

import (
	"time"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
)

// DaySet is a set of distinct calendar days.
type DaySet map[domain.Date]struct{}

// DaysOf buckets timestamps into calendar days of loc. Zero timestamps are skipped.
func DaysOf(times []time.Time, loc *time.Location) DaySet {
	days := make(DaySet, len(times))
	for _, t := range times {
		if t.IsZero() {
			continue
		}
		days[domain.DateOf(t, loc)] = struct{}{}
	}
	return days
}

// Latest returns the most recent day of the set, or nil when it is empty.
func (d DaySet) Latest() *domain.Date {
	var latest *domain.Date
	for day := range d {
		if latest == nil || day.After(*latest) {
			latest = &day
		}
	}
	return latest
}

// Compute returns the number of consecutive days ending today or yesterday
// that are present in days. A streak whose last day is before yesterday is 0.
func Compute(days DaySet, today domain.Date) int {
	cursor := today
	if _, ok := days[cursor]; !ok {
		cursor = today.AddDays(-1)
		if _, ok := days[cursor]; !ok {
			return 0
		}
	}

	streak := 0
	for {
		if _, ok := days[cursor]; !ok {
			break
		}
		streak++
		cursor = cursor.AddDays(-1)
	}

	return streak
}

// CacheValid reports whether a cached streak can be returned without a rescan.
func CacheValid(cache domain.StreakCache, today domain.Date) bool {
	if cache.LastEntryOn == nil {
		return false
	}
	last := *cache.LastEntryOn
	return last == today || last == today.AddDays(-1)
}

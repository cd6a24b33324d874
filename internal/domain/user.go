package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the per-user record: profile, daily usage counter and streak cache.
// The ID is the subject issued by the external auth provider.
type User struct {
	ID               uuid.UUID
	Nickname         string
	NotificationTime *string // HH:MM
	Usage            UsageCounter
	Streak           StreakCache
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// UsageCounter is the stored daily counter. Count is meaningful only for
// CountedOn; a nil CountedOn means the user never consumed quota.
type UsageCounter struct {
	Count     int
	CountedOn *Date
}

// StreakCache is the denormalized streak. It is trusted only while
// LastEntryOn is today or yesterday.
type StreakCache struct {
	Count       int
	LastEntryOn *Date
}

// Profile is the user-editable part of the user record.
type Profile struct {
	UserID           uuid.UUID
	Nickname         string
	NotificationTime *string
	StreakCount      int
	CreatedAt        time.Time
}

package profile

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/voicejournal-backend/internal/domain"
)

// MaxNicknameLength is counted in characters, not bytes.
const MaxNicknameLength = 30

// UpsertInput holds parameters for the profile upsert. A nil or blank
// NotificationTime clears the reminder.
type UpsertInput struct {
	Nickname         string
	NotificationTime *string
}

func (i UpsertInput) normalize() UpsertInput {
	i.Nickname = strings.TrimSpace(i.Nickname)
	if i.NotificationTime != nil {
		t := strings.TrimSpace(*i.NotificationTime)
		if t == "" {
			i.NotificationTime = nil
		} else {
			i.NotificationTime = &t
		}
	}
	return i
}

// Validate validates the upsert input.
func (i UpsertInput) Validate() error {
	var errs []domain.FieldError

	if i.Nickname == "" {
		errs = append(errs, domain.FieldError{Field: "nickname", Message: "required"})
	} else if utf8.RuneCountInString(i.Nickname) > MaxNicknameLength {
		errs = append(errs, domain.FieldError{Field: "nickname", Message: "too long"})
	}

	if i.NotificationTime != nil {
		if _, err := time.Parse("15:04", *i.NotificationTime); err != nil || len(*i.NotificationTime) != 5 {
			errs = append(errs, domain.FieldError{Field: "notificationTime", Message: "must be HH:MM"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

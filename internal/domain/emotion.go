package domain

import "strings"

// Emotion is the dominant feeling detected in a journal entry.
type Emotion string

const (
	EmotionJoy     Emotion = "joy"
	EmotionSadness Emotion = "sadness"
	EmotionAnger   Emotion = "anger"
	EmotionFear    Emotion = "fear"
	EmotionAnxiety Emotion = "anxiety"
	EmotionNeutral Emotion = "neutral"
)

// emotionOrder is the fixed category order. It is also the tie-break priority
// when two categories have the same count.
var emotionOrder = [...]Emotion{
	EmotionJoy,
	EmotionSadness,
	EmotionAnger,
	EmotionFear,
	EmotionAnxiety,
	EmotionNeutral,
}

func (e Emotion) String() string { return string(e) }

func (e Emotion) IsValid() bool {
	switch e {
	case EmotionJoy, EmotionSadness, EmotionAnger, EmotionFear, EmotionAnxiety, EmotionNeutral:
		return true
	}
	return false
}

// Priority returns the position of e in the fixed category order, or -1 for
// an unknown value. Lower means preferred on ties.
func (e Emotion) Priority() int {
	for i, c := range emotionOrder {
		if c == e {
			return i
		}
	}
	return -1
}

// AllEmotions returns every category in the fixed order.
func AllEmotions() []Emotion {
	out := make([]Emotion, len(emotionOrder))
	copy(out, emotionOrder[:])
	return out
}

// ParseEmotion normalizes s and reports whether it names a known category.
func ParseEmotion(s string) (Emotion, bool) {
	e := Emotion(strings.ToLower(strings.TrimSpace(s)))
	if !e.IsValid() {
		return "", false
	}
	return e, true
}

// NormalizeEmotion maps unknown values to EmotionNeutral.
func NormalizeEmotion(s string) Emotion {
	if e, ok := ParseEmotion(s); ok {
		return e
	}
	return EmotionNeutral
}

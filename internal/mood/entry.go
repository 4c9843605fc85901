package mood

import (
	"time"

	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/emotion"
)

// maxTextLen is the stored-text cap for user and reply text. Longer text is
// truncated with an ellipsis marker; entries keep only this much of either
// side of the exchange.
const maxTextLen = 100

// Entry is one immutable mood record, created once per classified turn and
// never mutated afterwards. The JSON field order is the persisted record
// layout and the export column order.
type Entry struct {
	Timestamp  time.Time     `json:"timestamp"`
	Date       string        `json:"date"`
	Time       string        `json:"time"`
	Emotion    emotion.Label `json:"emotion"`
	Confidence float64       `json:"confidence"`
	UserText   string        `json:"user_text"`
	AIResponse string        `json:"ai_response"`
	MoodScore  int           `json:"mood_score"`
}

// NewEntry builds an entry at the given event time, truncating both texts and
// deriving the mood score from the emotion.
func NewEntry(now time.Time, label emotion.Label, confidence float64, userText, replyText string) Entry {
	return Entry{
		Timestamp:  now,
		Date:       now.Format("2006-01-02"),
		Time:       now.Format("15:04"),
		Emotion:    label,
		Confidence: confidence,
		UserText:   Truncate(userText, maxTextLen),
		AIResponse: Truncate(replyText, maxTextLen),
		MoodScore:  Score(label),
	}
}

// Truncate shortens s to at most max characters, appending "..." when
// anything was cut. Counting is by rune so Arabic text is not split
// mid-character.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

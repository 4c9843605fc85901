// Package memory holds the bounded per-session conversation log that feeds
// context back to the response generator. It is independent of the durable
// mood history: clearing one never touches the other.
package memory

import (
	"fmt"
	"strings"
	"time"

	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/emotion"
)

// Roles for conversation turns.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultCap is the memory bound used when no valid capacity is given.
const DefaultCap = 15

// Turn is one dialogue turn.
type Turn struct {
	Role      string        `json:"role"`
	Content   string        `json:"content"`
	Emotion   emotion.Label `json:"emotion,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// Memory is a bounded ordered log of turns. On overflow it always keeps the
// first recorded turn as foundational context plus the most recent cap−1
// turns; this asymmetric retention is deliberate and not plain FIFO. The cap
// is fixed at construction.
type Memory struct {
	cap   int
	turns []Turn
	now   func() time.Time
}

// New creates a memory with the given cap; values below 2 fall back to
// DefaultCap, since the retention rule needs room for the first turn plus at
// least one recent turn.
func New(capacity int) *Memory {
	if capacity < 2 {
		capacity = DefaultCap
	}
	return &Memory{cap: capacity, now: time.Now}
}

// Append records a turn, evicting middle turns when the bound is exceeded.
// The emotion tag is optional; pass the empty label for assistant turns.
func (m *Memory) Append(role, content string, label emotion.Label) {
	m.turns = append(m.turns, Turn{
		Role:      role,
		Content:   content,
		Emotion:   label,
		Timestamp: m.now(),
	})

	if len(m.turns) > m.cap {
		first := m.turns[0]
		recent := m.turns[len(m.turns)-(m.cap-1):]
		m.turns = append([]Turn{first}, recent...)
	}
}

// Turns returns a copy of the retained turns in order.
func (m *Memory) Turns() []Turn {
	return append([]Turn(nil), m.turns...)
}

// Recent returns the last n turns (fewer when the log is shorter). Callers
// pass a small n for responder context, independent of the memory cap.
func (m *Memory) Recent(n int) []Turn {
	if n >= len(m.turns) {
		return m.Turns()
	}
	return append([]Turn(nil), m.turns[len(m.turns)-n:]...)
}

// Len returns the number of retained turns.
func (m *Memory) Len() int {
	return len(m.turns)
}

// Clear empties the memory.
func (m *Memory) Clear() {
	m.turns = nil
}

// HistoryText renders the retained turns as role-labeled lines for the
// response generator, annotating the emotion tag when present.
func (m *Memory) HistoryText() string {
	return RenderTurns(m.turns)
}

// RenderTurns formats turns the way HistoryText does, for callers that work
// on a Recent() slice.
func RenderTurns(turns []Turn) string {
	var sb strings.Builder
	for _, t := range turns {
		role := "المستخدم"
		if t.Role == RoleAssistant {
			role = "المعالج"
		}
		if t.Emotion != "" {
			fmt.Fprintf(&sb, "%s [%s]: %s\n", role, t.Emotion, t.Content)
		} else {
			fmt.Fprintf(&sb, "%s: %s\n", role, t.Content)
		}
	}
	return sb.String()
}

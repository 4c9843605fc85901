// Package session ties the pipeline together: each session owns a bounded
// conversation memory and shares the durable mood history, the classifier,
// and the responder.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/db"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/emotion"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/memory"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/mood"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/responder"
)

// recentTurns is how much context feeds the responder per message.
const recentTurns = 6

// Session is one conversation. The memory is session-scoped; everything else
// is shared process state.
type Session struct {
	ID     string
	Memory *memory.Memory

	mu sync.Mutex
}

// Turns returns a copy of the session's conversation memory.
func (s *Session) Turns() []memory.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Memory.Turns()
}

// ClearMemory wipes the conversation memory. The durable mood history is
// untouched.
func (s *Session) ClearMemory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Memory.Clear()
}

// Manager owns sessions and the shared pipeline components.
type Manager struct {
	store      *mood.Store
	classifier emotion.Classifier
	resp       *responder.Responder
	database   *db.DB
	memoryCap  int

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager wires the shared components. database may be nil in tests;
// interaction logging is skipped then.
func NewManager(store *mood.Store, classifier emotion.Classifier, resp *responder.Responder, database *db.DB, memoryCap int) *Manager {
	return &Manager{
		store:      store,
		classifier: classifier,
		resp:       resp,
		database:   database,
		memoryCap:  memoryCap,
		sessions:   make(map[string]*Session),
	}
}

// Get returns the session for the given ID, creating it if needed. An empty
// ID allocates a fresh session.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id == "" {
		id = uuid.New().String()
	}
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := &Session{
		ID:     id,
		Memory: memory.New(m.memoryCap),
	}
	m.sessions[id] = s
	return s
}

// Result is the outcome of one processed message.
type Result struct {
	SessionID      string
	Classification emotion.Result
	Reply          string
	MoodScore      int
	Followup       string
}

// HandleMessage runs the full pipeline for one user message: classify,
// generate the reply, persist the mood entry, then record both turns in the
// session memory. The mood entry is durable before memory is updated, so a
// crash never loses a scored message that already got a reply.
func (m *Manager) HandleMessage(ctx context.Context, s *Session, text string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cls := m.classifier.Classify(text)

	history := memory.RenderTurns(s.Memory.Recent(recentTurns))
	reply := m.resp.Reply(ctx, text, cls.Emotion, history)

	entry, err := m.store.Append(cls.Emotion, cls.RoundedConfidence(), text, reply)
	if err != nil {
		return nil, fmt.Errorf("appending mood entry: %w", err)
	}

	s.Memory.Append(memory.RoleUser, text, cls.Emotion)
	s.Memory.Append(memory.RoleAssistant, reply, "")

	if m.database != nil {
		if err := m.database.LogInteraction(
			uuid.New().String(), s.ID, string(cls.Emotion),
			cls.RoundedConfidence(), cls.Source, entry.UserText,
		); err != nil {
			log.Warn().Err(err).Str("session", s.ID).Msg("failed to log interaction")
		}
	}

	return &Result{
		SessionID:      s.ID,
		Classification: cls,
		Reply:          reply,
		MoodScore:      entry.MoodScore,
		Followup:       responder.Followup(cls.Emotion),
	}, nil
}

// Store exposes the shared mood history.
func (m *Manager) Store() *mood.Store {
	return m.store
}

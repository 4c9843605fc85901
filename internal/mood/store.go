package mood

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/emotion"
)

// exportHeader is the fixed column order for delimited exports, matching the
// persisted record field order.
var exportHeader = []string{
	"timestamp", "date", "time", "emotion", "confidence",
	"user_text", "ai_response", "mood_score",
}

// Store is the durable ordered mood log. Entries are append-only; the only
// destructive operation is ClearAll. Every successful Append or ClearAll
// leaves the on-disk file identical to the in-memory log before returning.
// The model is one writer per store instance; the mutex only guards against
// accidental concurrent handler calls.
type Store struct {
	mu      sync.Mutex
	path    string
	entries []Entry
	now     func() time.Time
}

// OpenStore loads the history file at path. A missing or unparsable file
// degrades to an empty log; a later Append persists from that empty state.
func OpenStore(path string) *Store {
	s := &Store{path: path, now: time.Now}

	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return s
	}
	s.entries = entries
	return s
}

// Append records a classified turn and persists the full log synchronously.
// The entry is not kept in memory unless the write succeeds.
func (s *Store) Append(label emotion.Label, confidence float64, userText, replyText string) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := NewEntry(s.now(), label, confidence, userText, replyText)
	next := append(append([]Entry(nil), s.entries...), entry)
	if err := s.persist(next); err != nil {
		return Entry{}, fmt.Errorf("persisting mood entry: %w", err)
	}
	s.entries = next
	return entry, nil
}

// Window returns the entries whose event time falls within the trailing
// span of the given number of days. The result preserves insertion order.
func (s *Store) Window(days int) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().AddDate(0, 0, -days)
	var out []Entry
	for _, e := range s.entries {
		if !e.Timestamp.Before(cutoff) {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the total number of stored entries, letting callers tell an
// empty store apart from an empty window.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// ExportCSV serializes the full log as delimited text with a header row.
// Read-only with respect to the store.
func (s *Store) ExportCSV() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("writing export header: %w", err)
	}
	for _, e := range s.entries {
		row := []string{
			e.Timestamp.Format(time.RFC3339),
			e.Date,
			e.Time,
			string(e.Emotion),
			strconv.FormatFloat(e.Confidence, 'f', -1, 64),
			e.UserText,
			e.AIResponse,
			strconv.Itoa(e.MoodScore),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("writing export row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing export: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportJSON serializes the full log as a structured-text array of records.
func (s *Store) ExportJSON() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return marshalEntries(s.entries)
}

// ClearAll empties the log and persists the empty state. The caller gates
// this behind an explicit confirmation.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(nil); err != nil {
		return fmt.Errorf("persisting cleared history: %w", err)
	}
	s.entries = nil
	return nil
}

// Prune drops entries older than the cutoff and persists the result. Used by
// the retention job; not part of the caller-facing append-only contract.
func (s *Store) Prune(cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var kept []Entry
	for _, e := range s.entries {
		if !e.Timestamp.Before(cutoff) {
			kept = append(kept, e)
		}
	}
	dropped := len(s.entries) - len(kept)
	if dropped == 0 {
		return 0, nil
	}
	if err := s.persist(kept); err != nil {
		return 0, fmt.Errorf("persisting pruned history: %w", err)
	}
	s.entries = kept
	return dropped, nil
}

func (s *Store) persist(entries []Entry) error {
	data, err := marshalEntries(entries)
	if err != nil {
		return err
	}
	return WriteFileAtomic(s.path, data)
}

func marshalEntries(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling mood history: %w", err)
	}
	return data, nil
}

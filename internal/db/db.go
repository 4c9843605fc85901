package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
-- Interaction audit log (one row per processed message)
CREATE TABLE IF NOT EXISTS interaction_log (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    interaction_id TEXT UNIQUE NOT NULL,
    session_id TEXT NOT NULL,
    emotion TEXT NOT NULL,
    confidence REAL NOT NULL,
    source TEXT NOT NULL,
    user_text TEXT NOT NULL,
    created_at TEXT NOT NULL
);

-- Exercise completion progress
CREATE TABLE IF NOT EXISTS exercise_progress (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id TEXT NOT NULL,
    category TEXT NOT NULL,
    exercise TEXT NOT NULL,
    rating INTEGER,
    completed_at TEXT NOT NULL
);

-- Scheduler job tracking
CREATE TABLE IF NOT EXISTS scheduler_runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    job_type TEXT NOT NULL,
    status TEXT NOT NULL,
    started_at TEXT NOT NULL,
    completed_at TEXT,
    error_message TEXT
);

CREATE INDEX IF NOT EXISTS idx_interaction_session ON interaction_log(session_id);
CREATE INDEX IF NOT EXISTS idx_interaction_date ON interaction_log(created_at);
CREATE INDEX IF NOT EXISTS idx_progress_session ON exercise_progress(session_id, category);
CREATE INDEX IF NOT EXISTS idx_scheduler_job ON scheduler_runs(job_type, started_at);
`

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

func (db *DB) migrate() error {
	_, err := db.conn.Exec(schema)
	if err != nil {
		return fmt.Errorf("executing migration: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

// InteractionRecord is one row of the interaction audit log.
type InteractionRecord struct {
	InteractionID string
	SessionID     string
	Emotion       string
	Confidence    float64
	Source        string
	UserText      string
	CreatedAt     time.Time
}

// LogInteraction records one processed message. UserText is expected to be
// truncated by the caller before it reaches storage.
func (db *DB) LogInteraction(interactionID, sessionID, emotion string, confidence float64, source, userText string) error {
	_, err := db.conn.Exec(`
		INSERT INTO interaction_log (interaction_id, session_id, emotion, confidence, source, user_text, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, interactionID, sessionID, emotion, confidence, source, userText, time.Now().UTC().Format(time.RFC3339))
	return err
}

// GetRecentInteractions returns interactions for a session since a given
// time, newest first.
func (db *DB) GetRecentInteractions(sessionID string, since time.Time) ([]InteractionRecord, error) {
	rows, err := db.conn.Query(`
		SELECT interaction_id, session_id, emotion, confidence, source, user_text, created_at
		FROM interaction_log
		WHERE session_id = ? AND created_at >= ?
		ORDER BY created_at DESC
		LIMIT 100
	`, sessionID, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []InteractionRecord
	for rows.Next() {
		var r InteractionRecord
		var createdStr string
		if err := rows.Scan(&r.InteractionID, &r.SessionID, &r.Emotion, &r.Confidence, &r.Source, &r.UserText, &createdStr); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdStr)
		records = append(records, r)
	}
	return records, rows.Err()
}

// PruneInteractions deletes interaction rows older than the cutoff and
// returns the number removed.
func (db *DB) PruneInteractions(cutoff time.Time) (int64, error) {
	result, err := db.conn.Exec(`
		DELETE FROM interaction_log WHERE created_at < ?
	`, cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// CompletionRecord is one exercise completion.
type CompletionRecord struct {
	ID          int64
	SessionID   string
	Category    string
	Exercise    string
	Rating      int
	CompletedAt time.Time
}

// RecordExerciseCompletion stores a completed exercise; rating 0 means the
// user skipped the rating step.
func (db *DB) RecordExerciseCompletion(sessionID, category, exercise string, rating int) error {
	var r sql.NullInt64
	if rating > 0 {
		r = sql.NullInt64{Int64: int64(rating), Valid: true}
	}
	_, err := db.conn.Exec(`
		INSERT INTO exercise_progress (session_id, category, exercise, rating, completed_at)
		VALUES (?, ?, ?, ?, ?)
	`, sessionID, category, exercise, r, time.Now().UTC().Format(time.RFC3339))
	return err
}

// GetExerciseProgress returns completions for a session, newest first.
func (db *DB) GetExerciseProgress(sessionID string, since *time.Time) ([]CompletionRecord, error) {
	query := `SELECT id, session_id, category, exercise, rating, completed_at
		FROM exercise_progress WHERE session_id = ?`
	args := []interface{}{sessionID}

	if since != nil {
		query += ` AND completed_at >= ?`
		args = append(args, since.UTC().Format(time.RFC3339))
	}
	query += ` ORDER BY completed_at DESC LIMIT 200`

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []CompletionRecord
	for rows.Next() {
		var c CompletionRecord
		var rating sql.NullInt64
		var completedStr string
		if err := rows.Scan(&c.ID, &c.SessionID, &c.Category, &c.Exercise, &rating, &completedStr); err != nil {
			return nil, err
		}
		if rating.Valid {
			c.Rating = int(rating.Int64)
		}
		c.CompletedAt, _ = time.Parse(time.RFC3339, completedStr)
		records = append(records, c)
	}
	return records, rows.Err()
}

// SchedulerRun tracks a scheduler job execution
type SchedulerRun struct {
	ID           int64
	JobType      string
	Status       string
	StartedAt    time.Time
	CompletedAt  *time.Time
	ErrorMessage string
}

// StartSchedulerRun records the start of a scheduler job
func (db *DB) StartSchedulerRun(jobType string) (int64, error) {
	result, err := db.conn.Exec(`
		INSERT INTO scheduler_runs (job_type, status, started_at)
		VALUES (?, 'running', ?)
	`, jobType, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// CompleteSchedulerRun marks a scheduler job as completed
func (db *DB) CompleteSchedulerRun(runID int64, errMsg string) error {
	status := "completed"
	if errMsg != "" {
		status = "failed"
	}
	_, err := db.conn.Exec(`
		UPDATE scheduler_runs
		SET status = ?, completed_at = ?, error_message = ?
		WHERE id = ?
	`, status, time.Now().UTC().Format(time.RFC3339), errMsg, runID)
	return err
}

// GetLastSchedulerRun returns the last run for a job type
func (db *DB) GetLastSchedulerRun(jobType string) (*SchedulerRun, error) {
	var run SchedulerRun
	var startedStr string
	var completedStr, errMsg sql.NullString
	err := db.conn.QueryRow(`
		SELECT id, job_type, status, started_at, completed_at, error_message
		FROM scheduler_runs
		WHERE job_type = ?
		ORDER BY started_at DESC
		LIMIT 1
	`, jobType).Scan(&run.ID, &run.JobType, &run.Status, &startedStr, &completedStr, &errMsg)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	run.StartedAt, _ = time.Parse(time.RFC3339, startedStr)
	if completedStr.Valid {
		t, _ := time.Parse(time.RFC3339, completedStr.String)
		run.CompletedAt = &t
	}
	if errMsg.Valid {
		run.ErrorMessage = errMsg.String
	}
	return &run, nil
}

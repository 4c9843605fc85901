package scheduler

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/db"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/mood"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/responder"
)

func setupTestScheduler(t *testing.T) (*Scheduler, *mood.Store, *db.DB, string) {
	t.Helper()

	tmpDir := t.TempDir()

	database, err := db.Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	store := mood.OpenStore(filepath.Join(tmpDir, "mood_history.json"))
	resp, err := responder.New(context.Background(), "", "")
	if err != nil {
		t.Fatalf("creating responder: %v", err)
	}

	s, err := New(database, store, resp, Config{
		Timezone:      "UTC",
		RetentionDays: 365,
		BackupDir:     filepath.Join(tmpDir, "backups"),
	})
	if err != nil {
		t.Fatalf("creating scheduler: %v", err)
	}

	return s, store, database, tmpDir
}

func TestRunBackupNow(t *testing.T) {
	s, store, database, tmpDir := setupTestScheduler(t)

	if _, err := store.Append("happiness", 0.8, "مبسوط اليوم", "جميل"); err != nil {
		t.Fatalf("appending entry: %v", err)
	}

	if err := s.RunBackupNow(); err != nil {
		t.Fatalf("RunBackupNow() error: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(tmpDir, "backups", "mood_history_*.json"))
	if err != nil {
		t.Fatalf("globbing backups: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 backup file, got %d", len(matches))
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("reading backup: %v", err)
	}
	if len(data) == 0 {
		t.Error("backup file is empty")
	}

	run, err := database.GetLastSchedulerRun("mood-backup")
	if err != nil {
		t.Fatalf("reading run record: %v", err)
	}
	if run == nil {
		t.Fatal("expected a recorded run")
	}
	if run.Status != "completed" {
		t.Errorf("run status = %q, want completed", run.Status)
	}
}

func TestRunRetentionNow(t *testing.T) {
	s, store, database, _ := setupTestScheduler(t)

	if _, err := store.Append("sadness", 0.6, "حزين", "معلش"); err != nil {
		t.Fatalf("appending entry: %v", err)
	}

	if err := s.RunRetentionNow(); err != nil {
		t.Fatalf("RunRetentionNow() error: %v", err)
	}

	// A fresh entry survives a 365-day retention window.
	if store.Len() != 1 {
		t.Errorf("store has %d entries after prune, want 1", store.Len())
	}

	run, err := database.GetLastSchedulerRun("retention-prune")
	if err != nil {
		t.Fatalf("reading run record: %v", err)
	}
	if run == nil {
		t.Fatal("expected a recorded run")
	}
	if run.Status != "completed" {
		t.Errorf("run status = %q, want completed", run.Status)
	}
}

func TestTrimBackups(t *testing.T) {
	s, _, _, tmpDir := setupTestScheduler(t)

	backupDir := filepath.Join(tmpDir, "backups")
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		t.Fatalf("creating backup dir: %v", err)
	}

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < backupKeep+3; i++ {
		day := base.AddDate(0, 0, i).Format("2006-01-02")
		path := filepath.Join(backupDir, "mood_history_"+day+".json")
		if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
			t.Fatalf("writing snapshot: %v", err)
		}
	}

	if err := s.trimBackups(); err != nil {
		t.Fatalf("trimBackups() error: %v", err)
	}

	matches, _ := filepath.Glob(filepath.Join(backupDir, "mood_history_*.json"))
	if len(matches) != backupKeep {
		t.Fatalf("expected %d snapshots after trim, got %d", backupKeep, len(matches))
	}

	// The oldest snapshots are the ones removed.
	oldest := filepath.Join(backupDir, "mood_history_"+base.Format("2006-01-02")+".json")
	if _, err := os.Stat(oldest); !os.IsNotExist(err) {
		t.Error("expected oldest snapshot to be removed")
	}
}

func TestSchedulerStartStop(t *testing.T) {
	s, _, _, _ := setupTestScheduler(t)

	if err := s.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop() error: %v", err)
	}
}

package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"

	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/db"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/mood"
	"github.com/AMRSAEEDBADWAY/rafiq-server/internal/responder"
)

const backupKeep = 14

// Scheduler manages the recurring maintenance jobs: retention pruning,
// mood history backups, and responder health checks.
type Scheduler struct {
	scheduler gocron.Scheduler
	db        *db.DB
	store     *mood.Store
	resp      *responder.Responder
	timezone  *time.Location

	retentionDays int
	backupDir     string
}

// Config holds scheduler configuration.
type Config struct {
	Timezone      string
	RetentionDays int
	BackupDir     string
}

// New creates a new scheduler.
func New(database *db.DB, store *mood.Store, resp *responder.Responder, cfg Config) (*Scheduler, error) {
	tz, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		tz = time.UTC
	}

	s, err := gocron.NewScheduler(gocron.WithLocation(tz))
	if err != nil {
		return nil, err
	}

	return &Scheduler{
		scheduler:     s,
		db:            database,
		store:         store,
		resp:          resp,
		timezone:      tz,
		retentionDays: cfg.RetentionDays,
		backupDir:     cfg.BackupDir,
	}, nil
}

// Start registers all jobs and starts the scheduler.
func (s *Scheduler) Start() error {
	// Retention prune daily at 03:00
	_, err := s.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0))),
		gocron.NewTask(s.runRetention),
		gocron.WithName("retention-prune"),
	)
	if err != nil {
		return err
	}

	// Mood history backup daily at 04:00
	_, err = s.scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(4, 0, 0))),
		gocron.NewTask(s.runBackup),
		gocron.WithName("mood-backup"),
	)
	if err != nil {
		return err
	}

	// Responder health check every 5 minutes
	_, err = s.scheduler.NewJob(
		gocron.DurationJob(5*time.Minute),
		gocron.NewTask(s.healthCheck),
		gocron.WithName("health-check"),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()
	log.Info().Msg("scheduler started")
	return nil
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *Scheduler) runRetention() {
	if err := s.RunRetentionNow(); err != nil {
		log.Error().Err(err).Msg("retention prune failed")
	}
}

// RunRetentionNow prunes mood history entries and interaction log rows older
// than the retention window, recording the run in the database.
func (s *Scheduler) RunRetentionNow() error {
	runID, err := s.db.StartSchedulerRun("retention-prune")
	if err != nil {
		return fmt.Errorf("recording run start: %w", err)
	}

	cutoff := time.Now().In(s.timezone).AddDate(0, 0, -s.retentionDays)

	dropped, err := s.store.Prune(cutoff)
	if err != nil {
		s.db.CompleteSchedulerRun(runID, err.Error())
		return fmt.Errorf("pruning mood history: %w", err)
	}

	rows, err := s.db.PruneInteractions(cutoff)
	if err != nil {
		s.db.CompleteSchedulerRun(runID, err.Error())
		return fmt.Errorf("pruning interaction log: %w", err)
	}

	if err := s.db.CompleteSchedulerRun(runID, ""); err != nil {
		return fmt.Errorf("recording run completion: %w", err)
	}

	log.Info().
		Int("mood_entries_dropped", dropped).
		Int64("interactions_dropped", rows).
		Time("cutoff", cutoff).
		Msg("retention prune completed")
	return nil
}

func (s *Scheduler) runBackup() {
	if err := s.RunBackupNow(); err != nil {
		log.Error().Err(err).Msg("mood history backup failed")
	}
}

// RunBackupNow writes a dated snapshot of the mood history into the backup
// directory and removes snapshots beyond the most recent backupKeep.
func (s *Scheduler) RunBackupNow() error {
	runID, err := s.db.StartSchedulerRun("mood-backup")
	if err != nil {
		return fmt.Errorf("recording run start: %w", err)
	}

	data, err := s.store.ExportJSON()
	if err != nil {
		s.db.CompleteSchedulerRun(runID, err.Error())
		return fmt.Errorf("exporting mood history: %w", err)
	}

	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		s.db.CompleteSchedulerRun(runID, err.Error())
		return fmt.Errorf("creating backup dir: %w", err)
	}

	day := time.Now().In(s.timezone).Format("2006-01-02")
	path := filepath.Join(s.backupDir, "mood_history_"+day+".json")
	if err := mood.WriteFileAtomic(path, data); err != nil {
		s.db.CompleteSchedulerRun(runID, err.Error())
		return fmt.Errorf("writing backup: %w", err)
	}

	if err := s.trimBackups(); err != nil {
		log.Warn().Err(err).Msg("trimming old backups failed")
	}

	if err := s.db.CompleteSchedulerRun(runID, ""); err != nil {
		return fmt.Errorf("recording run completion: %w", err)
	}

	log.Info().Str("path", path).Msg("mood history backup completed")
	return nil
}

// trimBackups deletes the oldest snapshots once more than backupKeep exist.
// Date-stamped filenames sort chronologically.
func (s *Scheduler) trimBackups() error {
	matches, err := filepath.Glob(filepath.Join(s.backupDir, "mood_history_*.json"))
	if err != nil {
		return err
	}
	if len(matches) <= backupKeep {
		return nil
	}
	for _, old := range matches[:len(matches)-backupKeep] {
		if err := os.Remove(old); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scheduler) healthCheck() {
	if s.resp.FallbackOnly() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.resp.HealthCheck(ctx); err != nil {
		log.Warn().Err(err).Msg("responder health check failed")
	}
}

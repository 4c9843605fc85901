package config

import (
	"os"
	"testing"
)

func clearEnv() {
	for _, key := range []string{
		"RAFIQ_PORT", "RAFIQ_DATA_DIR", "RAFIQ_DB_PATH",
		"GEMINI_API_KEY", "GEMINI_MODEL", "RAFIQ_TIMEZONE",
		"RAFIQ_LOG_LEVEL", "RAFIQ_LOG_FORMAT",
		"RAFIQ_RETENTION_DAYS", "RAFIQ_MEMORY_CAP", "EMOTION_MODEL_ENABLED",
	} {
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("default port should be 8080, got %s", cfg.Port)
	}
	if cfg.DataDir != "data" {
		t.Errorf("default data dir should be data, got %s", cfg.DataDir)
	}
	if cfg.DBPath != "data/rafiq.db" {
		t.Errorf("default db path should derive from data dir, got %s", cfg.DBPath)
	}
	if cfg.GeminiModel != "gemini-2.5-flash" {
		t.Errorf("default model should be gemini-2.5-flash, got %s", cfg.GeminiModel)
	}
	if cfg.Timezone != "Africa/Cairo" {
		t.Errorf("default timezone should be Africa/Cairo, got %s", cfg.Timezone)
	}
	if cfg.RetentionDays != 365 {
		t.Errorf("default retention should be 365 days, got %d", cfg.RetentionDays)
	}
	if cfg.MemoryCap != 15 {
		t.Errorf("default memory cap should be 15, got %d", cfg.MemoryCap)
	}
	if cfg.ModelEnabled {
		t.Error("model should be disabled by default")
	}
	if cfg.MoodHistoryPath() != "data/mood_history.json" {
		t.Errorf("unexpected mood history path %s", cfg.MoodHistoryPath())
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv()
	os.Setenv("RAFIQ_PORT", "9090")
	os.Setenv("RAFIQ_DATA_DIR", "/tmp/rafiq")
	os.Setenv("RAFIQ_RETENTION_DAYS", "30")
	os.Setenv("RAFIQ_MEMORY_CAP", "20")
	defer clearEnv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("loading config: %v", err)
	}

	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if cfg.DBPath != "/tmp/rafiq/rafiq.db" {
		t.Errorf("expected db path under data dir, got %s", cfg.DBPath)
	}
	if cfg.RetentionDays != 30 {
		t.Errorf("expected retention 30, got %d", cfg.RetentionDays)
	}
	if cfg.MemoryCap != 20 {
		t.Errorf("expected memory cap 20, got %d", cfg.MemoryCap)
	}
}

func TestLoadConfigInvalidValues(t *testing.T) {
	cases := map[string]string{
		"RAFIQ_RETENTION_DAYS":  "abc",
		"RAFIQ_MEMORY_CAP":      "1",
		"RAFIQ_TIMEZONE":        "Not/AZone",
		"EMOTION_MODEL_ENABLED": "true",
	}
	for key, val := range cases {
		clearEnv()
		os.Setenv(key, val)
		if _, err := Load(); err == nil {
			t.Errorf("expected error for %s=%s", key, val)
		}
	}
	clearEnv()
}

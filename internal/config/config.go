package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DataDir       string
	DBPath        string
	GeminiAPIKey  string
	GeminiModel   string
	Timezone      string
	LogLevel      string
	LogFormat     string
	RetentionDays int
	MemoryCap     int
	ModelEnabled  bool
}

func Load() (*Config, error) {
	// Missing .env is fine, env vars may come from the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("RAFIQ_PORT", "8080"),
		DataDir:      getEnv("RAFIQ_DATA_DIR", "data"),
		DBPath:       getEnv("RAFIQ_DB_PATH", ""),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		Timezone:     getEnv("RAFIQ_TIMEZONE", "Africa/Cairo"),
		LogLevel:     getEnv("RAFIQ_LOG_LEVEL", "info"),
		LogFormat:    getEnv("RAFIQ_LOG_FORMAT", "json"),
	}

	var err error
	cfg.RetentionDays, err = getEnvInt("RAFIQ_RETENTION_DAYS", 365)
	if err != nil {
		return nil, err
	}
	cfg.MemoryCap, err = getEnvInt("RAFIQ_MEMORY_CAP", 15)
	if err != nil {
		return nil, err
	}
	cfg.ModelEnabled, err = getEnvBool("EMOTION_MODEL_ENABLED", false)
	if err != nil {
		return nil, err
	}

	if cfg.DBPath == "" {
		cfg.DBPath = cfg.DataDir + "/rafiq.db"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("RAFIQ_DATA_DIR is required")
	}
	if c.RetentionDays < 1 {
		return fmt.Errorf("RAFIQ_RETENTION_DAYS must be positive, got %d", c.RetentionDays)
	}
	if c.MemoryCap < 2 {
		return fmt.Errorf("RAFIQ_MEMORY_CAP must be at least 2, got %d", c.MemoryCap)
	}
	if c.ModelEnabled {
		return fmt.Errorf("EMOTION_MODEL_ENABLED=true but no sentiment model backend is configured")
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid RAFIQ_TIMEZONE %q: %w", c.Timezone, err)
	}
	return nil
}

// MoodHistoryPath is the location of the durable mood history file.
func (c *Config) MoodHistoryPath() string {
	return c.DataDir + "/mood_history.json"
}

// BackupDir is where scheduled history backups are written.
func (c *Config) BackupDir() string {
	return c.DataDir + "/backups"
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, val)
	}
	return n, nil
}

func getEnvBool(key string, defaultVal bool) (bool, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, val)
	}
	return b, nil
}

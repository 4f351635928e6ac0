package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all application configuration. Values come from
// environment variables (cmd entry points load .env via godotenv
// first); every field has a working default so the server starts with
// no configuration at all.
type Config struct {
	Port    string // HTTP listen port
	DataDir string // root for uploads, catalog CSV and the database

	Analyzer string // "remote", "local" or "mock"

	// Remote analyzer (OpenAI-compatible endpoint)
	APIKey             string
	APIBaseURL         string
	TranscriptionModel string
	AnalysisModel      string

	// Local analyzer (sherpa-onnx model directory)
	ModelDir string

	// Optional YAML file overriding the feedback phrasing table
	FeedbackRulesPath string

	// Retention for uploaded audio and attempt history
	Retention     time.Duration
	SweepInterval time.Duration
}

// Load builds a Config from the environment.
func Load() *Config {
	cfg := &Config{
		Port:               getenv("PORT", "8080"),
		DataDir:            getenv("DATA_DIR", "data"),
		Analyzer:           getenv("ANALYZER", "remote"),
		APIKey:             os.Getenv("OPENAI_API_KEY"),
		APIBaseURL:         os.Getenv("OPENAI_BASE_URL"),
		TranscriptionModel: getenv("TRANSCRIPTION_MODEL", "whisper-1"),
		AnalysisModel:      getenv("ANALYSIS_MODEL", "gpt-4o-mini"),
		ModelDir:           getenv("MODEL_DIR", "models/sherpa-onnx-zipformer-en-2023-06-26"),
		FeedbackRulesPath:  os.Getenv("FEEDBACK_RULES"),
		Retention:          time.Duration(getenvInt("RETENTION_HOURS", 72)) * time.Hour,
		SweepInterval:      time.Duration(getenvInt("SWEEP_INTERVAL_MINUTES", 30)) * time.Minute,
	}
	return cfg
}

// UploadDir returns the directory uploaded audio is written to.
func (c *Config) UploadDir() string {
	return filepath.Join(c.DataDir, "uploads")
}

// CatalogPath returns the path to the video catalog CSV.
func (c *Config) CatalogPath() string {
	return filepath.Join(c.DataDir, "videos.csv")
}

// DatabasePath returns the path to the SQLite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "talkcoach.db")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

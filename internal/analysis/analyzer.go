package analysis

import (
	"context"
	"fmt"
	"log"
	"strings"

	"talkcoach/internal/config"
)

// Analyzer runs a normalized audio clip through a pretrained
// speech-analysis model and returns the field mapping it produced.
type Analyzer interface {
	Analyze(ctx context.Context, audioPath string) (Metadata, error)
	Close() error
}

// New picks an analyzer implementation from the configuration.
func New(cfg *config.Config) (Analyzer, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Analyzer)) {
	case "mock":
		return MockAnalyzer{}, nil
	case "local":
		return NewLocalAnalyzer(cfg.ModelDir)
	case "", "remote":
		if cfg.APIKey == "" {
			log.Println("Warning: OPENAI_API_KEY not set, using mock analyzer")
			return MockAnalyzer{}, nil
		}
		return NewRemoteAnalyzer(cfg), nil
	default:
		return nil, fmt.Errorf("unknown analyzer: %s", cfg.Analyzer)
	}
}

// MockAnalyzer returns a canned mapping. Used in tests and when no
// model is configured.
type MockAnalyzer struct{}

func (MockAnalyzer) Analyze(ctx context.Context, audioPath string) (Metadata, error) {
	return Metadata{
		KeyTranscript:     "This is a placeholder transcript.",
		KeyEmotion:        "Neutral",
		KeyAccent:         "American",
		KeyGender:         "Unknown",
		KeyAge:            "Unknown",
		KeySpeechActivity: "Speech",
	}, nil
}

func (MockAnalyzer) Close() error { return nil }

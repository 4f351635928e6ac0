// Command analyze runs a single audio file through the same
// normalize → analyze → feedback path as the server and prints the
// result as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"talkcoach/internal/analysis"
	"talkcoach/internal/audio"
	"talkcoach/internal/config"
	"talkcoach/internal/feedback"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	var keepWav bool
	flag.BoolVar(&keepWav, "keep-wav", false, "keep the normalized WAV file")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [-keep-wav] <audio-file>\n", os.Args[0])
		os.Exit(1)
	}
	inputPath := flag.Arg(0)

	if !audio.IsSupportedFormat(inputPath) {
		log.Fatalf("Unsupported audio format: %s", inputPath)
	}

	cfg := config.Load()

	analyzer, err := analysis.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create analyzer: %v", err)
	}
	defer analyzer.Close()

	wavPath := filepath.Join(os.TempDir(), "talkcoach_normalized.wav")
	if err := audio.Normalize(inputPath, wavPath); err != nil {
		log.Fatalf("Failed to normalize audio: %v", err)
	}
	if !keepWav {
		defer os.Remove(wavPath)
	}

	metadata, err := analyzer.Analyze(context.Background(), wavPath)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	phrases := feedback.DefaultPhrases()
	if cfg.FeedbackRulesPath != "" {
		phrases, err = feedback.LoadPhrases(cfg.FeedbackRulesPath)
		if err != nil {
			log.Fatalf("Failed to load feedback rules: %v", err)
		}
	}
	mapper := feedback.NewMapper(phrases)

	out := struct {
		Metadata analysis.Metadata `json:"metadata"`
		Feedback string            `json:"feedback"`
	}{
		Metadata: metadata,
		Feedback: mapper.Feedback(metadata),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal result: %v", err)
	}
	fmt.Println(string(data))
}

package feedback

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"talkcoach/internal/analysis"
)

func TestFeedback_AngerMentionsTense(t *testing.T) {
	m := NewMapper(nil)
	got := m.Feedback(analysis.Metadata{analysis.KeyEmotion: "Anger"})
	if !strings.Contains(got, "tense") {
		t.Errorf("Expected feedback to contain 'tense', got %q", got)
	}
}

func TestFeedback_OtherAccentMentionsRefinement(t *testing.T) {
	m := NewMapper(nil)
	got := m.Feedback(analysis.Metadata{analysis.KeyAccent: "Other"})
	if !strings.Contains(got, "refinement") {
		t.Errorf("Expected feedback to contain 'refinement', got %q", got)
	}
}

func TestFeedback_AgreementSlipMentionsGrammar(t *testing.T) {
	m := NewMapper(nil)
	got := m.Feedback(analysis.Metadata{analysis.KeyTranscript: "I has a grammar issue"})
	if !strings.Contains(got, "grammar") {
		t.Errorf("Expected feedback to contain 'grammar', got %q", got)
	}
}

func TestFeedback_NoSpeechShortCircuits(t *testing.T) {
	m := NewMapper(nil)
	got := m.Feedback(analysis.Metadata{
		analysis.KeySpeechActivity: "No speech",
		analysis.KeyEmotion:        "Anger",
	})
	if !strings.Contains(got, "speech") {
		t.Errorf("Expected no-speech feedback, got %q", got)
	}
	if strings.Contains(got, "tense") {
		t.Errorf("Did not expect emotion feedback for a silent clip, got %q", got)
	}
}

func TestFeedback_CleanClipGetsPraise(t *testing.T) {
	m := NewMapper(nil)
	got := m.Feedback(analysis.Metadata{
		analysis.KeyTranscript: "She goes to work every day.",
		analysis.KeyEmotion:    "Neutral",
		analysis.KeyAccent:     "American",
	})
	if got != DefaultPhrases().AllGood {
		t.Errorf("Expected the all-good phrase, got %q", got)
	}
}

func TestFeedback_IsPure(t *testing.T) {
	m := NewMapper(nil)
	md := analysis.Metadata{
		analysis.KeyTranscript: "They has many books",
		analysis.KeyEmotion:    "Anger",
		analysis.KeyAccent:     "Other",
	}

	first := m.Feedback(md)
	for i := 0; i < 10; i++ {
		if got := m.Feedback(md); got != first {
			t.Fatalf("Feedback is not deterministic: %q vs %q", first, got)
		}
	}

	// combined rules all fire
	for _, want := range []string{"tense", "refinement", "grammar"} {
		if !strings.Contains(first, want) {
			t.Errorf("Expected combined feedback to contain %q, got %q", want, first)
		}
	}
}

func TestHasAgreementSlip(t *testing.T) {
	tests := []struct {
		transcript string
		want       bool
	}{
		{"I has a pen", true},
		{"He have two brothers", true},
		{"They is here now.", true},
		{"I have a pen", false},
		{"She goes home", false},
		{"", false},
		{"It's nice, he said.", false},
	}

	for _, tt := range tests {
		t.Run(tt.transcript, func(t *testing.T) {
			if got := hasAgreementSlip(tt.transcript); got != tt.want {
				t.Errorf("hasAgreementSlip(%q) = %v, want %v", tt.transcript, got, tt.want)
			}
		})
	}
}

func TestLoadPhrases_Override(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrases.yaml")
	content := "grammar: Mind your grammar next time.\nemotions:\n  Happy: Lovely energy in this clip.\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write phrases file: %v", err)
	}

	phrases, err := LoadPhrases(path)
	if err != nil {
		t.Fatalf("LoadPhrases failed: %v", err)
	}

	if phrases.Grammar != "Mind your grammar next time." {
		t.Errorf("Expected grammar override, got %q", phrases.Grammar)
	}
	if phrases.Emotions["Happy"] != "Lovely energy in this clip." {
		t.Errorf("Expected Happy emotion override, got %q", phrases.Emotions["Happy"])
	}
	// defaults preserved
	if !strings.Contains(phrases.Emotions["Anger"], "tense") {
		t.Errorf("Expected default Anger phrase to survive, got %q", phrases.Emotions["Anger"])
	}
	if phrases.NoSpeech == "" {
		t.Error("Expected default no-speech phrase to survive")
	}
}

func TestLoadPhrases_MissingFile(t *testing.T) {
	if _, err := LoadPhrases(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing phrases file")
	}
}

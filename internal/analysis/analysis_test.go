package analysis

import (
	"context"
	"math"
	"testing"
)

func TestParseModelJSON(t *testing.T) {
	reply := `{"Emotion":"Anger","Accent":"Other","Gender":"Male","Age":"Thirties","SpeechActivity":"Speech"}`

	m, err := ParseModelJSON(reply)
	if err != nil {
		t.Fatalf("ParseModelJSON failed: %v", err)
	}
	if m[KeyEmotion] != "Anger" {
		t.Errorf("Expected Emotion=Anger, got %q", m[KeyEmotion])
	}
	if m[KeyAccent] != "Other" {
		t.Errorf("Expected Accent=Other, got %q", m[KeyAccent])
	}
}

func TestParseModelJSON_StripsCodeFence(t *testing.T) {
	reply := "```json\n{\"Emotion\":\"Happy\"}\n```"

	m, err := ParseModelJSON(reply)
	if err != nil {
		t.Fatalf("ParseModelJSON failed: %v", err)
	}
	if m[KeyEmotion] != "Happy" {
		t.Errorf("Expected Emotion=Happy, got %q", m[KeyEmotion])
	}
}

func TestParseModelJSON_DropsUnknownKeys(t *testing.T) {
	reply := `{"Emotion":"Neutral","Confidence":"0.9","Notes":"extra"}`

	m, err := ParseModelJSON(reply)
	if err != nil {
		t.Fatalf("ParseModelJSON failed: %v", err)
	}

	known := map[string]bool{}
	for _, k := range Keys {
		known[k] = true
	}
	for k := range m {
		if !known[k] {
			t.Errorf("Unexpected key in metadata: %q", k)
		}
	}
	if len(m) != 1 {
		t.Errorf("Expected 1 key, got %d", len(m))
	}
}

func TestParseModelJSON_NoJSON(t *testing.T) {
	if _, err := ParseModelJSON("sorry, I cannot help with that"); err == nil {
		t.Error("Expected error for reply without JSON")
	}
}

func TestHasSpeech(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"speech", "Speech", true},
		{"no speech", "No speech", false},
		{"lowercase", "no speech", false},
		{"bare no", "No", false},
		{"silence", "Silence", false},
		{"unknown", "Unknown", true},
		{"noisy speech", "noisy speech", true},
		{"absent", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Metadata{}
			if tt.value != "" {
				m[KeySpeechActivity] = tt.value
			}
			if got := m.HasSpeech(); got != tt.want {
				t.Errorf("HasSpeech() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpeechRatio_Silence(t *testing.T) {
	samples := make([]float32, 16000)
	if r := SpeechRatio(samples, 16000); r != 0 {
		t.Errorf("Expected 0 ratio for silence, got %f", r)
	}
	if label := SpeechActivityLabel(samples, 16000); label != "No speech" {
		t.Errorf("Expected 'No speech', got %q", label)
	}
}

func TestSpeechRatio_Tone(t *testing.T) {
	samples := make([]float32, 16000)
	for i := range samples {
		samples[i] = 0.5 * float32(math.Sin(2*math.Pi*440*float64(i)/16000))
	}

	r := SpeechRatio(samples, 16000)
	if r < 0.9 {
		t.Errorf("Expected ratio near 1 for a loud tone, got %f", r)
	}
	if label := SpeechActivityLabel(samples, 16000); label != "Speech" {
		t.Errorf("Expected 'Speech', got %q", label)
	}
}

func TestSpeechRatio_Empty(t *testing.T) {
	if r := SpeechRatio(nil, 16000); r != 0 {
		t.Errorf("Expected 0 ratio for empty input, got %f", r)
	}
}

func TestMockAnalyzer(t *testing.T) {
	m, err := MockAnalyzer{}.Analyze(context.Background(), "ignored.wav")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if m[KeyTranscript] == "" {
		t.Error("Expected mock transcript")
	}
	if !m.HasSpeech() {
		t.Error("Expected mock metadata to report speech")
	}
}

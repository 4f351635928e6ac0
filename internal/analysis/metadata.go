package analysis

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Metadata field keys. The analysis instruction asks the model for
// exactly these fields; nothing outside this list is ever returned to
// a client.
const (
	KeyTranscript     = "Transcript"
	KeyEmotion        = "Emotion"
	KeyAccent         = "Accent"
	KeyGender         = "Gender"
	KeyAge            = "Age"
	KeySpeechActivity = "SpeechActivity"
)

// Keys is the fixed instruction list, in presentation order.
var Keys = []string{KeyTranscript, KeyEmotion, KeyAccent, KeyGender, KeyAge, KeySpeechActivity}

// Metadata maps the fixed field keys to model output values.
type Metadata map[string]string

// Get returns the value for a key, or "" if absent.
func (m Metadata) Get(key string) string {
	return m[key]
}

// HasSpeech reports whether the model detected speech in the clip. A
// missing SpeechActivity field counts as speech so a provider that
// does not fill the field never suppresses feedback.
func (m Metadata) HasSpeech() bool {
	switch strings.ToLower(strings.TrimSpace(m[KeySpeechActivity])) {
	case "no speech", "no", "none", "silence":
		return false
	}
	return true
}

// ParseModelJSON decodes a field mapping from a model reply, keeping
// only the fixed keys. Models wrap JSON in code fences often enough
// that the fences are stripped first.
func ParseModelJSON(reply string) (Metadata, error) {
	raw := extractJSON(reply)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in model reply")
	}

	var fields map[string]string
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, fmt.Errorf("failed to parse model reply: %w", err)
	}

	m := Metadata{}
	for _, key := range Keys {
		if v, ok := fields[key]; ok && v != "" {
			m[key] = v
		}
	}
	return m, nil
}

// extractJSON returns the first top-level JSON object in s.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return ""
	}
	return s[start : end+1]
}

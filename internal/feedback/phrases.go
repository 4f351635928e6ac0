package feedback

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Phrases is the phrasing table the mapper composes feedback from.
// A YAML file can override any of it; missing entries keep their
// defaults.
type Phrases struct {
	NoSpeech string            `yaml:"no_speech"`
	Emotions map[string]string `yaml:"emotions"`
	Accents  map[string]string `yaml:"accents"`
	Grammar  string            `yaml:"grammar"`
	AllGood  string            `yaml:"all_good"`
}

// DefaultPhrases returns the built-in phrasing table.
func DefaultPhrases() *Phrases {
	return &Phrases{
		NoSpeech: "We could not detect any speech in your recording. Please try again closer to the microphone.",
		Emotions: map[string]string{
			"Anger": "You sound a bit tense. Try to relax and speak in a calm, even tone.",
			"Sad":   "Your delivery sounds low in energy. Try to bring some brightness into your voice.",
		},
		Accents: map[string]string{
			"Other": "Your accent could use some refinement. Keep practicing along with the lesson videos.",
		},
		Grammar: "Watch your grammar: check the subject-verb agreement in your sentence.",
		AllGood: "Great job. Clear speech and natural delivery. Keep it up.",
	}
}

// LoadPhrases reads a YAML phrasing file and merges it over the
// defaults.
func LoadPhrases(path string) (*Phrases, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read phrases file: %w", err)
	}

	var override Phrases
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("failed to parse phrases file: %w", err)
	}

	phrases := DefaultPhrases()
	if override.NoSpeech != "" {
		phrases.NoSpeech = override.NoSpeech
	}
	if override.Grammar != "" {
		phrases.Grammar = override.Grammar
	}
	if override.AllGood != "" {
		phrases.AllGood = override.AllGood
	}
	for k, v := range override.Emotions {
		phrases.Emotions[k] = v
	}
	for k, v := range override.Accents {
		phrases.Accents[k] = v
	}
	return phrases, nil
}

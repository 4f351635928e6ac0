package feedback

import (
	"strings"

	"talkcoach/internal/analysis"
)

// Mapper turns an analysis metadata mapping into a short feedback
// string. The mapping is a fixed rule table: the same metadata always
// produces the same string.
type Mapper struct {
	phrases *Phrases
}

// NewMapper creates a Mapper. A nil phrases table uses the defaults.
func NewMapper(phrases *Phrases) *Mapper {
	if phrases == nil {
		phrases = DefaultPhrases()
	}
	return &Mapper{phrases: phrases}
}

// Feedback derives the feedback string for the given metadata.
func (m *Mapper) Feedback(md analysis.Metadata) string {
	if !md.HasSpeech() {
		return m.phrases.NoSpeech
	}

	var parts []string

	if phrase, ok := m.phrases.Emotions[md.Get(analysis.KeyEmotion)]; ok {
		parts = append(parts, phrase)
	}
	if phrase, ok := m.phrases.Accents[md.Get(analysis.KeyAccent)]; ok {
		parts = append(parts, phrase)
	}
	if hasAgreementSlip(md.Get(analysis.KeyTranscript)) {
		parts = append(parts, m.phrases.Grammar)
	}

	if len(parts) == 0 {
		return m.phrases.AllGood
	}
	return strings.Join(parts, " ")
}

// badPairs are subject-verb pairs that indicate an agreement slip.
var badPairs = [][2]string{
	{"i", "has"}, {"i", "is"}, {"i", "does"}, {"i", "goes"},
	{"you", "has"}, {"you", "is"}, {"you", "does"},
	{"he", "have"}, {"he", "are"}, {"he", "do"}, {"he", "go"},
	{"she", "have"}, {"she", "are"}, {"she", "do"}, {"she", "go"},
	{"it", "have"}, {"it", "are"}, {"it", "do"},
	{"we", "has"}, {"we", "is"}, {"we", "does"},
	{"they", "has"}, {"they", "is"}, {"they", "does"},
}

// hasAgreementSlip scans the transcript for known subject-verb
// agreement mistakes.
func hasAgreementSlip(transcript string) bool {
	words := strings.Fields(strings.ToLower(transcript))
	for i := 0; i+1 < len(words); i++ {
		w1 := strings.Trim(words[i], ".,!?;:'\"")
		w2 := strings.Trim(words[i+1], ".,!?;:'\"")
		for _, pair := range badPairs {
			if w1 == pair[0] && w2 == pair[1] {
				return true
			}
		}
	}
	return false
}

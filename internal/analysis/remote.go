package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"talkcoach/internal/config"
)

// analysisInstruction is the fixed instruction handed to the model
// along with the transcript. The keys it names are the only ones kept
// from the reply.
const analysisInstruction = `You are a speech-analysis model. Given the transcript of a short
spoken-English practice clip, return a JSON object with exactly these
string fields: Emotion (one of Neutral, Happy, Anger, Sad), Accent
(one of American, British, Indian, Other), Gender, Age (a decade such
as "Twenties"), SpeechActivity ("Speech" or "No speech"). Return only
the JSON object.`

// RemoteAnalyzer calls an OpenAI-compatible endpoint: one
// transcription request, then one instructed completion that returns
// the remaining fields as JSON.
type RemoteAnalyzer struct {
	cli                *openai.Client
	transcriptionModel string
	analysisModel      string
}

// NewRemoteAnalyzer creates a RemoteAnalyzer from the configuration.
func NewRemoteAnalyzer(cfg *config.Config) *RemoteAnalyzer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.APIBaseURL != "" {
		clientConfig.BaseURL = cfg.APIBaseURL
	}
	return &RemoteAnalyzer{
		cli:                openai.NewClientWithConfig(clientConfig),
		transcriptionModel: cfg.TranscriptionModel,
		analysisModel:      cfg.AnalysisModel,
	}
}

// Analyze transcribes the clip and asks the model for the remaining
// metadata fields.
func (r *RemoteAnalyzer) Analyze(ctx context.Context, audioPath string) (Metadata, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	resp, err := r.cli.CreateTranscription(ctx, openai.AudioRequest{
		Model:    r.transcriptionModel,
		FilePath: audioPath,
	})
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	transcript := strings.TrimSpace(resp.Text)
	if transcript == "" {
		// Nothing was said; skip the second call.
		return Metadata{KeySpeechActivity: "No speech"}, nil
	}

	completion, err := r.cli.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: r.analysisModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analysisInstruction},
			{Role: openai.ChatMessageRoleUser, Content: transcript},
		},
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("empty analysis result")
	}

	metadata, err := ParseModelJSON(completion.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}
	metadata[KeyTranscript] = transcript
	if _, ok := metadata[KeySpeechActivity]; !ok {
		metadata[KeySpeechActivity] = "Speech"
	}
	return metadata, nil
}

func (r *RemoteAnalyzer) Close() error { return nil }

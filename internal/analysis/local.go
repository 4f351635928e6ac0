package analysis

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	sherpa "github.com/k2-fsa/sherpa-onnx-go/sherpa_onnx"

	"talkcoach/internal/audio"
)

// ModelConfig holds the file layout of a sherpa-onnx transducer model.
type ModelConfig struct {
	ModelPath   string // base directory for the model
	EncoderPath string
	DecoderPath string
	JoinerPath  string
	TokensPath  string
	NumThreads  int
	SampleRate  int
}

// NewModelConfig creates a configuration from a model directory,
// detecting the model files (int8 quantized versions preferred).
func NewModelConfig(modelDir string) (*ModelConfig, error) {
	config := &ModelConfig{
		ModelPath:  modelDir,
		NumThreads: 2,
		SampleRate: audio.TargetSampleRate,
	}

	encoderPath := findModelFile(modelDir, []string{
		"encoder-epoch-99-avg-1.int8.onnx",
		"encoder.int8.onnx",
		"encoder-epoch-99-avg-1.onnx",
		"encoder.onnx",
	})
	if encoderPath == "" {
		return nil, fmt.Errorf("encoder model not found in %s", modelDir)
	}
	config.EncoderPath = encoderPath

	decoderPath := findModelFile(modelDir, []string{
		"decoder-epoch-99-avg-1.onnx",
		"decoder.onnx",
	})
	if decoderPath == "" {
		return nil, fmt.Errorf("decoder model not found in %s", modelDir)
	}
	config.DecoderPath = decoderPath

	joinerPath := findModelFile(modelDir, []string{
		"joiner-epoch-99-avg-1.int8.onnx",
		"joiner.int8.onnx",
		"joiner-epoch-99-avg-1.onnx",
		"joiner.onnx",
	})
	if joinerPath == "" {
		return nil, fmt.Errorf("joiner model not found in %s", modelDir)
	}
	config.JoinerPath = joinerPath

	tokensPath := findModelFile(modelDir, []string{"tokens.txt"})
	if tokensPath == "" {
		return nil, fmt.Errorf("tokens.txt not found in %s", modelDir)
	}
	config.TokensPath = tokensPath

	return config, nil
}

// findModelFile returns the first candidate that exists in dir.
func findModelFile(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// LocalAnalyzer runs the sherpa-onnx offline transducer. It fills the
// Transcript and SpeechActivity fields; the speaker-attribute fields
// need the remote model and are left absent.
type LocalAnalyzer struct {
	config     *ModelConfig
	recognizer *sherpa.OfflineRecognizer
}

// NewLocalAnalyzer creates a LocalAnalyzer for the model in modelDir.
func NewLocalAnalyzer(modelDir string) (*LocalAnalyzer, error) {
	config, err := NewModelConfig(modelDir)
	if err != nil {
		return nil, fmt.Errorf("invalid model config: %w", err)
	}

	sherpaConfig := sherpa.OfflineRecognizerConfig{
		FeatConfig: sherpa.FeatureConfig{
			SampleRate: config.SampleRate,
			FeatureDim: 80,
		},
		ModelConfig: sherpa.OfflineModelConfig{
			Transducer: sherpa.OfflineTransducerModelConfig{
				Encoder: config.EncoderPath,
				Decoder: config.DecoderPath,
				Joiner:  config.JoinerPath,
			},
			Tokens:     config.TokensPath,
			NumThreads: config.NumThreads,
			Debug:      0,
		},
	}

	recognizer := sherpa.NewOfflineRecognizer(&sherpaConfig)
	if recognizer == nil {
		return nil, fmt.Errorf("failed to create offline recognizer")
	}

	return &LocalAnalyzer{config: config, recognizer: recognizer}, nil
}

// Analyze transcribes a normalized WAV file.
func (l *LocalAnalyzer) Analyze(ctx context.Context, audioPath string) (Metadata, error) {
	samples, sampleRate, err := audio.ReadWav(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file: %w", err)
	}

	activity := SpeechActivityLabel(samples, sampleRate)
	if activity == "No speech" {
		return Metadata{KeySpeechActivity: activity}, nil
	}

	stream := sherpa.NewOfflineStream(l.recognizer)
	defer sherpa.DeleteOfflineStream(stream)

	stream.AcceptWaveform(sampleRate, samples)
	l.recognizer.Decode(stream)
	result := stream.GetResult()

	return Metadata{
		KeyTranscript:     result.Text,
		KeySpeechActivity: activity,
	}, nil
}

// Close releases resources used by the recognizer.
func (l *LocalAnalyzer) Close() error {
	if l.recognizer != nil {
		sherpa.DeleteOfflineRecognizer(l.recognizer)
		l.recognizer = nil
	}
	return nil
}

package audio

import (
	"fmt"
	"mime"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// TargetSampleRate is the sample rate the analysis models expect.
const TargetSampleRate = 16000

// AllowedContentTypes lists the declared content types accepted on
// upload. Anything else is rejected before the file is touched.
var AllowedContentTypes = []string{"audio/wav", "audio/mpeg"}

// IsAllowedContentType checks the declared content type of an upload.
// Parameters (e.g. "; charset=...") are ignored.
func IsAllowedContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	for _, allowed := range AllowedContentTypes {
		if mediaType == allowed {
			return true
		}
	}
	return false
}

// SupportedFormats lists audio file extensions that can be normalized.
var SupportedFormats = []string{".wav", ".mp3"}

// IsSupportedFormat checks if the file extension is a supported audio format
func IsSupportedFormat(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, format := range SupportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}

// Normalize converts an audio file to 16kHz mono WAV at outputPath.
// WAV input is handled in-process; compressed formats go through
// ffmpeg.
func Normalize(inputPath, outputPath string) error {
	if strings.ToLower(filepath.Ext(inputPath)) == ".wav" {
		return NormalizeWav(inputPath, outputPath)
	}
	return ConvertToWav(inputPath, outputPath)
}

// ConvertToWav converts an audio file to WAV format (16kHz, mono)
// using ffmpeg.
func ConvertToWav(inputPath, outputPath string) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return fmt.Errorf("ffmpeg not found: please install ffmpeg to convert audio files")
	}

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// -ar 16000: sample rate 16kHz
	// -ac 1: mono channel
	// -f wav: output format
	// -y: overwrite output file
	cmd := exec.Command("ffmpeg",
		"-i", inputPath,
		"-ar", fmt.Sprintf("%d", TargetSampleRate),
		"-ac", "1",
		"-f", "wav",
		"-y",
		outputPath,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg conversion failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}

// Duration returns the duration of an audio file in seconds via
// ffprobe. For plain WAV files WavDuration avoids the subprocess.
func Duration(inputPath string) (float64, error) {
	if strings.ToLower(filepath.Ext(inputPath)) == ".wav" {
		return WavDuration(inputPath)
	}

	if _, err := exec.LookPath("ffprobe"); err != nil {
		return 0, fmt.Errorf("ffprobe not found: please install ffmpeg")
	}

	cmd := exec.Command("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "csv=p=0",
		inputPath,
	)

	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("failed to get audio duration: %w", err)
	}

	var duration float64
	_, err = fmt.Sscanf(strings.TrimSpace(string(output)), "%f", &duration)
	if err != nil {
		return 0, fmt.Errorf("failed to parse duration: %w", err)
	}

	return duration, nil
}

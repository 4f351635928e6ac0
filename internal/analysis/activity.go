package analysis

import "math"

const (
	activityWindowSec = 0.1
	// RMS below this counts a window as silence
	activityThreshold = 0.01
	// fraction of active windows needed to call the clip speech
	activityMinRatio = 0.05
)

// SpeechRatio returns the fraction of 100ms windows whose RMS energy
// is above the silence threshold.
func SpeechRatio(samples []float32, sampleRate int) float64 {
	if len(samples) == 0 || sampleRate <= 0 {
		return 0
	}

	windowSize := int(float64(sampleRate) * activityWindowSec)
	if windowSize < 1 {
		windowSize = 1
	}

	var windows, active int
	for start := 0; start < len(samples); start += windowSize {
		end := start + windowSize
		if end > len(samples) {
			end = len(samples)
		}
		var sum float64
		for _, s := range samples[start:end] {
			sum += float64(s) * float64(s)
		}
		rms := math.Sqrt(sum / float64(end-start))
		windows++
		if rms > activityThreshold {
			active++
		}
	}

	if windows == 0 {
		return 0
	}
	return float64(active) / float64(windows)
}

// SpeechActivityLabel maps the speech ratio to the SpeechActivity
// field values the remote model uses.
func SpeechActivityLabel(samples []float32, sampleRate int) string {
	if SpeechRatio(samples, sampleRate) >= activityMinRatio {
		return "Speech"
	}
	return "No speech"
}

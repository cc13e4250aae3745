package debug

import (
	"fmt"
	"math"
)

// AudioAnalyzer measures rendered audio buffers.
type AudioAnalyzer struct {
	clippingThreshold float32
	dcThreshold       float32
	silenceThreshold  float32
}

// NewAudioAnalyzer creates a new audio analyzer with default settings.
func NewAudioAnalyzer() *AudioAnalyzer {
	return &AudioAnalyzer{
		clippingThreshold: 0.999,
		dcThreshold:       0.01,
		silenceThreshold:  0.0001,
	}
}

// AnalysisResult contains the results of audio buffer analysis.
type AnalysisResult struct {
	Samples        int
	Peak           float32
	RMS            float32
	DC             float32
	ClippedSamples int
	Silent         bool
	NaNCount       int
	// RisingCrossings counts upward zero crossings, one per cycle of a
	// periodic signal.
	RisingCrossings int
}

// Clipping reports whether any sample reached the clipping threshold.
func (r AnalysisResult) Clipping() bool {
	return r.ClippedSamples > 0
}

// EstimateFrequency returns the fundamental implied by the rising zero
// crossings, or 0 for an empty result.
func (r AnalysisResult) EstimateFrequency(sampleRate float64) float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.RisingCrossings) * sampleRate / float64(r.Samples)
}

// String summarises the result on one line.
func (r AnalysisResult) String() string {
	return fmt.Sprintf("samples=%d peak=%.3f rms=%.3f dc=%.4f clipped=%d nan=%d",
		r.Samples, r.Peak, r.RMS, r.DC, r.ClippedSamples, r.NaNCount)
}

// Analyze measures buffer.
func (a *AudioAnalyzer) Analyze(buffer []float32) AnalysisResult {
	result := AnalysisResult{Samples: len(buffer)}
	if len(buffer) == 0 {
		return result
	}

	var sum, sumSquares float64
	last := float32(0)
	for i, sample := range buffer {
		if math.IsNaN(float64(sample)) {
			result.NaNCount++
			continue
		}

		abs := float32(math.Abs(float64(sample)))
		if abs > result.Peak {
			result.Peak = abs
		}
		if abs >= a.clippingThreshold {
			result.ClippedSamples++
		}

		sum += float64(sample)
		sumSquares += float64(sample) * float64(sample)

		if i > 0 && last < 0 && sample >= 0 {
			result.RisingCrossings++
		}
		last = sample
	}

	n := float64(len(buffer))
	result.RMS = float32(math.Sqrt(sumSquares / n))
	result.DC = float32(sum / n)
	result.Silent = result.RMS < a.silenceThreshold
	return result
}

// Check returns a description of each problem found in buffer.
func (a *AudioAnalyzer) Check(buffer []float32, name string) []string {
	var issues []string
	result := a.Analyze(buffer)

	if result.NaNCount > 0 {
		issues = append(issues, fmt.Sprintf("%s: contains %d NaN values", name, result.NaNCount))
	}
	if result.Peak > 1.0 {
		issues = append(issues, fmt.Sprintf("%s: peak exceeds 1.0 (%.3f)", name, result.Peak))
	} else if result.Clipping() {
		issues = append(issues, fmt.Sprintf("%s: clipping detected (%d samples)", name, result.ClippedSamples))
	}
	if math.Abs(float64(result.DC)) > float64(a.dcThreshold) {
		issues = append(issues, fmt.Sprintf("%s: DC offset detected (%.3f)", name, result.DC))
	}
	if result.Silent {
		issues = append(issues, fmt.Sprintf("%s: silent", name))
	}
	return issues
}

// Package detector provides face expression detection interfaces and types.
package detector

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/mathan44862/ai-recommendation-system/internal/emotion"
)

// Face is one detected face in a frame, with per-expression confidences.
type Face struct {
	Box         image.Rectangle `json:"box"`
	Confidence  float64         `json:"confidence"`
	Expressions emotion.Scores  `json:"expressions"`
}

// Detector defines the interface for face expression detectors.
type Detector interface {
	// Load prepares the detector's model assets. It must succeed before
	// Detect is called; a failed load leaves the detector unusable.
	Load() error

	// Detect analyzes a video frame and returns detected faces in the
	// detector's own ordering. Returns an empty slice when no face is found.
	Detect(frame *gocv.Mat) ([]Face, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for face expression detection.
type Config struct {
	// ModelDir is the base directory holding model assets.
	ModelDir string

	// MaxFaces is the maximum number of faces to detect (default: 4).
	MaxFaces int

	// MinConfidence is the minimum face detection confidence (0.0-1.0).
	MinConfidence float64
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		ModelDir:      "models",
		MaxFaces:      4,
		MinConfidence: 0.5,
	}
}

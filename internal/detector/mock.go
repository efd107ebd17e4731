package detector

import (
	"image"

	"gocv.io/x/gocv"

	"github.com/mathan44862/ai-recommendation-system/internal/emotion"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control load and detection results.
type MockDetector struct {
	faces   []Face
	err     error
	loadErr error
	loaded  bool
	closed  bool
	detects int
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetFaces sets the faces that will be returned by Detect.
func (m *MockDetector) SetFaces(faces []Face) {
	m.faces = faces
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// SetLoadError sets the error that will be returned by Load.
func (m *MockDetector) SetLoadError(err error) {
	m.loadErr = err
}

// Load records the load attempt and returns the configured error, if any.
func (m *MockDetector) Load() error {
	if m.loadErr != nil {
		return m.loadErr
	}
	m.loaded = true
	return nil
}

// Loaded reports whether Load succeeded.
func (m *MockDetector) Loaded() bool {
	return m.loaded
}

// Detect returns the pre-configured faces or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]Face, error) {
	m.detects++
	if m.err != nil {
		return nil, m.err
	}
	return m.faces, nil
}

// Detects returns how many times Detect was called.
func (m *MockDetector) Detects() int {
	return m.detects
}

// Close marks the detector closed.
func (m *MockDetector) Close() error {
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockDetector) Closed() bool {
	return m.closed
}

// HappyFace returns a preset Face with a clearly happy expression profile.
func HappyFace() Face {
	return Face{
		Box:        image.Rect(180, 90, 460, 370),
		Confidence: 0.97,
		Expressions: emotion.Scores{
			emotion.Happy:     0.82,
			emotion.Neutral:   0.10,
			emotion.Sad:       0.08,
			emotion.Angry:     0.00,
			emotion.Fearful:   0.00,
			emotion.Disgusted: 0.00,
			emotion.Surprised: 0.00,
		},
	}
}

// NeutralFace returns a preset Face with a neutral expression in the
// 40-60% band.
func NeutralFace() Face {
	return Face{
		Box:        image.Rect(200, 100, 440, 360),
		Confidence: 0.95,
		Expressions: emotion.Scores{
			emotion.Neutral:   0.45,
			emotion.Happy:     0.30,
			emotion.Sad:       0.25,
			emotion.Angry:     0.00,
			emotion.Fearful:   0.00,
			emotion.Disgusted: 0.00,
			emotion.Surprised: 0.00,
		},
	}
}

// SadFace returns a preset Face dominated by sadness.
func SadFace() Face {
	return Face{
		Box:        image.Rect(190, 110, 450, 380),
		Confidence: 0.94,
		Expressions: emotion.Scores{
			emotion.Sad:       0.55,
			emotion.Happy:     0.25,
			emotion.Angry:     0.20,
			emotion.Neutral:   0.00,
			emotion.Fearful:   0.00,
			emotion.Disgusted: 0.00,
			emotion.Surprised: 0.00,
		},
	}
}

// TiedFace returns a preset Face whose top expressions carry equal scores,
// for exercising deterministic tie-breaking.
func TiedFace() Face {
	return Face{
		Box:        image.Rect(210, 120, 430, 350),
		Confidence: 0.90,
		Expressions: emotion.Scores{
			emotion.Happy: 0.40,
			emotion.Sad:   0.40,
			emotion.Angry: 0.20,
		},
	}
}

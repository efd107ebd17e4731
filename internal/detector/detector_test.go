package detector

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"

	"github.com/mathan44862/ai-recommendation-system/internal/emotion"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.ModelDir == "" {
		t.Error("DefaultConfig() ModelDir is empty")
	}
	if cfg.MaxFaces <= 0 {
		t.Errorf("DefaultConfig() MaxFaces = %d, want > 0", cfg.MaxFaces)
	}
	if cfg.MinConfidence <= 0 || cfg.MinConfidence > 1 {
		t.Errorf("DefaultConfig() MinConfidence = %v, want in (0,1]", cfg.MinConfidence)
	}
}

func TestMockDetector(t *testing.T) {
	mock := NewMockDetector()
	mock.SetFaces([]Face{HappyFace()})

	if err := mock.Load(); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !mock.Loaded() {
		t.Error("Loaded() = false after successful Load()")
	}

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	faces, err := mock.Detect(&frame)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if len(faces) != 1 {
		t.Fatalf("Detect() returned %d faces, want 1", len(faces))
	}

	label, _, ok := faces[0].Expressions.Dominant()
	if !ok || label != emotion.Happy {
		t.Errorf("dominant expression = %q, want %q", label, emotion.Happy)
	}

	mock.SetError(errors.New("boom"))
	if _, err := mock.Detect(&frame); err == nil {
		t.Error("Detect() error = nil, want configured error")
	}

	mock.Close()
	if !mock.Closed() {
		t.Error("Closed() = false after Close()")
	}
}

func TestMockDetector_LoadError(t *testing.T) {
	mock := NewMockDetector()
	mock.SetLoadError(errors.New("assets unreachable"))

	if err := mock.Load(); err == nil {
		t.Fatal("Load() error = nil, want configured error")
	}
	if mock.Loaded() {
		t.Error("Loaded() = true after failed Load()")
	}
}

func TestServiceDetector_LoadMissingModels(t *testing.T) {
	d := NewServiceDetector(Config{ModelDir: "/nonexistent/models"})

	if err := d.Load(); err == nil {
		t.Fatal("Load() error = nil, want error for missing model dir")
	}
}

func TestServiceDetector_DetectBeforeLoad(t *testing.T) {
	d := NewServiceDetector(DefaultConfig())

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	if _, err := d.Detect(&frame); err == nil {
		t.Fatal("Detect() before Load error = nil, want error")
	}
}

func TestJSONFace_ToFace(t *testing.T) {
	var jf jsonFace
	jf.Box.X = 10
	jf.Box.Y = 20
	jf.Box.Width = 100
	jf.Box.Height = 120
	jf.Confidence = 0.9
	jf.Expressions = map[string]float64{"happy": 0.8, "sad": 0.2}

	face := jf.toFace()

	if face.Box.Min.X != 10 || face.Box.Min.Y != 20 {
		t.Errorf("Box.Min = %v, want (10,20)", face.Box.Min)
	}
	if face.Box.Dx() != 100 || face.Box.Dy() != 120 {
		t.Errorf("Box size = %dx%d, want 100x120", face.Box.Dx(), face.Box.Dy())
	}
	if face.Expressions[emotion.Happy] != 0.8 {
		t.Errorf("Expressions[happy] = %v, want 0.8", face.Expressions[emotion.Happy])
	}
}

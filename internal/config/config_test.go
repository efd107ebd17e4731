package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.CameraID != 0 {
		t.Errorf("CameraID = %d, want 0", cfg.CameraID)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.SamplePeriod != time.Second {
		t.Errorf("SamplePeriod = %v, want 1s", cfg.SamplePeriod)
	}
	if cfg.GateDelay != 15*time.Second {
		t.Errorf("GateDelay = %v, want 15s", cfg.GateDelay)
	}
	if cfg.ResetPulse != time.Second {
		t.Errorf("ResetPulse = %v, want 1s", cfg.ResetPulse)
	}
	if cfg.PlayerSource == "" {
		t.Error("PlayerSource is empty")
	}
	if cfg.ModelDir == "" {
		t.Error("ModelDir is empty")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CAMERA_ID", "2")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9000")
	t.Setenv("SAMPLE_PERIOD_MS", "250")
	t.Setenv("GATE_DELAY_MS", "5000")
	t.Setenv("PLAYER_SOURCE", "https://example.com/embed/x")

	cfg := Load()

	if cfg.CameraID != 2 {
		t.Errorf("CameraID = %d, want 2", cfg.CameraID)
	}
	if cfg.ListenAddr != "127.0.0.1:9000" {
		t.Errorf("ListenAddr = %q, want 127.0.0.1:9000", cfg.ListenAddr)
	}
	if cfg.SamplePeriod != 250*time.Millisecond {
		t.Errorf("SamplePeriod = %v, want 250ms", cfg.SamplePeriod)
	}
	if cfg.GateDelay != 5*time.Second {
		t.Errorf("GateDelay = %v, want 5s", cfg.GateDelay)
	}
	if cfg.PlayerSource != "https://example.com/embed/x" {
		t.Errorf("PlayerSource = %q", cfg.PlayerSource)
	}
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("CAMERA_ID", "not-a-number")

	cfg := Load()

	if cfg.CameraID != 0 {
		t.Errorf("CameraID = %d, want fallback 0", cfg.CameraID)
	}
}

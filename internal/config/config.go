// Package config loads mood watcher settings from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings. Every field has a default, so an empty
// environment yields a working configuration.
type Config struct {
	CameraID     int
	ModelDir     string
	PlayerSource string
	ListenAddr   string
	SamplePeriod time.Duration
	GateDelay    time.Duration
	ResetPulse   time.Duration
}

// Load reads an optional .env file and then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		CameraID:     getEnvInt("CAMERA_ID", 0),
		ModelDir:     getEnv("MODEL_DIR", "models"),
		PlayerSource: getEnv("PLAYER_SOURCE", "https://www.youtube.com/embed/UyVqlnvRiNc?autoplay=1"),
		ListenAddr:   getEnv("LISTEN_ADDR", ":8080"),
		SamplePeriod: getEnvMs("SAMPLE_PERIOD_MS", 1000),
		GateDelay:    getEnvMs("GATE_DELAY_MS", 15000),
		ResetPulse:   getEnvMs("RESET_PULSE_MS", 1000),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvMs(key string, fallbackMs int) time.Duration {
	return time.Duration(getEnvInt(key, fallbackMs)) * time.Millisecond
}

// Package app wires the webcam, expression detector, and embedded player
// into the mood watcher's sampling and playback-gate lifecycle.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mathan44862/ai-recommendation-system/internal/capture"
	"github.com/mathan44862/ai-recommendation-system/internal/detector"
	"github.com/mathan44862/ai-recommendation-system/internal/emotion"
	"github.com/mathan44862/ai-recommendation-system/internal/player"
)

// Default task timings.
const (
	// DefaultSamplePeriod is how often the current frame is sampled for
	// expressions.
	DefaultSamplePeriod = 1000 * time.Millisecond
	// DefaultGateDelay is how long after start the playback gate fires.
	DefaultGateDelay = 15000 * time.Millisecond
	// DefaultResetPulse is the gap between clearing and restoring the
	// player source during the gate's stop sequence.
	DefaultResetPulse = 1000 * time.Millisecond
)

// Config holds configuration options for the application.
type Config struct {
	CameraID     int
	ModelDir     string
	PlayerSource string
	SamplePeriod time.Duration
	GateDelay    time.Duration
	ResetPulse   time.Duration
}

// Snapshot is an immutable view of the application state, consumed by the
// presentation surfaces.
type Snapshot struct {
	SessionID        string        `json:"session_id"`
	Label            string        `json:"label"`
	Dominant         emotion.Label `json:"dominant"`
	PlayerSource     string        `json:"player_source"`
	VideoStopped     bool          `json:"video_stopped"`
	DetectionStopped bool          `json:"detection_stopped"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// App owns the mood-sampling loop, the playback gate, and the state the
// presentation renders.
type App struct {
	config   Config
	camera   capture.Camera
	detector detector.Detector
	player   player.Player

	mu               sync.RWMutex
	sessionID        string
	enabled          bool
	ready            bool
	label            string
	lastDominant     emotion.Label
	videoStopped     bool
	detectionStopped bool
	gateFired        bool
	updatedAt        time.Time

	stopCh     chan struct{}
	gateTimer  *time.Timer
	pulseTimer *time.Timer
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.SamplePeriod <= 0 {
		config.SamplePeriod = DefaultSamplePeriod
	}
	if config.GateDelay <= 0 {
		config.GateDelay = DefaultGateDelay
	}
	if config.ResetPulse <= 0 {
		config.ResetPulse = DefaultResetPulse
	}

	detectorCfg := detector.DefaultConfig()
	if config.ModelDir != "" {
		detectorCfg.ModelDir = config.ModelDir
	}

	return &App{
		config:    config,
		camera:    capture.NewCamera(config.CameraID),
		detector:  detector.NewServiceDetector(detectorCfg),
		player:    player.NewEmbedded(config.PlayerSource),
		sessionID: uuid.NewString(),
		enabled:   true,
	}
}

// SetCamera replaces the camera implementation. Call before Start.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// SetDetector replaces the detector implementation. Call before Start.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetPlayer replaces the player implementation. Call before Start.
func (a *App) SetPlayer(p player.Player) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.player = p
}

// SetEnabled enables or disables mood sampling.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether mood sampling is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// Player returns the embedded player handle.
func (a *App) Player() player.Player {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.player
}

// State returns a snapshot of the current application state.
func (a *App) State() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return Snapshot{
		SessionID:        a.sessionID,
		Label:            a.label,
		Dominant:         a.lastDominant,
		PlayerSource:     a.player.Source(),
		VideoStopped:     a.videoStopped,
		DetectionStopped: a.detectionStopped,
		UpdatedAt:        a.updatedAt,
	}
}

// Start opens the camera, loads the detector models, and launches the
// sampling loop and the playback gate.
//
// Camera and model failures are not fatal: the app keeps running in a
// degraded waiting state, per-tick sampling simply finds nothing to do.
func (a *App) Start() error {
	a.mu.Lock()
	if a.stopCh != nil {
		a.mu.Unlock()
		return nil
	}
	stopCh := make(chan struct{})
	a.stopCh = stopCh
	camera := a.camera
	det := a.detector
	a.mu.Unlock()

	if err := camera.Open(); err != nil {
		log.Printf("Camera unavailable: %v", err)
	}

	ready := false
	if det != nil {
		if err := det.Load(); err != nil {
			log.Printf("Expression models failed to load: %v", err)
		} else {
			ready = true
		}
	}

	a.mu.Lock()
	a.ready = ready
	a.gateTimer = time.AfterFunc(a.config.GateDelay, a.fireGate)
	a.mu.Unlock()

	go a.runSampler(stopCh)

	log.Println("Mood sampling started")
	return nil
}

// Stop cancels both scheduled tasks and releases the camera and detector.
// It is safe to call more than once.
func (a *App) Stop() {
	a.mu.Lock()
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}
	if a.gateTimer != nil {
		a.gateTimer.Stop()
		a.gateTimer = nil
	}
	if a.pulseTimer != nil {
		a.pulseTimer.Stop()
		a.pulseTimer = nil
	}
	camera := a.camera
	det := a.detector
	a.mu.Unlock()

	if err := camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	if det != nil {
		if err := det.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Mood sampling stopped")
}

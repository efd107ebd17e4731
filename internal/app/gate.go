package app

import (
	"log"
	"time"
)

// fireGate is the playback gate's one-shot action, scheduled by Start.
//
// The embedded widget has no stop API, so stopping is emulated by clearing
// its source and restoring it one reset pulse later. Both gate flags become
// true here, exactly once; the sampling loop notices detectionStopped on its
// next tick.
func (a *App) fireGate() {
	a.mu.Lock()
	if a.gateFired {
		a.mu.Unlock()
		return
	}
	a.gateFired = true
	a.videoStopped = true
	a.detectionStopped = true
	a.updatedAt = time.Now()
	p := a.player
	a.mu.Unlock()

	log.Println("Playback gate fired: stopping embedded player and mood sampling")

	p.Deactivate()

	a.mu.Lock()
	if a.stopCh == nil {
		// Torn down between the two phases; leave the player deactivated
		// rather than touch it after teardown.
		a.mu.Unlock()
		return
	}
	a.pulseTimer = time.AfterFunc(a.config.ResetPulse, p.Reactivate)
	a.mu.Unlock()
}

// VideoStopped reports whether the playback gate has stopped the embedded
// player.
func (a *App) VideoStopped() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.videoStopped
}

// DetectionStopped reports whether the playback gate has halted sampling.
func (a *App) DetectionStopped() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detectionStopped
}

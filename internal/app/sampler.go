package app

import (
	"time"

	"github.com/mathan44862/ai-recommendation-system/internal/emotion"
)

// runSampler drives the fixed-period sampling loop until stopCh closes.
// The ticker stays alive while detection is stopped so the gate's effect is
// observed as skipped ticks rather than a torn-down task; the ticker itself
// is released only on teardown.
func (a *App) runSampler(stopCh chan struct{}) {
	ticker := time.NewTicker(a.config.SamplePeriod)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			a.sampleTick()
		}
	}
}

// sampleTick performs one detection pass over the current frame and updates
// the display label.
//
// Any per-tick failure (no frame, detector error, no face) skips the tick
// silently: there is no queue to drain and no backoff, the next tick simply
// tries again.
func (a *App) sampleTick() {
	a.mu.RLock()
	stopped := a.detectionStopped
	enabled := a.enabled
	ready := a.ready
	camera := a.camera
	det := a.detector
	a.mu.RUnlock()

	if stopped || !enabled || !ready || det == nil {
		return
	}

	frame, err := camera.ReadFrame()
	if err != nil {
		return
	}

	faces, err := det.Detect(frame)
	frame.Close()
	if err != nil || len(faces) == 0 {
		return
	}

	// First detected face only; any others are ignored.
	dominant, score, ok := faces[0].Expressions.Dominant()
	if !ok {
		return
	}

	pct := emotion.Percent(score)

	a.mu.Lock()
	defer a.mu.Unlock()

	// De-duplicate on the raw dominant label: a repeated dominant with a
	// different percentage does not refresh the display.
	if dominant == a.lastDominant {
		return
	}

	a.label = emotion.FormatLabel(dominant, pct)
	a.lastDominant = dominant
	a.updatedAt = time.Now()
}

// Package tray provides a system tray interface for the mood watcher.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray application.
type Tray struct {
	onToggle func(enabled bool)
	onQuit   func()
	enabled  bool
	mu       sync.RWMutex

	// Menu items stored for later updates
	menuToggle *systray.MenuItem
	menuMood   *systray.MenuItem
}

// New creates a new Tray instance with sampling enabled by default.
func New() *Tray {
	return &Tray{
		enabled: true,
	}
}

// OnToggle sets the callback invoked when mood sampling is toggled.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnQuit sets the callback invoked when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// UpdateMood updates the mood menu item with the latest display label.
func (t *Tray) UpdateMood(label string) {
	t.mu.RLock()
	item := t.menuMood
	t.mu.RUnlock()

	if item == nil {
		return
	}
	if label == "" {
		label = "Waiting for a face..."
	}
	item.SetTitle("Mood: " + label)
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady sets up the menu structure once the tray is available.
func (t *Tray) onReady() {
	systray.SetTitle("Mood Watcher")
	systray.SetTooltip("Webcam mood sampling")

	t.mu.Lock()
	t.menuMood = systray.AddMenuItem("Mood: Waiting for a face...", "Latest sampled mood")
	t.menuMood.Disable()

	systray.AddSeparator()
	t.menuToggle = systray.AddMenuItem("Pause sampling", "Toggle mood sampling")
	menuQuit := systray.AddMenuItem("Quit", "Stop the mood watcher")
	t.mu.Unlock()

	go t.handleClicks(menuQuit)
}

// handleClicks processes menu item clicks.
func (t *Tray) handleClicks(menuQuit *systray.MenuItem) {
	for {
		select {
		case <-t.menuToggle.ClickedCh:
			t.mu.Lock()
			t.enabled = !t.enabled
			enabled := t.enabled
			toggle := t.onToggle
			if enabled {
				t.menuToggle.SetTitle("Pause sampling")
			} else {
				t.menuToggle.SetTitle("Resume sampling")
			}
			t.mu.Unlock()

			if toggle != nil {
				toggle(enabled)
			}

		case <-menuQuit.ClickedCh:
			t.mu.RLock()
			quit := t.onQuit
			t.mu.RUnlock()

			if quit != nil {
				quit()
			}
			systray.Quit()
			return
		}
	}
}

// onExit is called when the tray shuts down.
func (t *Tray) onExit() {}

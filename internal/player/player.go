// Package player models the embedded media widget the mood watcher controls.
//
// The widget exposes no play/pause/stop API; the only lever is its source
// locator. Stopping is therefore emulated as a two-phase action: Deactivate
// clears the source, and Reactivate restores it after the caller's delay,
// which forces the widget to reset its internal playback state.
package player

import "sync"

// Player is an opaque handle to an embedded media widget, addressed only
// through a settable source locator string.
type Player interface {
	// Source returns the current source locator. Empty while deactivated.
	Source() string

	// Deactivate clears the source locator.
	Deactivate()

	// Reactivate restores the original source locator.
	Reactivate()

	// Active reports whether a source is currently set.
	Active() bool
}

// Embedded is the standard Player implementation: it remembers the original
// source so Reactivate can restore it.
type Embedded struct {
	mu       sync.Mutex
	original string
	current  string
}

// NewEmbedded creates an Embedded player for the given source locator.
func NewEmbedded(source string) *Embedded {
	return &Embedded{
		original: source,
		current:  source,
	}
}

func (p *Embedded) Source() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

func (p *Embedded) Deactivate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = ""
}

func (p *Embedded) Reactivate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.current = p.original
}

func (p *Embedded) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current != ""
}

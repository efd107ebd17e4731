package player

import (
	"sync"
	"time"
)

// Event is one recorded player transition.
type Event struct {
	Name string
	At   time.Time
}

// Recorder is a test Player that records every transition and optionally
// notifies a channel, so timer-driven sequences can be observed.
type Recorder struct {
	mu     sync.Mutex
	source string
	active bool
	events []Event
	notify chan string
}

// NewRecorder creates a Recorder with the given source, initially active.
func NewRecorder(source string) *Recorder {
	return &Recorder{
		source: source,
		active: true,
	}
}

// Notify sets a channel that receives each transition name as it happens.
// The channel should be buffered; sends never block.
func (r *Recorder) Notify(ch chan string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notify = ch
}

func (r *Recorder) Source() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.active {
		return ""
	}
	return r.source
}

func (r *Recorder) Deactivate() {
	r.record("deactivate")
}

func (r *Recorder) Reactivate() {
	r.record("reactivate")
}

func (r *Recorder) Active() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.active
}

// Events returns a copy of all recorded transitions.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) record(name string) {
	r.mu.Lock()
	r.active = name == "reactivate"
	r.events = append(r.events, Event{Name: name, At: time.Now()})
	ch := r.notify
	r.mu.Unlock()

	if ch != nil {
		select {
		case ch <- name:
		default:
		}
	}
}

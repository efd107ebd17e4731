package player

import "testing"

func TestEmbedded_DeactivateReactivate(t *testing.T) {
	const src = "https://www.youtube.com/embed/dQw4w9WgXcQ"

	p := NewEmbedded(src)

	if !p.Active() {
		t.Fatal("Active() = false for a fresh player")
	}
	if got := p.Source(); got != src {
		t.Fatalf("Source() = %q, want %q", got, src)
	}

	p.Deactivate()

	if p.Active() {
		t.Error("Active() = true after Deactivate()")
	}
	if got := p.Source(); got != "" {
		t.Errorf("Source() = %q after Deactivate(), want empty", got)
	}

	p.Reactivate()

	if !p.Active() {
		t.Error("Active() = false after Reactivate()")
	}
	if got := p.Source(); got != src {
		t.Errorf("Source() = %q after Reactivate(), want %q", got, src)
	}
}

func TestEmbedded_ReactivateIdempotent(t *testing.T) {
	const src = "https://example.com/embed/abc"

	p := NewEmbedded(src)
	p.Deactivate()
	p.Reactivate()
	p.Reactivate()

	if got := p.Source(); got != src {
		t.Errorf("Source() = %q, want %q", got, src)
	}
}

func TestRecorder_Events(t *testing.T) {
	r := NewRecorder("src")

	r.Deactivate()
	r.Reactivate()

	events := r.Events()
	if len(events) != 2 {
		t.Fatalf("Events() len = %d, want 2", len(events))
	}
	if events[0].Name != "deactivate" || events[1].Name != "reactivate" {
		t.Errorf("Events() = [%s, %s], want [deactivate, reactivate]", events[0].Name, events[1].Name)
	}
	if !events[1].At.After(events[0].At) && !events[1].At.Equal(events[0].At) {
		t.Error("event timestamps out of order")
	}
}

func TestRecorder_SourceTracksActivation(t *testing.T) {
	r := NewRecorder("src")

	if r.Source() != "src" {
		t.Errorf("Source() = %q, want src", r.Source())
	}
	r.Deactivate()
	if r.Source() != "" {
		t.Errorf("Source() = %q after Deactivate, want empty", r.Source())
	}
	r.Reactivate()
	if r.Source() != "src" {
		t.Errorf("Source() = %q after Reactivate, want src", r.Source())
	}
}

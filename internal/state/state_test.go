package state

import (
	"sync"
	"testing"
	"time"
)

func TestSidebarToggle(t *testing.T) {
	var s Sidebar
	if s.IsOpen() {
		t.Fatal("sidebar starts open")
	}
	if !s.Toggle() || !s.IsOpen() {
		t.Fatal("Toggle did not open the sidebar")
	}
	if s.Toggle() || s.IsOpen() {
		t.Fatal("second Toggle did not close the sidebar")
	}
}

func TestSidebarResize(t *testing.T) {
	var s Sidebar
	s.Toggle()
	if s.Resize(800) {
		t.Fatal("mobile width closed the sidebar")
	}
	if !s.Resize(DesktopWidth + 1) {
		t.Fatal("desktop width did not close the sidebar")
	}
	if s.IsOpen() {
		t.Fatal("sidebar still open")
	}
	if s.Resize(1920) {
		t.Fatal("closed sidebar reported a change")
	}
}

func TestSidebarConcurrentToggle(t *testing.T) {
	var s Sidebar
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Toggle()
		}()
	}
	wg.Wait()
	if s.IsOpen() {
		t.Fatal("an even number of toggles left the sidebar open")
	}
}

func TestExperienceAlert(t *testing.T) {
	a := NewExperienceAlert()
	if a.IsOpen() || a.Type() != DefaultExperienceType {
		t.Fatalf("initial alert = open:%v type:%q", a.IsOpen(), a.Type())
	}
	a.SetType("event_planner")
	a.SetOpen(true)
	if !a.IsOpen() || a.Type() != "event_planner" {
		t.Fatalf("alert = open:%v type:%q", a.IsOpen(), a.Type())
	}
	a.SetOpen(false)
	if a.IsOpen() || a.Type() != "event_planner" {
		t.Fatal("closing the alert changed its type")
	}
}

func TestSessionFocus(t *testing.T) {
	s := newSession("x", time.Now())
	if got := s.StepFocus(-1, 3); got != 2 {
		t.Fatalf("StepFocus(-1) = %d, want 2", got)
	}
	if got := s.StepFocus(1, 3); got != 0 {
		t.Fatalf("StepFocus(+1) = %d, want 0", got)
	}
	if got := s.SetFocus(5, 3); got != 0 {
		t.Fatalf("SetFocus(out of range) = %d, want unchanged 0", got)
	}
	if got := s.SetFocus(1, 3); got != 1 {
		t.Fatalf("SetFocus(1) = %d", got)
	}
}

func TestRegistryGetAndSweep(t *testing.T) {
	r := NewRegistry()
	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	a := r.Get("")
	if a.ID == "" {
		t.Fatal("new session has no ID")
	}
	if b := r.Get(a.ID); b != a {
		t.Fatal("Get(existing) returned a different session")
	}
	if c := r.Get("unknown"); c == a || c.ID == "unknown" {
		t.Fatal("unknown ID must yield a fresh session with its own ID")
	}
	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}

	clock = clock.Add(2 * time.Hour)
	r.Get(a.ID)
	if n := r.Sweep(time.Hour); n != 1 {
		t.Fatalf("Sweep removed %d, want 1", n)
	}
	if r.Len() != 1 || r.Get(a.ID) != a {
		t.Fatal("active session was swept")
	}
}

func TestRegistryLookupDoesNotCreate(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup(""); ok {
		t.Fatal("Lookup(\"\") found a session")
	}
	if _, ok := r.Lookup("unknown"); ok {
		t.Fatal("Lookup(unknown) found a session")
	}
	if r.Len() != 0 {
		t.Fatalf("Lookup registered %d sessions", r.Len())
	}

	a := r.Get("")
	if got, ok := r.Lookup(a.ID); !ok || got != a {
		t.Fatal("Lookup missed an existing session")
	}

	s := NewSession()
	if s.ID != "" || s.Sidebar.IsOpen() || s.Alert.Type() != DefaultExperienceType || s.Focus() != 0 {
		t.Fatalf("NewSession defaults = %+v", s)
	}
	if r.Len() != 1 {
		t.Fatalf("NewSession touched the registry: Len = %d", r.Len())
	}
}

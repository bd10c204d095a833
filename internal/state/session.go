package state

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/YuHsuanChien/portfolio/internal/ring"
)

// Session is the UI state of one visitor.
type Session struct {
	ID      string
	Sidebar *Sidebar
	Alert   *ExperienceAlert

	mu       sync.Mutex
	focus    int
	lastSeen time.Time
}

func newSession(id string, now time.Time) *Session {
	return &Session{
		ID:       id,
		Sidebar:  &Sidebar{},
		Alert:    NewExperienceAlert(),
		lastSeen: now,
	}
}

// NewSession returns default UI state that belongs to no registry. It is what
// a visitor without a session sees.
func NewSession() *Session {
	return newSession("", time.Now())
}

// Focus is the current carousel card.
func (s *Session) Focus() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focus
}

// SetFocus selects card i of count. Out of range indexes are ignored.
func (s *Session) SetFocus(i, count int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i >= 0 && i < count {
		s.focus = i
	}
	return s.focus
}

// StepFocus moves the carousel by delta cards with wrap-around.
func (s *Session) StepFocus(delta, count int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f := ring.Step(count, s.focus, delta); f != ring.NoFocus {
		s.focus = f
	}
	return s.focus
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// Registry keeps sessions in memory; everything is lost on restart.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	now      func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		now:      time.Now,
	}
}

// Lookup returns the session for id without creating one.
func (r *Registry) Lookup(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if ok {
		s.touch(r.now())
	}
	return s, ok
}

// Get returns the session for id, creating a fresh one when id is unknown or
// empty. The returned ID may differ from id.
func (r *Registry) Get(id string) *Session {
	if s, ok := r.Lookup(id); ok {
		return s
	}

	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.sessions[id]; ok {
		s.touch(now)
		return s
	}
	s := newSession(uuid.NewString(), now)
	r.sessions[s.ID] = s
	return s
}

// Len reports how many sessions are held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than idle and returns how many went.
func (r *Registry) Sweep(idle time.Duration) int {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, s := range r.sessions {
		if s.idleSince(now) > idle {
			delete(r.sessions, id)
			n++
		}
	}
	return n
}

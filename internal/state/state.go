// Package state holds the per-visitor UI flags: the sidebar toggle, the
// experience detail alert and the carousel focus.
package state

import "sync"

// DesktopWidth is the breakpoint above which the sidebar is never shown.
const DesktopWidth = 1024

// DefaultExperienceType is the alert type before any card was picked.
const DefaultExperienceType = "all"

// Sidebar is the mobile navigation drawer.
type Sidebar struct {
	mu     sync.RWMutex
	isOpen bool
}

func (s *Sidebar) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isOpen
}

// Toggle flips the drawer and returns the new state.
func (s *Sidebar) Toggle() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isOpen = !s.isOpen
	return s.isOpen
}

// Close shuts the drawer; it is how a click outside of it is handled.
func (s *Sidebar) Close() {
	s.mu.Lock()
	s.isOpen = false
	s.mu.Unlock()
}

// Resize closes an open drawer once the viewport reaches desktop width.
// It reports whether the state changed.
func (s *Sidebar) Resize(width int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if width > DesktopWidth && s.isOpen {
		s.isOpen = false
		return true
	}
	return false
}

// ExperienceAlert is the modal that shows one experience in detail.
type ExperienceAlert struct {
	mu     sync.RWMutex
	isOpen bool
	typ    string
}

func NewExperienceAlert() *ExperienceAlert {
	return &ExperienceAlert{typ: DefaultExperienceType}
}

func (a *ExperienceAlert) IsOpen() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.isOpen
}

func (a *ExperienceAlert) Type() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.typ
}

func (a *ExperienceAlert) SetOpen(open bool) {
	a.mu.Lock()
	a.isOpen = open
	a.mu.Unlock()
}

func (a *ExperienceAlert) SetType(typ string) {
	a.mu.Lock()
	a.typ = typ
	a.mu.Unlock()
}

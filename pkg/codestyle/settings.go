package codestyle

import "sync"

// Change installs compiled output into a State.
type Change func(*State)

// Settings is the shared, lock-guarded code-style configuration.
type Settings struct {
	mu    sync.RWMutex
	state State
}

// NewSettings creates settings initialised with the host defaults.
func NewSettings() *Settings {
	return &Settings{state: Defaults()}
}

// NewSettingsFrom creates settings holding a copy of state.
func NewSettingsFrom(state State) *Settings {
	return &Settings{state: state.Clone()}
}

// Apply installs the changes in order under a single write lock.
// Readers see either none or all of them.
func (s *Settings) Apply(changes ...Change) {
	if len(changes) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.Clone()
	for _, change := range changes {
		if change != nil {
			change(&next)
		}
	}
	s.state = next
}

// Snapshot returns a deep copy of the current state.
func (s *Settings) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Reset restores the host defaults.
func (s *Settings) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Defaults()
}

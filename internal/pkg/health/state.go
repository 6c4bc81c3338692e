package health

import (
	"sync"
	"time"

	"github.com/masarify/authsvc/internal/pkg/clock"
)

const startingMessage = "Service is starting."

// Snapshot is a point-in-time copy of the runtime state
type Snapshot struct {
	Ready         bool       `json:"ready"`
	StartupError  string     `json:"startupError,omitempty"`
	LastCheckedAt time.Time  `json:"lastCheckedAt"`
	LastReadyAt   *time.Time `json:"lastReadyAt,omitempty"`
}

// State tracks whether the backing store finished bootstrapping
type State struct {
	mu            sync.RWMutex
	clock         clock.Clock
	ready         bool
	startupError  string
	lastCheckedAt time.Time
	lastReadyAt   *time.Time
}

// NewState returns a state that is not ready yet
func NewState(clk clock.Clock) *State {
	if clk == nil {
		clk = clock.Real{}
	}
	return &State{
		clock:         clk,
		startupError:  startingMessage,
		lastCheckedAt: clk.Now().UTC(),
	}
}

// SetReady marks the service ready and clears any startup error
func (s *State) SetReady() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now().UTC()
	s.ready = true
	s.startupError = ""
	s.lastCheckedAt = now
	s.lastReadyAt = &now
}

// SetDegraded marks the service not ready with a reason
func (s *State) SetDegraded(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ready = false
	s.startupError = message
	s.lastCheckedAt = s.clock.Now().UTC()
}

// Snapshot returns a copy of the current state
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Ready:         s.ready,
		StartupError:  s.startupError,
		LastCheckedAt: s.lastCheckedAt,
	}
	if s.lastReadyAt != nil {
		t := *s.lastReadyAt
		snap.LastReadyAt = &t
	}
	return snap
}

// IsReady reports whether requests may reach the auth workflows
func (s *State) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

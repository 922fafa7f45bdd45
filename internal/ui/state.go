package ui

import (
	"sync"
	"time"
)

// StateSnapshot captures a copy of the state data for rendering without
// requiring the UI to hold locks while laying out widgets.
type StateSnapshot struct {
	Path      string
	Status    string
	LastError error
	Loading   bool
	Logs      []string

	LastUpdated time.Time
}

// State tracks the status shared between the Gio event loop and the file
// picker goroutine. Plan and view data stay on the event loop.
type State struct {
	mu sync.RWMutex

	path      string
	status    string
	lastError error
	loading   bool

	logs     []string
	logLimit int

	lastUpdated time.Time
}

// NewState returns a baseline State with safe defaults.
func NewState() *State {
	return &State{
		status:      "No plan loaded",
		logLimit:    200,
		lastUpdated: time.Now(),
	}
}

// Snapshot returns a copy of the mutable state for rendering.
func (s *State) Snapshot() StateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	logCopy := make([]string, len(s.logs))
	copy(logCopy, s.logs)

	return StateSnapshot{
		Path:        s.path,
		Status:      s.status,
		LastError:   s.lastError,
		Loading:     s.loading,
		Logs:        logCopy,
		LastUpdated: s.lastUpdated,
	}
}

// SetPath records the file currently shown.
func (s *State) SetPath(path string) {
	s.mu.Lock()
	s.path = path
	s.lastUpdated = time.Now()
	s.mu.Unlock()
}

// SetLoading flags a background load in progress.
func (s *State) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.lastUpdated = time.Now()
	s.mu.Unlock()
}

// SetStatus replaces the status line and clears the last error.
func (s *State) SetStatus(status string) {
	s.mu.Lock()
	s.status = status
	s.lastError = nil
	s.lastUpdated = time.Now()
	s.mu.Unlock()
}

// SetError records a failure for the status line.
func (s *State) SetError(err error) {
	s.mu.Lock()
	s.lastError = err
	s.lastUpdated = time.Now()
	s.mu.Unlock()
}

// AppendLog adds a message, dropping the oldest beyond the limit.
func (s *State) AppendLog(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = append(s.logs, msg)
	if s.logLimit > 0 && len(s.logs) > s.logLimit {
		offset := len(s.logs) - s.logLimit
		s.logs = append([]string(nil), s.logs[offset:]...)
	}
	s.lastUpdated = time.Now()
}

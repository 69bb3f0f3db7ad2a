// Package registry keeps live game sessions addressable by id.
// A caller registers a session under a game id and later looks it up to
// route moves, undos, and hints without holding the session itself.
package registry

import (
	"sort"
	"sync"

	"github.com/nghiafl1/game2048/internal/session"
)

// Sessions is a table of game id to session, safe for concurrent use.
// It guards the map only; a single session is still not safe to drive
// from several goroutines at once.
type Sessions struct {
	mu       sync.RWMutex
	sessions map[string]*session.Session
}

// New creates an empty session table.
func New() *Sessions {
	return &Sessions{sessions: make(map[string]*session.Session)}
}

// Register stores s under id, replacing any session already there.
// It reports whether an earlier session was replaced.
func (r *Sessions) Register(id string, s *session.Session) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, replaced := r.sessions[id]
	r.sessions[id] = s
	return replaced
}

// Get returns the session registered under id.
func (r *Sessions) Get(id string) (*session.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	return s, ok
}

// Delete removes the session under id and reports whether it existed.
func (r *Sessions) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return false
	}
	delete(r.sessions, id)
	return true
}

// IDs returns all registered ids, sorted.
func (r *Sessions) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Count returns the number of registered sessions.
func (r *Sessions) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

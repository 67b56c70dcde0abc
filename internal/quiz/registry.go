package quiz

import "sync"

// Registry tracks the live sessions of all connected callers, keyed by
// session id. Each session belongs to exactly one owner; lookups from a
// different owner behave as not-found. The map is guarded, the sessions
// themselves are single-caller per the engine's concurrency model.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: map[string]*Session{}}
}

func (r *Registry) Put(s *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

// Get returns the owner's session, or ErrSessionNotFound. Foreign sessions
// are deliberately indistinguishable from missing ones.
func (r *Registry) Get(owner, id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok || s.Owner != owner {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove drops a session and its ledger, e.g. on explicit reset or after the
// result has been persisted.
func (r *Registry) Remove(owner, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok || s.Owner != owner {
		return ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// Len reports the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

package store

import (
	"time"

	"github.com/google/uuid"
)

const sessionTTL = 24 * time.Hour

// CreateSession registers a new browser session and returns its id and
// expiry. Issued by the auth handlers on every successful login.
func (r *Repository) CreateSession() (string, time.Time) {
	id := uuid.New().String()
	expires := r.now().Add(sessionTTL)

	r.mu.Lock()
	r.sessions[id] = expires
	r.mu.Unlock()
	return id, expires
}

// ValidSession reports whether the session id is known and unexpired.
func (r *Repository) ValidSession(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	expires, ok := r.sessions[id]
	return ok && r.now().Before(expires)
}

// CleanExpiredSessions drops sessions past their expiry. Run
// periodically from main.
func (r *Repository) CleanExpiredSessions() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	now := r.now()
	for id, expires := range r.sessions {
		if !now.Before(expires) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

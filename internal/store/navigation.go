package store

import "github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/models"

// Decision is the outcome of a navigation request.
type Decision int

const (
	// Allow grants the transition; the current view moves to the target.
	Allow Decision = iota
	// DenyRedirectToLogin refuses the transition: the caller must open
	// the login prompt and force the external location indicator back
	// to the landing view.
	DenyRedirectToLogin
)

// CurrentView returns the authoritative view the gate last granted.
func (r *Repository) CurrentView() models.View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentView
}

// RequestNavigation applies the gate rule: the landing view is public,
// every other view requires an authenticated session. On Allow the
// current view becomes the target; on Deny it is left untouched and an
// info toast prompts for login.
func (r *Repository) RequestNavigation(target models.View) Decision {
	r.mu.Lock()
	if target.Private() && !r.authenticated {
		r.mu.Unlock()
		r.notifier.Notify(msgLoginRequired, models.NotifyInfo)
		return DenyRedirectToLogin
	}
	r.currentView = target
	r.mu.Unlock()
	return Allow
}

// Authenticate merges the given profile changes, marks the session
// authenticated and lands the user on the community view regardless of
// what was requested before the login prompt appeared.
func (r *Repository) Authenticate(changes models.ProfileChanges) models.UserProfile {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.applyProfile(changes)
	r.currentView = models.ViewCommunity
	return r.user
}

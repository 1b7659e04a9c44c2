package store

import (
	"fmt"
	"strings"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/models"
)

// SearchAdvisors returns the marketplace experts whose name, role or
// tags contain the query, case-insensitively. An empty query matches
// everyone.
func (r *Repository) SearchAdvisors(query string) []models.Advisor {
	r.mu.Lock()
	defer r.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Advisor, 0, len(r.advisors))
	for _, a := range r.advisors {
		if query == "" || advisorMatches(a, query) {
			out = append(out, a)
		}
	}
	return out
}

// RequestAppointment acknowledges a consultation request with the
// matching advisor. Unknown ids are a silent no-op.
func (r *Repository) RequestAppointment(advisorID string) *models.Advisor {
	r.mu.Lock()
	var found *models.Advisor
	for i := range r.advisors {
		if r.advisors[i].ID == advisorID {
			a := r.advisors[i]
			found = &a
			break
		}
	}
	r.mu.Unlock()

	if found == nil {
		return nil
	}
	r.notifier.Notify(fmt.Sprintf("Solicitud enviada a %s. Te contactaremos pronto.", found.Name), models.NotifySuccess)
	return found
}

func advisorMatches(a models.Advisor, query string) bool {
	if strings.Contains(strings.ToLower(a.Name), query) || strings.Contains(strings.ToLower(a.Role), query) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

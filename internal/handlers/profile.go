package handlers

import (
	"log"
	"net/http"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/models"
	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/store"
)

type ProfileHandler struct {
	repo *store.Repository
	log  *log.Logger
}

func NewProfileHandler(repo *store.Repository, log *log.Logger) *ProfileHandler {
	return &ProfileHandler{repo: repo, log: log}
}

// Get returns the live session profile.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]any{
		"profile":       h.repo.CurrentUser(),
		"authenticated": h.repo.IsAuthenticated(),
	})
}

// Update merges partial changes into the profile. Fields absent from
// the body keep their prior value.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var changes models.ProfileChanges
	if !decodeJSON(w, r, &changes) {
		return
	}

	profile := h.repo.UpdateProfile(changes)
	h.repo.Notifier().Notify("Tu perfil ha sido actualizado.", models.NotifySuccess)
	h.log.Printf("profile updated: %s", profile.Handle)
	writeSuccess(w, profile)
}

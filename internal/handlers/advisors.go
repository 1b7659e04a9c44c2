package handlers

import (
	"log"
	"net/http"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/store"
)

type AdvisorHandler struct {
	repo *store.Repository
	log  *log.Logger
}

func NewAdvisorHandler(repo *store.Repository, log *log.Logger) *AdvisorHandler {
	return &AdvisorHandler{repo: repo, log: log}
}

// List returns the marketplace experts matching the q query parameter.
func (h *AdvisorHandler) List(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.repo.SearchAdvisors(r.URL.Query().Get("q")))
}

// Appointment acknowledges a consultation request.
func (h *AdvisorHandler) Appointment(w http.ResponseWriter, r *http.Request) {
	var input struct {
		AdvisorID string `json:"advisor_id"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	advisor := h.repo.RequestAppointment(input.AdvisorID)
	if advisor == nil {
		writeError(w, http.StatusNotFound, "El asesor no existe")
		return
	}
	h.log.Printf("appointment requested with %s", advisor.Name)
	writeSuccess(w, advisor)
}

package handlers

import (
	"log"
	"net/http"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/models"
	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/store"
)

type NavHandler struct {
	repo *store.Repository
	log  *log.Logger
}

func NewNavHandler(repo *store.Repository, log *log.Logger) *NavHandler {
	return &NavHandler{repo: repo, log: log}
}

// navState is what the client mirrors into its location indicator.
type navState struct {
	Granted      bool        `json:"granted"`
	View         models.View `json:"view"`
	AuthRequired bool        `json:"auth_required"`
}

// Current returns the authoritative view.
func (h *NavHandler) Current(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, navState{Granted: true, View: h.repo.CurrentView()})
}

// Request runs a navigation request through the gate. A denial is not
// an error: the response tells the client to open the login prompt and
// force its location indicator back to the landing view.
func (h *NavHandler) Request(w http.ResponseWriter, r *http.Request) {
	var input struct {
		View string `json:"view"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}
	target, known := models.ParseView(input.View)
	if !known {
		// Unknown indicators collapse to the landing view.
		target = models.ViewHome
	}

	if h.repo.RequestNavigation(target) == store.DenyRedirectToLogin {
		h.log.Printf("navigation denied: %s", target)
		writeSuccess(w, navState{Granted: false, View: models.ViewHome, AuthRequired: true})
		return
	}
	writeSuccess(w, navState{Granted: true, View: h.repo.CurrentView()})
}

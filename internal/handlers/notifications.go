package handlers

import (
	"log"
	"net/http"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/store"
)

type NotificationsHandler struct {
	repo *store.Repository
	log  *log.Logger
}

func NewNotificationsHandler(repo *store.Repository, log *log.Logger) *NotificationsHandler {
	return &NotificationsHandler{repo: repo, log: log}
}

// Current returns the pending toast, or null once it has expired.
func (h *NotificationsHandler) Current(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.repo.Notifier().Current())
}

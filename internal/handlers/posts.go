package handlers

import (
	"log"
	"net/http"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/store"
)

type PostHandler struct {
	repo *store.Repository
	log  *log.Logger
}

func NewPostHandler(repo *store.Repository, log *log.Logger) *PostHandler {
	return &PostHandler{repo: repo, log: log}
}

// List returns the feed, newest first.
func (h *PostHandler) List(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, h.repo.Posts())
}

// Create publishes a new post by the current user. Empty bodies are a
// silent no-op: the feed is returned unchanged with no created post.
func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Body string `json:"body"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	post := h.repo.PublishPost(input.Body)
	if post == nil {
		writeSuccess(w, nil)
		return
	}
	h.log.Printf("post published: %s", post.ID)
	writeJSON(w, http.StatusCreated, APIResponse{Success: true, Data: post})
}

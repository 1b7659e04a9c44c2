package handlers

import (
	"log"
	"net/http"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/models"
	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/store"
)

type LikeHandler struct {
	repo *store.Repository
	log  *log.Logger
}

func NewLikeHandler(repo *store.Repository, log *log.Logger) *LikeHandler {
	return &LikeHandler{repo: repo, log: log}
}

// Like flips the current user's like on a post.
func (h *LikeHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.repo.ToggleLike)
}

// Share flips the current user's repost of a post.
func (h *LikeHandler) Share(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.repo.ToggleShare)
}

func (h *LikeHandler) toggle(w http.ResponseWriter, r *http.Request, op func(string) *models.Post) {
	var input struct {
		PostID string `json:"post_id"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	post := op(input.PostID)
	if post == nil {
		writeError(w, http.StatusNotFound, "La publicación no existe")
		return
	}
	writeSuccess(w, post)
}

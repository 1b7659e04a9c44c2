package handlers

import (
	"log"
	"net/http"

	"github.com/emilianoibarrat-bit/Fintal-Movil-3/internal/store"
)

type CommentHandler struct {
	repo *store.Repository
	log  *log.Logger
}

func NewCommentHandler(repo *store.Repository, log *log.Logger) *CommentHandler {
	return &CommentHandler{repo: repo, log: log}
}

// Add appends a comment to a post. An empty body or an unknown post id
// is a silent no-op and answers success with no data.
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	var input struct {
		PostID string `json:"post_id"`
		Body   string `json:"body"`
	}
	if !decodeJSON(w, r, &input) {
		return
	}

	post := h.repo.AddComment(input.PostID, input.Body)
	if post == nil {
		writeSuccess(w, nil)
		return
	}
	h.log.Printf("comment added to post %s", post.ID)
	writeJSON(w, http.StatusCreated, APIResponse{Success: true, Data: post})
}

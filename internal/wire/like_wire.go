package wire

import (
	"cinevault/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireLike(r chi.Router, likeHandler *adaptor.LikeHandler) {
	r.Post("/api/likes", likeHandler.Like)
	r.Delete("/api/likes", likeHandler.Unlike)
}

package wire

import (
	"cinevault/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireComment(r chi.Router, commentHandler *adaptor.CommentHandler, likeHandler *adaptor.LikeHandler) {
	r.Route("/api/comments", func(r chi.Router) {
		r.Get("/", commentHandler.GetComments)
		r.Post("/", commentHandler.CreateComment)
		r.Get("/{id}", commentHandler.GetCommentByID)
		r.Put("/{id}", commentHandler.UpdateComment)
		r.Delete("/{id}", commentHandler.DeleteComment)
		r.Get("/{id}/likes", likeHandler.CountCommentLikes)
	})
}

package wire

import (
	"cinevault/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler, likeHandler *adaptor.LikeHandler) {
	r.Route("/api/reviews", func(r chi.Router) {
		r.Get("/", reviewHandler.GetReviews)
		r.Post("/", reviewHandler.CreateReview)
		r.Get("/{id}", reviewHandler.GetReviewByID)
		r.Put("/{id}", reviewHandler.UpdateReview)
		r.Delete("/{id}", reviewHandler.DeleteReview)
		r.Get("/{id}/likes", likeHandler.CountReviewLikes)
	})
}

package wire

import (
	"cinevault/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler, reviewHandler *adaptor.ReviewHandler) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)
		r.Get("/search", movieHandler.SearchMovies)
		r.Post("/", movieHandler.CreateMovie)
		r.Post("/bulk", movieHandler.BulkCreateMovies)
		r.Delete("/batch", movieHandler.DeleteMovies)

		r.Get("/{id}", movieHandler.GetMovieByID)
		r.Put("/{id}", movieHandler.UpdateMovie)
		r.Delete("/{id}", movieHandler.DeleteMovie)

		r.Get("/{id}/reviews", reviewHandler.GetMovieReviews)
		r.Get("/{id}/review-stats", reviewHandler.GetMovieReviewStats)
	})
}

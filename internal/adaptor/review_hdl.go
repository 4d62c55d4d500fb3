package adaptor

import (
	"net/http"

	"cinevault/internal/dto/request"
	"cinevault/internal/usecase"
	"cinevault/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// GetReviews handles GET /api/reviews
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	req := paginated(r)

	reviews, err := h.service.GetReviews(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "get reviews")
		return
	}

	utils.ResponseSuccess(w, r, "Reviews retrieved successfully", reviews)
}

// GetMovieReviews handles GET /api/movies/{id}/reviews
func (h *ReviewHandler) GetMovieReviews(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r)
	if !ok {
		return
	}

	req := paginated(r)
	reviews, err := h.service.GetMovieReviews(r.Context(), movieID, &req)
	if err != nil {
		writeError(w, r, h.log, err, "get movie reviews")
		return
	}

	utils.ResponseSuccess(w, r, "Reviews retrieved successfully", reviews)
}

// GetMovieReviewStats handles GET /api/movies/{id}/review-stats
func (h *ReviewHandler) GetMovieReviewStats(w http.ResponseWriter, r *http.Request) {
	movieID, ok := pathID(w, r)
	if !ok {
		return
	}

	stats, err := h.service.GetMovieReviewStats(r.Context(), movieID)
	if err != nil {
		writeError(w, r, h.log, err, "get review stats")
		return
	}

	utils.ResponseSuccess(w, r, "Review stats retrieved successfully", stats)
}

// GetReviewByID handles GET /api/reviews/{id}
func (h *ReviewHandler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	review, err := h.service.GetReviewByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err, "get review")
		return
	}

	utils.ResponseSuccess(w, r, "Review retrieved successfully", review)
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest[request.ReviewRequest](w, r)
	if !ok {
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, r, "Review created successfully", review)
}

// UpdateReview handles PUT /api/reviews/{id}
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	req, ok := decodeRequest[request.ReviewUpdateRequest](w, r)
	if !ok {
		return
	}

	review, err := h.service.UpdateReview(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, h.log, err, "update review")
		return
	}

	utils.ResponseSuccess(w, r, "Review updated successfully", review)
}

// DeleteReview handles DELETE /api/reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteReview(r.Context(), id); err != nil {
		writeError(w, r, h.log, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, r, "Review deleted successfully", nil)
}

package adaptor

import (
	"net/http"

	"cinevault/internal/data/entity"
	"cinevault/internal/dto/request"
	"cinevault/internal/usecase"
	"cinevault/pkg/utils"

	"go.uber.org/zap"
)

type LikeHandler struct {
	service usecase.LikeService
	log     *zap.Logger
}

func NewLikeHandler(service usecase.LikeService, log *zap.Logger) *LikeHandler {
	return &LikeHandler{
		service: service,
		log:     log.With(zap.String("handler", "like")),
	}
}

// Like handles POST /api/likes
func (h *LikeHandler) Like(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest[request.LikeRequest](w, r)
	if !ok {
		return
	}

	like, err := h.service.Like(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "like")
		return
	}

	utils.ResponseCreated(w, r, "Liked successfully", like)
}

// Unlike handles DELETE /api/likes
func (h *LikeHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest[request.LikeRequest](w, r)
	if !ok {
		return
	}

	if err := h.service.Unlike(r.Context(), &req); err != nil {
		writeError(w, r, h.log, err, "unlike")
		return
	}

	utils.ResponseSuccess(w, r, "Like removed successfully", nil)
}

// CountReviewLikes handles GET /api/reviews/{id}/likes
func (h *LikeHandler) CountReviewLikes(w http.ResponseWriter, r *http.Request) {
	h.count(w, r, entity.TargetReview)
}

// CountCommentLikes handles GET /api/comments/{id}/likes
func (h *LikeHandler) CountCommentLikes(w http.ResponseWriter, r *http.Request) {
	h.count(w, r, entity.TargetComment)
}

func (h *LikeHandler) count(w http.ResponseWriter, r *http.Request, kind entity.TargetKind) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	count, err := h.service.CountLikes(r.Context(), entity.LikeTarget{Kind: kind, ID: id})
	if err != nil {
		writeError(w, r, h.log, err, "count likes")
		return
	}

	utils.ResponseSuccess(w, r, "Likes counted successfully", count)
}

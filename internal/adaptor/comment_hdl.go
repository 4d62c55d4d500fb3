package adaptor

import (
	"net/http"

	"cinevault/internal/dto/request"
	"cinevault/internal/usecase"
	"cinevault/pkg/utils"

	"go.uber.org/zap"
)

type CommentHandler struct {
	service usecase.CommentService
	log     *zap.Logger
}

func NewCommentHandler(service usecase.CommentService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		log:     log.With(zap.String("handler", "comment")),
	}
}

// GetComments handles GET /api/comments
func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	req := paginated(r)

	comments, err := h.service.GetComments(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "get comments")
		return
	}

	utils.ResponseSuccess(w, r, "Comments retrieved successfully", comments)
}

// GetCommentByID handles GET /api/comments/{id}
func (h *CommentHandler) GetCommentByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	comment, err := h.service.GetCommentByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err, "get comment")
		return
	}

	utils.ResponseSuccess(w, r, "Comment retrieved successfully", comment)
}

// CreateComment handles POST /api/comments
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest[request.CommentRequest](w, r)
	if !ok {
		return
	}

	comment, err := h.service.CreateComment(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "create comment")
		return
	}

	utils.ResponseCreated(w, r, "Comment created successfully", comment)
}

// UpdateComment handles PUT /api/comments/{id}
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	req, ok := decodeRequest[request.CommentUpdateRequest](w, r)
	if !ok {
		return
	}

	comment, err := h.service.UpdateComment(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, h.log, err, "update comment")
		return
	}

	utils.ResponseSuccess(w, r, "Comment updated successfully", comment)
}

// DeleteComment handles DELETE /api/comments/{id}
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteComment(r.Context(), id); err != nil {
		writeError(w, r, h.log, err, "delete comment")
		return
	}

	utils.ResponseSuccess(w, r, "Comment deleted successfully", nil)
}

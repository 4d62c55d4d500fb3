package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"cinevault/internal/dto/request"
	"cinevault/internal/usecase"
	"cinevault/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	App     *AppHandler
	User    *UserHandler
	Movie   *MovieHandler
	Review  *ReviewHandler
	Comment *CommentHandler
	Like    *LikeHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		App:     NewAppHandler(config, log),
		User:    NewUserHandler(service.User, log),
		Movie:   NewMovieHandler(service.Movie, log),
		Review:  NewReviewHandler(service.Review, log),
		Comment: NewCommentHandler(service.Comment, log),
		Like:    NewLikeHandler(service.Like, log),
	}
}

// decodeRequest reads a {"data": ..., "meta": ...} body. A correlation id in
// meta replaces the one taken from the request header.
func decodeRequest[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var req request.Request[T]
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, r, "Invalid request body", nil)
		return req.Data, false
	}

	if id := req.CorrelationID(); id != "" {
		utils.SetCorrelationID(r.Context(), id)
	}

	return req.Data, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, r, "Invalid id", []string{"id: must be a positive integer"})
		return 0, false
	}
	return id, true
}

// paginated reads page, pageSize and orderBy. Missing or malformed numbers
// fall back to the defaults.
func paginated(r *http.Request) request.PaginatedRequest {
	q := r.URL.Query()
	return request.PaginatedRequest{
		Page:     utils.ParseInt(q.Get("page"), 0),
		PageSize: utils.ParseInt(q.Get("pageSize"), 0),
		OrderBy:  q.Get("orderBy"),
	}
}

// writeError maps service errors onto the response envelope.
func writeError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error, operation string) {
	var verr *usecase.ValidationError

	switch {
	case errors.As(err, &verr):
		log.Warn(operation+" validation failed", zap.Strings("details", verr.Details))
		utils.ResponseBadRequest(w, r, verr.Message, verr.Details)

	case errors.Is(err, usecase.ErrInvalidTarget),
		errors.Is(err, usecase.ErrUnknownUser),
		errors.Is(err, usecase.ErrEmptyRequest):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, r, err.Error(), []string{err.Error()})

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, r, err.Error())

	case errors.Is(err, usecase.ErrDuplicateLike),
		errors.Is(err, usecase.ErrHasDependents):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, r, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, r, "Internal server error")
	}
}

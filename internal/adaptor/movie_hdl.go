package adaptor

import (
	"fmt"
	"net/http"

	"cinevault/internal/dto/request"
	"cinevault/internal/usecase"
	"cinevault/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	req := paginated(r)

	movies, err := h.service.GetMovies(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, r, "Movies retrieved successfully", movies)
}

// SearchMovies handles GET /api/movies/search
func (h *MovieHandler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := request.MovieSearchRequest{
		PaginatedRequest: paginated(r),
		Title:            utils.ParseOptionalString(q.Get("title")),
		Genre:            utils.ParseOptionalString(q.Get("genre")),
		Director:         utils.ParseOptionalString(q.Get("director")),
	}

	var details []string
	year, err := utils.ParseOptionalInt("releaseYear", q.Get("releaseYear"))
	if err != nil {
		details = append(details, err.Error())
	}
	rating, err := utils.ParseOptionalFloat("averageRating", q.Get("averageRating"))
	if err != nil {
		details = append(details, err.Error())
	}
	if len(details) > 0 {
		utils.ResponseBadRequest(w, r, "Invalid query parameters", details)
		return
	}
	req.ReleaseYear = year
	req.AverageRating = rating

	movies, err := h.service.SearchMovies(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, r, fmt.Sprintf("Found %d movies", movies.Pagination.Total), movies)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, r, "Movie retrieved successfully", movie)
}

// CreateMovie handles POST /api/movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest[request.MovieRequest](w, r)
	if !ok {
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, r, "Movie created successfully", movie)
}

// BulkCreateMovies handles POST /api/movies/bulk
func (h *MovieHandler) BulkCreateMovies(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest[request.BulkMovieRequest](w, r)
	if !ok {
		return
	}

	movies, err := h.service.BulkCreateMovies(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "bulk create movies")
		return
	}

	utils.ResponseCreated(w, r, fmt.Sprintf("Created %d movies", len(movies)), movies)
}

// UpdateMovie handles PUT /api/movies/{id}
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	req, ok := decodeRequest[request.MovieUpdateRequest](w, r)
	if !ok {
		return
	}

	movie, err := h.service.UpdateMovie(r.Context(), id, &req)
	if err != nil {
		writeError(w, r, h.log, err, "update movie")
		return
	}

	utils.ResponseSuccess(w, r, "Movie updated successfully", movie)
}

// DeleteMovie handles DELETE /api/movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteMovie(r.Context(), id); err != nil {
		writeError(w, r, h.log, err, "delete movie")
		return
	}

	utils.ResponseSuccess(w, r, "Movie deleted successfully", nil)
}

// DeleteMovies handles DELETE /api/movies/batch
func (h *MovieHandler) DeleteMovies(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest[request.BulkDeleteRequest](w, r)
	if !ok {
		return
	}

	result, err := h.service.DeleteMovies(r.Context(), &req)
	if err != nil {
		writeError(w, r, h.log, err, "bulk delete movies")
		return
	}

	message := fmt.Sprintf("Deleted %d movies. %d movies were not deleted due to existing reviews.",
		result.Deleted, result.Blocked)
	if result.Unmatched > 0 {
		message += fmt.Sprintf(" %d ids matched no movie.", result.Unmatched)
	}

	utils.ResponseSuccess(w, r, message, result)
}

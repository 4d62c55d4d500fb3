package request

import "cinevault/internal/query"

type MovieRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	ReleaseDate *string `json:"releaseDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Genre       *string `json:"genre,omitempty" validate:"omitempty,max=100"`
	Director    *string `json:"director,omitempty" validate:"omitempty,max=100"`
}

type MovieUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	ReleaseDate *string `json:"releaseDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Genre       *string `json:"genre,omitempty" validate:"omitempty,max=100"`
	Director    *string `json:"director,omitempty" validate:"omitempty,max=100"`
}

type BulkMovieRequest struct {
	Movies []MovieRequest `json:"movies" validate:"required,min=1,max=100,dive"`
}

type BulkDeleteRequest struct {
	IDs []int64 `json:"ids"`
}

type MovieSearchRequest struct {
	PaginatedRequest
	Title         *string
	Genre         *string
	Director      *string
	ReleaseYear   *int     `json:"releaseYear" validate:"omitempty,min=1800,max=3000"`
	AverageRating *float64 `json:"averageRating" validate:"omitempty,min=0,max=10"`
}

func (r MovieSearchRequest) Criteria() query.MovieCriteria {
	return query.MovieCriteria{
		Title:            r.Title,
		Genre:            r.Genre,
		Director:         r.Director,
		ReleaseYear:      r.ReleaseYear,
		MinAverageRating: r.AverageRating,
	}
}
